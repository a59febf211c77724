package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	token, err := h.adminSessions.Login(req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "admin login rejected", "remote_addr", r.RemoteAddr)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loginResponse{Token: token})
}
