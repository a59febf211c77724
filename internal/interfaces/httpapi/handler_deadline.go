package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

type setDeadlineRequest struct {
	// RFC 3339. Null or absent clears the deadline.
	DeadlineAt *string `json:"deadlineAt"`
}

type deadlineDTO struct {
	DeadlineAtUTC *string `json:"deadlineAtUtc"`
}

func (h *Handler) GetDeadline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDeadline")
	defer span.End()

	at, err := h.deadlineService.GetDeadline(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get deadline failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deadlineToDTO(at))
}

func (h *Handler) SetDeadline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetDeadline")
	defer span.End()

	var req setDeadlineRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if req.DeadlineAt == nil {
		if err := h.deadlineService.ClearDeadline(ctx); err != nil {
			h.logger.WarnContext(ctx, "clear deadline failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, deadlineToDTO(nil))
		return
	}

	at, err := time.Parse(time.RFC3339, *req.DeadlineAt)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: deadlineAt must be RFC 3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.deadlineService.SetDeadline(ctx, at); err != nil {
		h.logger.WarnContext(ctx, "set deadline failed", "deadline_at", *req.DeadlineAt, "error", err)
		writeError(ctx, w, err)
		return
	}

	utc := at.UTC()
	writeSuccess(ctx, w, http.StatusOK, deadlineToDTO(&utc))
}

func deadlineToDTO(at *time.Time) deadlineDTO {
	if at == nil {
		return deadlineDTO{}
	}
	formatted := at.UTC().Format(time.RFC3339)

	return deadlineDTO{DeadlineAtUTC: &formatted}
}
