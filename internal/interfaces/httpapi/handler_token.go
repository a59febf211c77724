package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/transfer-auction/internal/domain/teamtoken"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

type issueTokenRequest struct {
	TeamName string `json:"teamName" validate:"required,max=200"`
}

type setTokenActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type teamTokenDTO struct {
	ID           int64  `json:"id"`
	TeamName     string `json:"teamName"`
	Token        string `json:"token"`
	Active       bool   `json:"active"`
	CreatedAtUTC string `json:"createdAtUtc"`
}

func (h *Handler) IssueTeamToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IssueTeamToken")
	defer span.End()

	var req issueTokenRequest
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

	issued, err := h.teamTokenService.IssueToken(ctx, req.TeamName)
	if err != nil {
		h.logger.WarnContext(ctx, "issue team token failed", "team_name", req.TeamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamTokenToDTO(ctx, issued))
}

func (h *Handler) ListTeamTokens(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamTokens")
	defer span.End()

	tokens, err := h.teamTokenService.ListTokens(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list team tokens failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamTokenDTO, 0, len(tokens))
	for _, t := range tokens {
		items = append(items, teamTokenToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SetTeamTokenActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetTeamTokenActive")
	defer span.End()

	tokenID, err := pathInt64(r, "tokenID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setTokenActiveRequest
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

	updated, err := h.teamTokenService.SetTokenActive(ctx, tokenID, *req.Active)
	if err != nil {
		h.logger.WarnContext(ctx, "set team token active failed", "token_id", tokenID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamTokenToDTO(ctx, updated))
}

func teamTokenToDTO(ctx context.Context, t teamtoken.TeamToken) teamTokenDTO {
	ctx, span := startSpan(ctx, "httpapi.teamTokenToDTO")
	defer span.End()

	return teamTokenDTO{
		ID:           t.ID,
		TeamName:     t.TeamName,
		Token:        t.Token,
		Active:       t.Active,
		CreatedAtUTC: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
