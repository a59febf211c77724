package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

type submitBidRequest struct {
	// A declared team that matches neither the token nor the player's
	// club raises an advisory alert without blocking the bid.
	Team  string `json:"team" validate:"required,max=200"`
	Price int64  `json:"price" validate:"gte=0"`
}

type bidResultDTO struct {
	Player   playerDTO `json:"player"`
	IsBuyout bool      `json:"isBuyout"`
}

type bidDTO struct {
	ID           int64  `json:"id"`
	PlayerID     int64  `json:"playerId"`
	Team         string `json:"team"`
	Price        int64  `json:"price"`
	CreatedAtUTC string `json:"createdAtUtc"`
}

type bidHistoryDTO struct {
	Items []bidDTO `json:"items"`
	pageDTO
}

type latestBidDTO struct {
	PlayerID     int64   `json:"playerId"`
	Price        *int64  `json:"price"`
	Team         *string `json:"team"`
	IsBuyout     bool    `json:"isBuyout"`
	UpdatedAtUTC string  `json:"updatedAtUtc"`
}

func (h *Handler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitBid")
	defer span.End()

	caller, ok := identityFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: identity is missing from request context", usecase.ErrUnauthorized))
		return
	}

	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitBidRequest
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

	result, err := h.bidService.SubmitBid(ctx, caller, playerID, req.Team, req.Price)
	if err != nil {
		h.logger.WarnContext(ctx, "submit bid failed",
			"player_id", playerID, "team_name", caller.TeamName, "price", req.Price, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bidResultDTO{
		Player:   playerToDTO(ctx, result.Player),
		IsBuyout: result.IsBuyout,
	})
}

func (h *Handler) ListBidHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBidHistory")
	defer span.End()

	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	bids, total, err := h.bidService.ListHistory(ctx, playerID, page, pageSize)
	if err != nil {
		h.logger.WarnContext(ctx, "list bid history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]bidDTO, 0, len(bids))
	for _, b := range bids {
		items = append(items, bidDTO{
			ID:           b.ID,
			PlayerID:     b.PlayerID,
			Team:         b.Team,
			Price:        b.Price,
			CreatedAtUTC: b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, bidHistoryDTO{
		Items:   items,
		pageDTO: pageDTO{Page: page, PageSize: pageSize, Total: total},
	})
}

func (h *Handler) LatestBids(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LatestBids")
	defer span.End()

	latest, err := h.bidService.LatestBids(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "latest bids failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]latestBidDTO, 0, len(latest))
	for _, entry := range latest {
		items = append(items, latestBidDTO{
			PlayerID:     entry.PlayerID,
			Price:        entry.Price,
			Team:         entry.Team,
			IsBuyout:     entry.IsBuyout,
			UpdatedAtUTC: entry.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
