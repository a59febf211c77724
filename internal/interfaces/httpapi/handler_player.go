package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

type playerPayload struct {
	Name              string `json:"name" validate:"required,max=200"`
	TeamOut           string `json:"teamOut" validate:"required,max=200"`
	Age               int    `json:"age" validate:"gte=0,lte=60"`
	CurrentAbility    int    `json:"currentAbility" validate:"gte=0,lte=200"`
	PotentialAbility  int    `json:"potentialAbility" validate:"gte=0,lte=200"`
	Position          string `json:"position" validate:"required,max=10"`
	SecondaryPosition string `json:"secondaryPosition" validate:"max=10"`
	Height            string `json:"height" validate:"max=20"`
	Weight            string `json:"weight" validate:"max=20"`
	MinPrice          int64  `json:"minPrice" validate:"gte=0"`
	MaxPrice          int64  `json:"maxPrice" validate:"gte=0"`
}

// playerUpdateRequest has no name field: a player's name is immutable
// once created.
type playerUpdateRequest struct {
	TeamOut           *string `json:"teamOut" validate:"omitempty,max=200"`
	Age               *int    `json:"age" validate:"omitempty,gte=0,lte=60"`
	CurrentAbility    *int    `json:"currentAbility" validate:"omitempty,gte=0,lte=200"`
	PotentialAbility  *int    `json:"potentialAbility" validate:"omitempty,gte=0,lte=200"`
	Position          *string `json:"position" validate:"omitempty,max=10"`
	SecondaryPosition *string `json:"secondaryPosition" validate:"omitempty,max=10"`
	Height            *string `json:"height" validate:"omitempty,max=20"`
	Weight            *string `json:"weight" validate:"omitempty,max=20"`
	MinPrice          *int64  `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice          *int64  `json:"maxPrice" validate:"omitempty,gte=0"`
}

type batchUpsertRequest struct {
	Players []playerPayload `json:"players" validate:"required,min=1,max=1000,dive"`
}

type batchUpsertResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type playerDTO struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	TeamOut           string  `json:"teamOut"`
	Age               int     `json:"age"`
	CurrentAbility    int     `json:"currentAbility"`
	PotentialAbility  int     `json:"potentialAbility"`
	Position          string  `json:"position"`
	SecondaryPosition string  `json:"secondaryPosition,omitempty"`
	Height            string  `json:"height,omitempty"`
	Weight            string  `json:"weight,omitempty"`
	MinPrice          int64   `json:"minPrice"`
	MaxPrice          int64   `json:"maxPrice"`
	CurrentBidPrice   *int64  `json:"currentBidPrice"`
	CurrentBidTeam    *string `json:"currentBidTeam"`
	Buyout            bool    `json:"buyout"`
	UpdatedAtUTC      string  `json:"updatedAtUtc"`
}

type playerPageDTO struct {
	Items []playerDTO `json:"items"`
	pageDTO
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	players, total, err := h.playerService.ListPlayers(ctx, page, pageSize)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageDTO{
		Items:   items,
		pageDTO: pageDTO{Page: page, PageSize: pageSize, Total: total},
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, p))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerPayload
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

	created, err := h.playerService.CreatePlayer(ctx, payloadToPlayer(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "player_name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, created))
}

func (h *Handler) BatchUpsertPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BatchUpsertPlayers")
	defer span.End()

	var req batchUpsertRequest
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

	players := make([]player.Player, 0, len(req.Players))
	for _, item := range req.Players {
		players = append(players, payloadToPlayer(item))
	}

	created, updated, err := h.playerService.BatchUpsertPlayers(ctx, players)
	if err != nil {
		h.logger.WarnContext(ctx, "batch upsert players failed", "count", len(players), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, batchUpsertResponse{Created: created, Updated: updated})
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerUpdateRequest
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

	updated, err := h.playerService.UpdatePlayer(ctx, playerID, player.Update{
		TeamOut:           req.TeamOut,
		Age:               req.Age,
		CurrentAbility:    req.CurrentAbility,
		PotentialAbility:  req.PotentialAbility,
		Position:          req.Position,
		SecondaryPosition: req.SecondaryPosition,
		Height:            req.Height,
		Weight:            req.Weight,
		MinPrice:          req.MinPrice,
		MaxPrice:          req.MaxPrice,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, updated))
}

func (h *Handler) UnlockPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnlockPlayer")
	defer span.End()

	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	unlocked, err := h.playerService.UnlockPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "unlock player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, unlocked))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func payloadToPlayer(req playerPayload) player.Player {
	return player.Player{
		Name:              req.Name,
		TeamOut:           req.TeamOut,
		Age:               req.Age,
		CurrentAbility:    req.CurrentAbility,
		PotentialAbility:  req.PotentialAbility,
		Position:          req.Position,
		SecondaryPosition: req.SecondaryPosition,
		Height:            req.Height,
		Weight:            req.Weight,
		MinPrice:          req.MinPrice,
		MaxPrice:          req.MaxPrice,
	}
}

func playerToDTO(ctx context.Context, p player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:                p.ID,
		Name:              p.Name,
		TeamOut:           p.TeamOut,
		Age:               p.Age,
		CurrentAbility:    p.CurrentAbility,
		PotentialAbility:  p.PotentialAbility,
		Position:          p.Position,
		SecondaryPosition: p.SecondaryPosition,
		Height:            p.Height,
		Weight:            p.Weight,
		MinPrice:          p.MinPrice,
		MaxPrice:          p.MaxPrice,
		CurrentBidPrice:   p.CurrentBidPrice,
		CurrentBidTeam:    p.CurrentBidTeam,
		Buyout:            p.Buyout,
		UpdatedAtUTC:      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
