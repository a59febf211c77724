package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/transfer-auction/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) ListPlayers(ctx context.Context, page, pageSize int) ([]player.Player, int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	page, pageSize = clampPage(page, pageSize)

	players, total, err := s.playerRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list players: %w", err)
	}

	return players, total, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return p, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	p = normalizePlayer(p)
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, player.ErrNameTaken) {
			return player.Player{}, fmt.Errorf("%w: player name %q already exists", ErrInvalidInput, p.Name)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

// BatchUpsertPlayers imports a roster dump. The whole batch validates
// before anything is written: a single bad row rejects the import instead
// of leaving it half applied.
func (s *PlayerService) BatchUpsertPlayers(ctx context.Context, players []player.Player) (int, int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.BatchUpsertPlayers")
	defer span.End()

	if len(players) == 0 {
		return 0, 0, fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(players))
	normalized := make([]player.Player, 0, len(players))
	for i, p := range players {
		p = normalizePlayer(p)
		if err := p.Validate(); err != nil {
			return 0, 0, fmt.Errorf("%w: item %d: %s", ErrInvalidInput, i, err.Error())
		}
		if _, dup := seen[p.Name]; dup {
			return 0, 0, fmt.Errorf("%w: item %d: duplicate player name %q", ErrInvalidInput, i, p.Name)
		}
		seen[p.Name] = struct{}{}
		normalized = append(normalized, p)
	}

	created, updated, err := s.playerRepo.BatchUpsert(ctx, normalized)
	if err != nil {
		return 0, 0, fmt.Errorf("batch upsert players: %w", err)
	}

	return created, updated, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, u player.Update) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if u.Empty() {
		return player.Player{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	current, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	// Validate the merged result so a partial edit cannot cross min and
	// max prices, even when only one side changes.
	merged := u.Apply(current)
	if err := merged.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	updated, exists, err := s.playerRepo.Update(ctx, id, u)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return updated, nil
}

// UnlockPlayer clears a buyout lock so bidding can continue. Unlocking an
// already-open player is a no-op, not an error.
func (s *PlayerService) UnlockPlayer(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UnlockPlayer")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.Unlock(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("unlock player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return p, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return nil
}

func normalizePlayer(p player.Player) player.Player {
	p.Name = strings.TrimSpace(p.Name)
	p.TeamOut = strings.TrimSpace(p.TeamOut)
	p.Position = strings.TrimSpace(p.Position)
	p.SecondaryPosition = strings.TrimSpace(p.SecondaryPosition)
	p.Height = strings.TrimSpace(p.Height)
	p.Weight = strings.TrimSpace(p.Weight)
	return p
}
