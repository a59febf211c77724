package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/transfer-auction/internal/domain/teamtoken"
	"github.com/riskibarqy/transfer-auction/internal/platform/id"
)

type TeamTokenService struct {
	tokenRepo teamtoken.Repository
	idGen     id.Generator
}

func NewTeamTokenService(tokenRepo teamtoken.Repository, idGen id.Generator) *TeamTokenService {
	return &TeamTokenService{tokenRepo: tokenRepo, idGen: idGen}
}

// IssueToken mints a fresh opaque token for a team. The value is returned
// once here and handed to the team out of band.
func (s *TeamTokenService) IssueToken(ctx context.Context, teamName string) (teamtoken.TeamToken, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamTokenService.IssueToken")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return teamtoken.TeamToken{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	token, err := s.idGen.NewID()
	if err != nil {
		return teamtoken.TeamToken{}, fmt.Errorf("generate team token: %w", err)
	}

	created, err := s.tokenRepo.Create(ctx, teamName, token)
	if err != nil {
		if errors.Is(err, teamtoken.ErrTeamTaken) {
			return teamtoken.TeamToken{}, fmt.Errorf("%w: team %q already has a token", ErrInvalidInput, teamName)
		}
		return teamtoken.TeamToken{}, fmt.Errorf("create team token: %w", err)
	}

	return created, nil
}

func (s *TeamTokenService) ListTokens(ctx context.Context) ([]teamtoken.TeamToken, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamTokenService.ListTokens")
	defer span.End()

	tokens, err := s.tokenRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team tokens: %w", err)
	}

	return tokens, nil
}

func (s *TeamTokenService) SetTokenActive(ctx context.Context, tokenID int64, active bool) (teamtoken.TeamToken, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamTokenService.SetTokenActive")
	defer span.End()

	if tokenID <= 0 {
		return teamtoken.TeamToken{}, fmt.Errorf("%w: token id is required", ErrInvalidInput)
	}

	t, exists, err := s.tokenRepo.SetActive(ctx, tokenID, active)
	if err != nil {
		return teamtoken.TeamToken{}, fmt.Errorf("set team token active: %w", err)
	}
	if !exists {
		return teamtoken.TeamToken{}, fmt.Errorf("%w: token=%d", ErrNotFound, tokenID)
	}

	return t, nil
}
