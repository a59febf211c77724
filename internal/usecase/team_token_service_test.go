package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/transfer-auction/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func TestTeamTokenService_IssueToken(t *testing.T) {
	repo := memory.NewTeamTokenRepository(nil)
	service := NewTeamTokenService(repo, staticIDGenerator{id: "tok-gamma-0003"})

	issued, err := service.IssueToken(t.Context(), " Gamma City ")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if issued.TeamName != "Gamma City" {
		t.Fatalf("expected trimmed team name, got %q", issued.TeamName)
	}
	if issued.Token != "tok-gamma-0003" {
		t.Fatalf("expected generated token, got %q", issued.Token)
	}
	if !issued.Active {
		t.Fatal("expected new token to be active")
	}

	_, err = service.IssueToken(t.Context(), "Gamma City")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate team, got %v", err)
	}

	_, err = service.IssueToken(t.Context(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank team, got %v", err)
	}
}

func TestTeamTokenService_SetTokenActive(t *testing.T) {
	repo := memory.NewTeamTokenRepository(memory.SeedTeamTokens())
	service := NewTeamTokenService(repo, staticIDGenerator{id: "unused"})

	deactivated, err := service.SetTokenActive(t.Context(), 1, false)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if deactivated.Active {
		t.Fatal("expected token inactive")
	}

	_, err = service.SetTokenActive(t.Context(), 99, false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamTokenService_ListTokens(t *testing.T) {
	repo := memory.NewTeamTokenRepository(memory.SeedTeamTokens())
	service := NewTeamTokenService(repo, staticIDGenerator{id: "unused"})

	tokens, err := service.ListTokens(t.Context())
	if err != nil {
		t.Fatalf("list tokens failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
}
