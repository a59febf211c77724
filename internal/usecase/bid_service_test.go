package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/transfer-auction/internal/domain/alert"
	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
	"github.com/riskibarqy/transfer-auction/internal/domain/identity"
	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	"github.com/riskibarqy/transfer-auction/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/transfer-auction/internal/platform/logging"
)

func teamAlpha() identity.Identity {
	return identity.Identity{Kind: identity.KindTeam, TeamID: 1, TeamName: "Alpha FC", Token: memory.TeamTokenAlphaFC}
}

func teamBeta() identity.Identity {
	return identity.Identity{Kind: identity.KindTeam, TeamID: 2, TeamName: "Beta United", Token: memory.TeamTokenBetaUtd}
}

func newBidFixture() (*BidService, *memory.AlertRepository) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	bidRepo := memory.NewBidRepository(playerRepo)
	alerts := memory.NewAlertRepository()
	service := NewBidService(bidRepo, playerRepo, alerts, logging.NewNop())
	return service, alerts
}

func TestBidService_SubmitBid_FirstBid(t *testing.T) {
	service, _ := newBidFixture()

	result, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 1_000_000)
	if err != nil {
		t.Fatalf("submit first bid failed: %v", err)
	}
	if result.IsBuyout {
		t.Fatal("minimum-price bid must not trigger a buyout")
	}
	if result.Player.CurrentBidPrice == nil || *result.Player.CurrentBidPrice != 1_000_000 {
		t.Fatalf("expected current bid price 1000000, got %v", result.Player.CurrentBidPrice)
	}
	if result.Player.CurrentBidTeam == nil || *result.Player.CurrentBidTeam != "Alpha FC" {
		t.Fatalf("expected current bid team Alpha FC, got %v", result.Player.CurrentBidTeam)
	}
}

func TestBidService_SubmitBid_BuyoutLocksPlayer(t *testing.T) {
	service, _ := newBidFixture()

	result, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 5_000_000)
	if err != nil {
		t.Fatalf("submit buyout bid failed: %v", err)
	}
	if !result.IsBuyout {
		t.Fatal("max-price bid must trigger a buyout")
	}

	_, err = service.SubmitBid(t.Context(), teamBeta(), 1, "Beta United", 5_000_000)
	if !errors.Is(err, bid.ErrLocked) {
		t.Fatalf("expected ErrLocked after buyout, got %v", err)
	}
}

func TestBidService_SubmitBid_PriceBounds(t *testing.T) {
	service, _ := newBidFixture()

	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 999_999); !errors.Is(err, bid.ErrBelowMinimum) {
		t.Fatalf("expected ErrBelowMinimum, got %v", err)
	}
	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 5_000_001); !errors.Is(err, bid.ErrAboveMaximum) {
		t.Fatalf("expected ErrAboveMaximum, got %v", err)
	}
}

func TestBidService_SubmitBid_TieReassignsLeader(t *testing.T) {
	service, _ := newBidFixture()

	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 2_000_000); err != nil {
		t.Fatalf("submit leading bid failed: %v", err)
	}

	result, err := service.SubmitBid(t.Context(), teamBeta(), 1, "Beta United", 2_000_000)
	if err != nil {
		t.Fatalf("equal-price bid must be accepted, got %v", err)
	}
	if result.Player.CurrentBidTeam == nil || *result.Player.CurrentBidTeam != "Beta United" {
		t.Fatalf("expected leader Beta United after tie, got %v", result.Player.CurrentBidTeam)
	}

	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 1_999_999); !errors.Is(err, bid.ErrBelowCurrent) {
		t.Fatalf("expected ErrBelowCurrent, got %v", err)
	}
}

func TestBidService_SubmitBid_ZeroPriceOnFreePlayer(t *testing.T) {
	free := player.Player{
		ID: 1, Name: "Luca Ferri", TeamOut: "Prato Nuovo",
		Age: 31, CurrentAbility: 110, PotentialAbility: 112,
		Position: "DR",
		MinPrice: 0, MaxPrice: 250_000,
	}
	playerRepo := memory.NewPlayerRepository([]player.Player{free})
	bidRepo := memory.NewBidRepository(playerRepo)
	service := NewBidService(bidRepo, playerRepo, memory.NewAlertRepository(), logging.NewNop())

	result, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 0)
	if err != nil {
		t.Fatalf("zero bid on a zero-minimum player must be accepted: %v", err)
	}
	if result.Player.CurrentBidPrice == nil || *result.Player.CurrentBidPrice != 0 {
		t.Fatalf("expected committed bid price 0, got %v", result.Player.CurrentBidPrice)
	}

	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
}

func TestBidService_SubmitBid_BlankTeamRejected(t *testing.T) {
	service, alerts := newBidFixture()

	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "", 1_000_000); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty team, got %v", err)
	}
	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "   ", 1_000_000); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for whitespace team, got %v", err)
	}

	if got := len(alerts.Recorded()); got != 0 {
		t.Fatalf("rejected bids must not alert, got %d", got)
	}
}

func TestBidService_SubmitBid_UnknownPlayer(t *testing.T) {
	service, _ := newBidFixture()

	_, err := service.SubmitBid(t.Context(), teamAlpha(), 999, "Alpha FC", 1_000_000)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBidService_SubmitBid_RequiresTeamIdentity(t *testing.T) {
	service, _ := newBidFixture()

	_, err := service.SubmitBid(t.Context(), identity.Admin(), 1, "Alpha FC", 1_000_000)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for admin caller, got %v", err)
	}
}

func TestBidService_SubmitBid_DeclaredTeamMismatchRaisesAlert(t *testing.T) {
	service, alerts := newBidFixture()

	// Alpha FC's token declares a bid as Gamma City on a player leaving
	// CD Ribera; the caller matches neither, so the bid stands and an
	// advisory alert is recorded.
	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Gamma City", 1_500_000); err != nil {
		t.Fatalf("mismatched bid must still be accepted: %v", err)
	}

	recorded := alerts.Recorded()
	if len(recorded) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(recorded))
	}
	if recorded[0].Module != alert.ModuleAuctionBid {
		t.Fatalf("expected module %s, got %s", alert.ModuleAuctionBid, recorded[0].Module)
	}
	if recorded[0].TeamName != "Alpha FC" {
		t.Fatalf("expected alert team Alpha FC, got %s", recorded[0].TeamName)
	}
	if recorded[0].Payload["bid_team"] != "Gamma City" {
		t.Fatalf("expected declared team in payload, got %v", recorded[0].Payload["bid_team"])
	}
}

func TestBidService_SubmitBid_NoAlertWhenIdentityMatches(t *testing.T) {
	service, alerts := newBidFixture()

	// A team bidding under its own name never alerts.
	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 1_000_000); err != nil {
		t.Fatalf("bid failed: %v", err)
	}

	// The club the player is leaving may bid under another name.
	ribera := identity.Identity{Kind: identity.KindTeam, TeamID: 3, TeamName: "CD Ribera", Token: "tok-ribera"}
	if _, err := service.SubmitBid(t.Context(), ribera, 1, "Gamma City", 2_000_000); err != nil {
		t.Fatalf("bid failed: %v", err)
	}

	if got := len(alerts.Recorded()); got != 0 {
		t.Fatalf("expected no alerts, got %d", got)
	}
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, alert.Alert) error {
	return errors.New("alert store down")
}

func TestBidService_SubmitBid_AlertFailureDoesNotRejectBid(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	bidRepo := memory.NewBidRepository(playerRepo)
	service := NewBidService(bidRepo, playerRepo, failingRecorder{}, logging.NewNop())

	result, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Gamma City", 1_500_000)
	if err != nil {
		t.Fatalf("bid must survive a failed alert insert: %v", err)
	}
	if result.Player.CurrentBidPrice == nil || *result.Player.CurrentBidPrice != 1_500_000 {
		t.Fatalf("expected committed bid price 1500000, got %v", result.Player.CurrentBidPrice)
	}
}

func TestBidService_ListHistory(t *testing.T) {
	service, _ := newBidFixture()

	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 1, "Alpha FC", 1_000_000); err != nil {
		t.Fatalf("seed bid failed: %v", err)
	}
	if _, err := service.SubmitBid(t.Context(), teamBeta(), 1, "Beta United", 2_000_000); err != nil {
		t.Fatalf("seed bid failed: %v", err)
	}

	bids, total, err := service.ListHistory(t.Context(), 1, 1, 10)
	if err != nil {
		t.Fatalf("list history failed: %v", err)
	}
	if total != 2 || len(bids) != 2 {
		t.Fatalf("expected 2 history entries, got total=%d len=%d", total, len(bids))
	}
	if bids[0].Price != 2_000_000 {
		t.Fatalf("expected newest bid first, got price %d", bids[0].Price)
	}

	if _, _, err := service.ListHistory(t.Context(), 999, 1, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
}

func TestBidService_LatestBids(t *testing.T) {
	service, _ := newBidFixture()

	if _, err := service.SubmitBid(t.Context(), teamAlpha(), 2, "Alpha FC", 600_000); err != nil {
		t.Fatalf("seed bid failed: %v", err)
	}

	latest, err := service.LatestBids(t.Context())
	if err != nil {
		t.Fatalf("latest bids failed: %v", err)
	}
	if len(latest) != len(memory.SeedPlayers()) {
		t.Fatalf("expected one entry per player, got %d", len(latest))
	}

	var found bool
	for _, entry := range latest {
		if entry.PlayerID != 2 {
			continue
		}
		found = true
		if entry.Price == nil || *entry.Price != 600_000 {
			t.Fatalf("expected latest price 600000 for player 2, got %v", entry.Price)
		}
		if entry.Team == nil || *entry.Team != "Alpha FC" {
			t.Fatalf("expected latest team Alpha FC for player 2, got %v", entry.Team)
		}
	}
	if !found {
		t.Fatal("player 2 missing from latest bids")
	}
}
