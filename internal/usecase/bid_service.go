package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/alert"
	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
	"github.com/riskibarqy/transfer-auction/internal/domain/identity"
	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	"github.com/riskibarqy/transfer-auction/internal/platform/logging"
)

type BidService struct {
	bidRepo    bid.Repository
	playerRepo player.Repository
	alerts     alert.Recorder
	logger     *logging.Logger
}

func NewBidService(bidRepo bid.Repository, playerRepo player.Repository, alerts alert.Recorder, logger *logging.Logger) *BidService {
	return &BidService{
		bidRepo:    bidRepo,
		playerRepo: playerRepo,
		alerts:     alerts,
		logger:     logger,
	}
}

// SubmitBid pushes a bid through the acceptance transaction. The bid is
// recorded under the declared team, which the caller must supply. Alerting
// is advisory: once the transaction commits the bid stands, whatever
// happens to the alert insert.
func (s *BidService) SubmitBid(ctx context.Context, caller identity.Identity, playerID int64, team string, price int64) (bid.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BidService.SubmitBid")
	defer span.End()

	if caller.Kind != identity.KindTeam || caller.TeamName == "" {
		return bid.Result{}, fmt.Errorf("%w: bids require a team token", ErrUnauthorized)
	}
	if playerID <= 0 {
		return bid.Result{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	// A zero bid is legal on a player whose minimum is zero.
	if price < 0 {
		return bid.Result{}, fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	team = strings.TrimSpace(team)
	if team == "" {
		return bid.Result{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	result, exists, err := s.bidRepo.SubmitBid(ctx, playerID, team, price)
	if err != nil {
		return bid.Result{}, fmt.Errorf("submit bid: %w", err)
	}
	if !exists {
		return bid.Result{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	s.maybeAlertIdentityMismatch(ctx, caller, team, result, price)

	return result, nil
}

// maybeAlertIdentityMismatch flags a bid whose caller matches neither the
// declared bid team nor the club the player is leaving. The bid is still
// accepted; the record exists for the organizer to review.
func (s *BidService) maybeAlertIdentityMismatch(ctx context.Context, caller identity.Identity, team string, result bid.Result, price int64) {
	if caller.TeamName == team || caller.TeamName == result.Player.TeamOut {
		return
	}

	a := alert.Alert{
		TeamID:   caller.TeamID,
		TeamName: caller.TeamName,
		Token:    caller.Token,
		Module:   alert.ModuleAuctionBid,
		Message:  "bid team does not match the token's bound identity",
		Payload: map[string]any{
			"player_id":   result.Player.ID,
			"player_name": result.Player.Name,
			"team_out":    result.Player.TeamOut,
			"bid_team":    team,
			"price":       price,
			"is_buyout":   result.IsBuyout,
		},
	}
	if err := s.alerts.Record(ctx, a); err != nil {
		s.logger.WarnContext(ctx, "record bid identity alert",
			"player_id", result.Player.ID, "team_name", caller.TeamName, "error", err.Error())
	}
}

func (s *BidService) ListHistory(ctx context.Context, playerID int64, page, pageSize int) ([]bid.Bid, int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BidService.ListHistory")
	defer span.End()

	if playerID <= 0 {
		return nil, 0, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	page, pageSize = clampPage(page, pageSize)

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, 0, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return nil, 0, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	bids, total, err := s.bidRepo.ListByPlayer(ctx, playerID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list bid history: %w", err)
	}

	return bids, total, nil
}

// LatestBid is the per-player slice of the ledger the auction page polls.
type LatestBid struct {
	PlayerID  int64
	Price     *int64
	Team      *string
	IsBuyout  bool
	UpdatedAt time.Time
}

func (s *BidService) LatestBids(ctx context.Context) ([]LatestBid, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BidService.LatestBids")
	defer span.End()

	players, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for latest bids: %w", err)
	}

	out := make([]LatestBid, 0, len(players))
	for _, p := range players {
		out = append(out, LatestBid{
			PlayerID:  p.ID,
			Price:     p.CurrentBidPrice,
			Team:      p.CurrentBidTeam,
			IsBuyout:  p.Buyout,
			UpdatedAt: p.UpdatedAt,
		})
	}

	return out, nil
}
