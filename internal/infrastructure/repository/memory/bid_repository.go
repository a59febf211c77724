package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
)

// BidRepository layers the acceptance protocol over a memory player
// repository. The player mutex stands in for the row lock: every bid for
// every player serializes through it, which is strict enough for tests.
type BidRepository struct {
	players *PlayerRepository

	mu      sync.RWMutex
	history []bid.Bid
	nextID  int64
	now     func() time.Time
}

func NewBidRepository(players *PlayerRepository) *BidRepository {
	return &BidRepository{
		players: players,
		nextID:  1,
		now:     time.Now,
	}
}

func (r *BidRepository) SubmitBid(_ context.Context, playerID int64, team string, price int64) (bid.Result, bool, error) {
	r.players.mu.Lock()
	defer r.players.mu.Unlock()

	p, ok := r.players.players[playerID]
	if !ok {
		return bid.Result{}, false, nil
	}

	isBuyout, err := bid.Evaluate(p, price)
	if err != nil {
		return bid.Result{}, true, err
	}

	now := r.now()
	p.CurrentBidPrice = &price
	p.CurrentBidTeam = &team
	p.Buyout = isBuyout
	p.UpdatedAt = now
	r.players.players[playerID] = p

	r.mu.Lock()
	r.history = append(r.history, bid.Bid{
		ID:        r.nextID,
		PlayerID:  playerID,
		Team:      team,
		Price:     price,
		CreatedAt: now,
	})
	r.nextID++
	r.mu.Unlock()

	return bid.Result{Player: p, IsBuyout: isBuyout}, true, nil
}

func (r *BidRepository) ListByPlayer(_ context.Context, playerID int64, page, pageSize int) ([]bid.Bid, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]bid.Bid, 0)
	for _, b := range r.history {
		if b.PlayerID == playerID {
			matched = append(matched, b)
		}
	}
	// Newest first, same as the persistent store.
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := len(matched)
	start := (page - 1) * pageSize
	if start >= total {
		return []bid.Bid{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (r *BidRepository) ListAll(_ context.Context) ([]bid.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bid.Bid, 0, len(r.history))
	out = append(out, r.history...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlayerID != out[j].PlayerID {
			return out[i].PlayerID < out[j].PlayerID
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
