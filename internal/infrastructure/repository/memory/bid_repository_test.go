package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
)

// Two simultaneous bids on one player must serialize: the higher price ends
// up as the single leader, and the lower one either lands in the history
// first or is rejected against the committed higher bid.
func TestBidRepository_ConcurrentBidsYieldOneLeader(t *testing.T) {
	players := NewPlayerRepository(SeedPlayers())
	repo := NewBidRepository(players)

	const (
		lowPrice  = int64(1_000_000)
		highPrice = int64(2_000_000)
	)

	start := make(chan struct{})
	outcomes := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	submit := func(team string, price int64) {
		defer wg.Done()
		<-start
		_, exists, err := repo.SubmitBid(context.Background(), 1, team, price)
		if !exists {
			outcomes <- errors.New("player vanished mid-auction")
			return
		}
		outcomes <- err
	}
	go submit("Alpha FC", lowPrice)
	go submit("Beta United", highPrice)

	close(start)
	wg.Wait()
	close(outcomes)

	rejected := 0
	for err := range outcomes {
		if err == nil {
			continue
		}
		// Only the low bid may lose, and only against the committed
		// higher bid.
		if !errors.Is(err, bid.ErrBelowCurrent) {
			t.Fatalf("unexpected bid error: %v", err)
		}
		rejected++
	}
	if rejected > 1 {
		t.Fatalf("at most one bid may be rejected, got %d", rejected)
	}

	p, ok, err := players.GetByID(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("read player after bids: ok=%v err=%v", ok, err)
	}
	if p.CurrentBidPrice == nil || *p.CurrentBidPrice != highPrice {
		t.Fatalf("expected the higher bid to lead, got %v", p.CurrentBidPrice)
	}
	if p.CurrentBidTeam == nil || *p.CurrentBidTeam != "Beta United" {
		t.Fatalf("expected Beta United as the single leader, got %v", p.CurrentBidTeam)
	}

	history, total, err := repo.ListByPlayer(context.Background(), 1, 1, 10)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if want := 2 - rejected; total != want || len(history) != want {
		t.Fatalf("expected %d history entries, got total=%d len=%d", want, total, len(history))
	}
	if history[0].Price != highPrice {
		t.Fatalf("expected the winning bid newest in history, got %d", history[0].Price)
	}
}
