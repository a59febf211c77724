package bid

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/transfer-auction/internal/domain/player"
)

var (
	ErrLocked       = errors.New("bidding locked by buyout")
	ErrBelowMinimum = errors.New("bid below minimum price")
	ErrAboveMaximum = errors.New("bid above maximum price")
	ErrBelowCurrent = errors.New("bid below current leading bid")
)

// Evaluate validates a candidate price against the player's locked row state
// and reports whether accepting it triggers a buyout. The caller must hold
// the row lock, so p reflects all previously committed bids.
//
// Check order matters: a buyout lock rejects before any price bound is
// consulted. A bid equal to the current leading price is accepted and simply
// re-records the leader, possibly under a different team; equality is not
// treated as a failed raise.
func Evaluate(p player.Player, price int64) (bool, error) {
	if p.Buyout {
		return false, fmt.Errorf("%w: player=%d", ErrLocked, p.ID)
	}
	if price < p.MinPrice {
		return false, fmt.Errorf("%w: price=%d min=%d", ErrBelowMinimum, price, p.MinPrice)
	}
	if price > p.MaxPrice {
		return false, fmt.Errorf("%w: price=%d max=%d", ErrAboveMaximum, price, p.MaxPrice)
	}
	if p.CurrentBidPrice != nil && price < *p.CurrentBidPrice {
		return false, fmt.Errorf("%w: price=%d current=%d", ErrBelowCurrent, price, *p.CurrentBidPrice)
	}

	return price >= p.MaxPrice, nil
}
