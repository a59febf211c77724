package bid

import "context"

// Repository owns the bid acceptance transaction and the history log.
//
// SubmitBid serializes concurrent bids per player with an exclusive row
// lock, validates against the locked snapshot through Evaluate, applies
// the ledger mutation and the history append atomically, and returns the
// committed snapshot. The returned bool reports whether the player exists;
// business rejections surface as the rules errors from this package.
type Repository interface {
	SubmitBid(ctx context.Context, playerID int64, team string, price int64) (Result, bool, error)
	ListByPlayer(ctx context.Context, playerID int64, page, pageSize int) ([]Bid, int, error)
	ListAll(ctx context.Context) ([]Bid, error)
}
