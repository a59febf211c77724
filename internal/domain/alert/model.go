package alert

import (
	"context"
	"time"
)

// ModuleAuctionBid tags alerts raised by the bid submission path.
const ModuleAuctionBid = "auctionbid"

// Alert is an advisory record for manual review. It never influences the
// operation that raised it.
type Alert struct {
	ID        int64
	TeamID    int64
	TeamName  string
	Token     string
	Module    string
	Payload   map[string]any
	Message   string
	CreatedAt time.Time
}

// Recorder persists alerts. Implementations may be asynchronous; callers
// treat Record as fire-and-forget and must swallow its errors after logging.
type Recorder interface {
	Record(ctx context.Context, a Alert) error
}
