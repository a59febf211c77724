package bid

import (
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/player"
)

// Bid is one accepted entry in a player's append-only bid history.
type Bid struct {
	ID        int64
	PlayerID  int64
	Team      string
	Price     int64
	CreatedAt time.Time
}

// Result is the outcome of an accepted bid: the refreshed player snapshot
// and whether this bid reached the buyout price.
type Result struct {
	Player   player.Player
	IsBuyout bool
}
