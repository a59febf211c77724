package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
	qb "github.com/riskibarqy/transfer-auction/internal/platform/querybuilder"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

type BidRepository struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

var bidSelectColumns = []string{
	"id",
	"player_id",
	"team",
	"price",
	"created_at",
}

type bidTableModel struct {
	ID        int64     `db:"id"`
	PlayerID  int64     `db:"player_id"`
	Team      string    `db:"team"`
	Price     int64     `db:"price"`
	CreatedAt time.Time `db:"created_at"`
}

func (m bidTableModel) toDomain() bid.Bid {
	return bid.Bid{
		ID:        m.ID,
		PlayerID:  m.PlayerID,
		Team:      m.Team,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
	}
}

func NewBidRepository(db *sqlx.DB, lockTimeout time.Duration) *BidRepository {
	return &BidRepository{db: db, lockTimeout: lockTimeout}
}

// SubmitBid runs the whole acceptance protocol in one transaction. The
// player row is locked before validation so two competing bids always see
// each other: the loser of the lock race validates against the winner's
// committed state, or fails fast with a lock timeout.
func (r *BidRepository) SubmitBid(ctx context.Context, playerID int64, team string, price int64) (bid.Result, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return bid.Result{}, false, fmt.Errorf("begin tx for bid submit: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if r.lockTimeout > 0 {
		// SET LOCAL does not accept bind parameters; the value is a
		// formatted integer, never caller input.
		timeoutQuery := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, timeoutQuery); err != nil {
			return bid.Result{}, false, fmt.Errorf("set lock timeout: %w", err)
		}
	}

	const lockQuery = `
SELECT id, name, team_out, age, current_ability, potential_ability,
    position, secondary_position, height, weight, min_price, max_price,
    current_bid_price, current_bid_team, buyout, created_at, updated_at
FROM players
WHERE id = $1
FOR UPDATE`

	var row playerTableModel
	if err := tx.GetContext(ctx, &row, lockQuery, playerID); err != nil {
		if isNotFound(err) {
			return bid.Result{}, false, nil
		}
		if isLockTimeout(err) {
			return bid.Result{}, false, fmt.Errorf("lock player %d for bid: %w", playerID, usecase.ErrDependencyUnavailable)
		}
		return bid.Result{}, false, fmt.Errorf("lock player for bid: %w", err)
	}

	snapshot := row.toDomain()
	isBuyout, err := bid.Evaluate(snapshot, price)
	if err != nil {
		return bid.Result{}, true, err
	}

	const updateQuery = `
UPDATE players
SET current_bid_price = $2,
    current_bid_team = $3,
    buyout = $4,
    updated_at = NOW()
WHERE id = $1
RETURNING id, name, team_out, age, current_ability, potential_ability,
    position, secondary_position, height, weight, min_price, max_price,
    current_bid_price, current_bid_team, buyout, created_at, updated_at`

	var updated playerTableModel
	if err := tx.GetContext(ctx, &updated, updateQuery, playerID, price, team, isBuyout); err != nil {
		return bid.Result{}, true, fmt.Errorf("apply bid to player: %w", err)
	}

	const historyQuery = `
INSERT INTO bid_history (player_id, team, price)
VALUES ($1, $2, $3)`

	if _, err := tx.ExecContext(ctx, historyQuery, playerID, team, price); err != nil {
		return bid.Result{}, true, fmt.Errorf("append bid history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return bid.Result{}, true, fmt.Errorf("commit bid submit: %w", err)
	}

	return bid.Result{Player: updated.toDomain(), IsBuyout: isBuyout}, true, nil
}

func (r *BidRepository) ListByPlayer(ctx context.Context, playerID int64, page, pageSize int) ([]bid.Bid, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bid_history WHERE player_id = $1`, playerID); err != nil {
		return nil, 0, fmt.Errorf("count bid history: %w", err)
	}

	query, args, err := qb.Select(bidSelectColumns...).From("bid_history").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select bid history query: %w", err)
	}

	var rows []bidTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select bid history: %w", err)
	}

	out := make([]bid.Bid, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, total, nil
}

func (r *BidRepository) ListAll(ctx context.Context) ([]bid.Bid, error) {
	query, args, err := qb.Select(bidSelectColumns...).From("bid_history").
		OrderBy("player_id", "created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select all bids query: %w", err)
	}

	var rows []bidTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select all bids: %w", err)
	}

	out := make([]bid.Bid, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
