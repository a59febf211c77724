package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DeadlineRepository stores the auction deadline as a single pinned row.
type DeadlineRepository struct {
	db *sqlx.DB
}

func NewDeadlineRepository(db *sqlx.DB) *DeadlineRepository {
	return &DeadlineRepository{db: db}
}

func (r *DeadlineRepository) Get(ctx context.Context) (*time.Time, error) {
	const query = `SELECT deadline_at FROM auction_deadline WHERE id = 1`

	var at *time.Time
	if err := r.db.GetContext(ctx, &at, query); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auction deadline: %w", err)
	}

	return at, nil
}

func (r *DeadlineRepository) Set(ctx context.Context, at *time.Time) error {
	const query = `
INSERT INTO auction_deadline (id, deadline_at)
VALUES (1, $1)
ON CONFLICT (id)
DO UPDATE SET deadline_at = EXCLUDED.deadline_at, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, at); err != nil {
		return fmt.Errorf("set auction deadline: %w", err)
	}

	return nil
}
