package deadline

import (
	"context"
	"time"
)

// Repository stores the single logically-current auction deadline.
// Set with nil clears it.
type Repository interface {
	Get(ctx context.Context) (*time.Time, error)
	Set(ctx context.Context, at *time.Time) error
}
