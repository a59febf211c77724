// Package alerting decorates an alert recorder with a bounded worker pool
// so recording never sits on the bid submission path.
package alerting

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/transfer-auction/internal/domain/alert"
	"github.com/riskibarqy/transfer-auction/internal/platform/logging"
)

const recordTimeout = 5 * time.Second

// AsyncRecorder hands each alert to a pooled worker and returns
// immediately. A full pool falls back to synchronous recording rather than
// dropping the alert.
type AsyncRecorder struct {
	next   alert.Recorder
	pool   *ants.Pool
	logger *logging.Logger
}

func NewAsyncRecorder(next alert.Recorder, workers int, logger *logging.Logger) (*AsyncRecorder, error) {
	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, crerr.Wrap(err, "create alert worker pool")
	}

	return &AsyncRecorder{next: next, pool: pool, logger: logger}, nil
}

func (r *AsyncRecorder) Record(ctx context.Context, a alert.Alert) error {
	// The request context ends when the handler returns; the worker gets
	// its own deadline so an in-flight insert is not cancelled with it.
	err := r.pool.Submit(func() {
		recordCtx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := r.next.Record(recordCtx, a); err != nil {
			r.logger.Warn("record alert", "module", a.Module, "team_name", a.TeamName, "error", err.Error())
		}
	})
	if err != nil {
		// Pool saturated; record on the caller's goroutine instead.
		return crerr.Wrap(r.next.Record(ctx, a), "record alert synchronously")
	}

	return nil
}

// Release drains the pool. Call on shutdown.
func (r *AsyncRecorder) Release() {
	r.pool.Release()
}
