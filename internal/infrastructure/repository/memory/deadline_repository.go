package memory

import (
	"context"
	"sync"
	"time"
)

type DeadlineRepository struct {
	mu sync.RWMutex
	at *time.Time
}

func NewDeadlineRepository() *DeadlineRepository {
	return &DeadlineRepository{}
}

func (r *DeadlineRepository) Get(_ context.Context) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.at == nil {
		return nil, nil
	}
	at := *r.at

	return &at, nil
}

func (r *DeadlineRepository) Set(_ context.Context, at *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if at == nil {
		r.at = nil
		return nil
	}
	copied := *at
	r.at = &copied

	return nil
}
