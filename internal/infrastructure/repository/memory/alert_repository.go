package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/alert"
)

type AlertRepository struct {
	mu     sync.RWMutex
	alerts []alert.Alert
	nextID int64
	now    func() time.Time
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{nextID: 1, now: time.Now}
}

func (r *AlertRepository) Record(_ context.Context, a alert.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	a.CreatedAt = r.now()
	r.nextID++
	r.alerts = append(r.alerts, a)

	return nil
}

// Recorded returns a copy of everything recorded so far, oldest first.
func (r *AlertRepository) Recorded() []alert.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]alert.Alert, 0, len(r.alerts))
	out = append(out, r.alerts...)

	return out
}
