package deadline

import (
	"errors"
	"testing"
	"time"
)

func TestValidateWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		at        time.Time
		targetErr error
	}{
		{name: "one hour ahead", at: now.Add(time.Hour)},
		{name: "exactly at the window edge", at: now.Add(MaxWindow)},
		{name: "in the past", at: now.Add(-time.Minute), targetErr: ErrNotFuture},
		{name: "equal to now", at: now, targetErr: ErrNotFuture},
		{name: "beyond the window", at: now.Add(MaxWindow + time.Second), targetErr: ErrBeyondWindow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWindow(now, tc.at)
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}
