package deadline

import (
	"errors"
	"fmt"
	"time"
)

// MaxWindow bounds how far ahead the auction deadline may be set.
const MaxWindow = 24 * time.Hour

var (
	ErrNotFuture    = errors.New("deadline must be in the future")
	ErrBeyondWindow = errors.New("deadline exceeds the allowed window")
)

// ValidateWindow checks that at is strictly after now and within MaxWindow.
func ValidateWindow(now, at time.Time) error {
	if !at.After(now) {
		return fmt.Errorf("%w: deadline=%s now=%s", ErrNotFuture, at.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	if at.Sub(now) > MaxWindow {
		return fmt.Errorf("%w: deadline=%s window=%s", ErrBeyondWindow, at.Format(time.RFC3339), MaxWindow)
	}

	return nil
}
