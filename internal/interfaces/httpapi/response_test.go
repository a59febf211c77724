package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "not found", err: fmt.Errorf("%w: player=4", usecase.ErrNotFound), wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{name: "unauthorized", err: fmt.Errorf("%w: nope", usecase.ErrUnauthorized), wantStatus: http.StatusUnauthorized, wantReason: "unauthorized"},
		{name: "lock contention", err: fmt.Errorf("lock: %w", usecase.ErrDependencyUnavailable), wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{name: "buyout lock", err: fmt.Errorf("submit: %w", bid.ErrLocked), wantStatus: http.StatusConflict, wantReason: "bidLocked"},
		{name: "below minimum", err: fmt.Errorf("submit: %w", bid.ErrBelowMinimum), wantStatus: http.StatusBadRequest, wantReason: "invalidBid"},
		{name: "above maximum", err: fmt.Errorf("submit: %w", bid.ErrAboveMaximum), wantStatus: http.StatusBadRequest, wantReason: "invalidBid"},
		{name: "below current", err: fmt.Errorf("submit: %w", bid.ErrBelowCurrent), wantStatus: http.StatusBadRequest, wantReason: "invalidBid"},
		{name: "unknown", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError, wantReason: "internalError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(context.Background(), tc.err)
			if mapped.HTTPStatus != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, mapped.HTTPStatus)
			}
			if mapped.Reason != tc.wantReason {
				t.Fatalf("expected reason %q, got %q", tc.wantReason, mapped.Reason)
			}
		})
	}
}
