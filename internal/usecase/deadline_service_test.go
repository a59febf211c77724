package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/infrastructure/repository/memory"
)

func TestDeadlineService_SetAndGet(t *testing.T) {
	service := NewDeadlineService(memory.NewDeadlineRepository())

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	at := now.Add(6 * time.Hour)
	if err := service.SetDeadline(t.Context(), at); err != nil {
		t.Fatalf("set deadline failed: %v", err)
	}

	got, err := service.GetDeadline(t.Context())
	if err != nil {
		t.Fatalf("get deadline failed: %v", err)
	}
	if got == nil || !got.Equal(at) {
		t.Fatalf("expected deadline %v, got %v", at, got)
	}
}

func TestDeadlineService_SetRejectsPast(t *testing.T) {
	service := NewDeadlineService(memory.NewDeadlineRepository())

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	if err := service.SetDeadline(t.Context(), now.Add(-time.Minute)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for past deadline, got %v", err)
	}
	if err := service.SetDeadline(t.Context(), now); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for deadline equal to now, got %v", err)
	}
}

func TestDeadlineService_SetRejectsBeyondWindow(t *testing.T) {
	service := NewDeadlineService(memory.NewDeadlineRepository())

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	if err := service.SetDeadline(t.Context(), now.Add(24*time.Hour+time.Second)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput beyond window, got %v", err)
	}
	// Exactly at the window edge is allowed.
	if err := service.SetDeadline(t.Context(), now.Add(24*time.Hour)); err != nil {
		t.Fatalf("deadline at window edge must be accepted: %v", err)
	}
}

func TestDeadlineService_Clear(t *testing.T) {
	service := NewDeadlineService(memory.NewDeadlineRepository())

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	if err := service.SetDeadline(t.Context(), now.Add(time.Hour)); err != nil {
		t.Fatalf("set deadline failed: %v", err)
	}
	if err := service.ClearDeadline(t.Context()); err != nil {
		t.Fatalf("clear deadline failed: %v", err)
	}

	got, err := service.GetDeadline(t.Context())
	if err != nil {
		t.Fatalf("get deadline failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no deadline after clear, got %v", got)
	}
}
