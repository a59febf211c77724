package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/deadline"
)

type DeadlineService struct {
	deadlineRepo deadline.Repository
	now          func() time.Time
}

func NewDeadlineService(deadlineRepo deadline.Repository) *DeadlineService {
	return &DeadlineService{
		deadlineRepo: deadlineRepo,
		now:          time.Now,
	}
}

func (s *DeadlineService) GetDeadline(ctx context.Context) (*time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeadlineService.GetDeadline")
	defer span.End()

	at, err := s.deadlineRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deadline: %w", err)
	}

	return at, nil
}

func (s *DeadlineService) SetDeadline(ctx context.Context, at time.Time) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeadlineService.SetDeadline")
	defer span.End()

	if err := deadline.ValidateWindow(s.now(), at); err != nil {
		if errors.Is(err, deadline.ErrNotFuture) || errors.Is(err, deadline.ErrBeyondWindow) {
			return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		return err
	}

	utc := at.UTC()
	if err := s.deadlineRepo.Set(ctx, &utc); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	return nil
}

func (s *DeadlineService) ClearDeadline(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeadlineService.ClearDeadline")
	defer span.End()

	if err := s.deadlineRepo.Set(ctx, nil); err != nil {
		return fmt.Errorf("clear deadline: %w", err)
	}

	return nil
}
