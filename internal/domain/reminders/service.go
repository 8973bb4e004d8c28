package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walnie-api/internal/platform/validate"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Interval devuelve el intervalo configurado, o el default si nunca se seteó.
func (s *Service) Interval(ctx context.Context) (int, error) {
	p, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return DefaultIntervalHours, nil
	}
	if err != nil {
		return 0, err
	}
	return p.IntervalHours, nil
}

// SetInterval valida el rango y reemplaza la política.
func (s *Service) SetInterval(ctx context.Context, hours int) error {
	if hours < MinIntervalHours || hours > MaxIntervalHours {
		return validate.New("intervalHours",
			fmt.Sprintf("intervalHours must be an integer in range %d-%d", MinIntervalHours, MaxIntervalHours))
	}
	return s.repo.Set(ctx, Policy{
		IntervalHours: hours,
		UpdatedAt:     s.now(),
	})
}
