package events

import (
	"context"
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

// Record normaliza el payload crudo y lo persiste con semántica upsert:
// un segundo write con el mismo id pisa todos los campos.
func (s *Service) Record(ctx context.Context, body map[string]any) (Event, error) {
	e, err := Normalize(body)
	if err != nil {
		return Event{}, err
	}
	if err := s.repo.Upsert(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// ListRange devuelve los eventos con occurred_at en [from, to).
func (s *Service) ListRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	return s.repo.ListRange(ctx, from, to)
}

// LatestByType devuelve el evento más reciente del tipo crudo pedido.
// Los tipos legacy son consultables: filas viejas pueden seguir teniéndolos.
func (s *Service) LatestByType(ctx context.Context, raw string) (Event, error) {
	t := EventType(raw)
	if !IsInputType(t) {
		return Event{}, validate.New("type", "type is invalid")
	}
	return s.repo.LatestByType(ctx, t)
}

// TodaySummary computa el resumen del día calendario UTC que contiene a now.
func (s *Service) TodaySummary(ctx context.Context) (Summary, error) {
	from, to := DayWindow(s.now())

	counts, err := s.repo.CountsByType(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}
	latestFeed, err := s.repo.LatestFeedAt(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}

	return BuildSummary(counts, latestFeed), nil
}
