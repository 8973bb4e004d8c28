package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"walnie-api/internal/domain/events"
)

// eventsRepo guarda FILAS, no entidades: cada acceso pasa por el Row Mapper
// igual que en Postgres, así los tests de integración ejercitan el mismo
// camino de canonicalización y defaulting que producción.
type eventsRepo struct {
	mu   sync.RWMutex
	byID map[string]events.Row
}

func NewEventsRepo() events.Repository {
	return &eventsRepo{
		byID: make(map[string]events.Row),
	}
}

func (r *eventsRepo) Upsert(ctx context.Context, e events.Event) error {
	row, err := events.ToRow(e)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// insert-or-replace por id: el último write pisa todos los campos
	r.byID[row.ID] = row
	return nil
}

func (r *eventsRepo) ListRange(ctx context.Context, from, to time.Time) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, row := range r.byID {
		e, err := events.FromRow(row)
		if err != nil {
			return nil, err
		}
		if inRange(e.OccurredAt, from, to) {
			out = append(out, e)
		}
	}

	sortByOccurredAtDesc(out)
	return out, nil
}

func (r *eventsRepo) LatestByType(ctx context.Context, t events.EventType) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest events.Event
		found  bool
	)
	for _, row := range r.byID {
		// se filtra por tipo CRUDO almacenado, como hace el SQL
		if row.Type != string(t) {
			continue
		}
		e, err := events.FromRow(row)
		if err != nil {
			return events.Event{}, err
		}
		if !found || e.OccurredAt.After(latest.OccurredAt) {
			latest = e
			found = true
		}
	}

	if !found {
		return events.Event{}, events.ErrNotFound
	}
	return latest, nil
}

func (r *eventsRepo) CountsByType(ctx context.Context, from, to time.Time) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, row := range r.byID {
		e, err := events.FromRow(row)
		if err != nil {
			return nil, err
		}
		if inRange(e.OccurredAt, from, to) {
			counts[row.Type]++
		}
	}
	return counts, nil
}

func (r *eventsRepo) LatestFeedAt(ctx context.Context, from, to time.Time) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *time.Time
	for _, row := range r.byID {
		if row.Type != string(events.EventTypeFeed) {
			continue
		}
		e, err := events.FromRow(row)
		if err != nil {
			return nil, err
		}
		if !inRange(e.OccurredAt, from, to) {
			continue
		}
		if latest == nil || e.OccurredAt.After(*latest) {
			t := e.OccurredAt
			latest = &t
		}
	}
	return latest, nil
}

// inRange evalúa el intervalo semiabierto [from, to).
func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// Orden por occurred_at desc (más reciente primero).
func sortByOccurredAtDesc(out []events.Event) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
}
