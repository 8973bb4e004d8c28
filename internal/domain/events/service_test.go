package events

import (
	"context"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Event

	// capturas para asserts de ventana
	lastFrom time.Time
	lastTo   time.Time
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Event{}}
}

func (r *testRepo) Upsert(ctx context.Context, e Event) error {
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) ListRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	r.lastFrom, r.lastTo = from, to
	out := make([]Event, 0)
	for _, e := range r.byID {
		if !e.OccurredAt.Before(from) && e.OccurredAt.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) LatestByType(ctx context.Context, t EventType) (Event, error) {
	var (
		latest Event
		found  bool
	)
	for _, e := range r.byID {
		// tipo crudo, como el filtro SQL
		if e.Type != t {
			continue
		}
		if !found || e.OccurredAt.After(latest.OccurredAt) {
			latest = e
			found = true
		}
	}
	if !found {
		return Event{}, ErrNotFound
	}
	return latest, nil
}

func (r *testRepo) CountsByType(ctx context.Context, from, to time.Time) (map[string]int, error) {
	r.lastFrom, r.lastTo = from, to
	counts := map[string]int{}
	for _, e := range r.byID {
		if !e.OccurredAt.Before(from) && e.OccurredAt.Before(to) {
			counts[string(e.Type)]++
		}
	}
	return counts, nil
}

func (r *testRepo) LatestFeedAt(ctx context.Context, from, to time.Time) (*time.Time, error) {
	var latest *time.Time
	for _, e := range r.byID {
		if e.Type != EventTypeFeed {
			continue
		}
		if e.OccurredAt.Before(from) || !e.OccurredAt.Before(to) {
			continue
		}
		if latest == nil || e.OccurredAt.After(*latest) {
			t := e.OccurredAt
			latest = &t
		}
	}
	return latest, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Record_NormalizesAndPersists(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	e, err := svc.Record(context.Background(), payload("poop"))
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if e.Type != EventTypeDiaper {
		t.Fatalf("expected canonical type, got %s", e.Type)
	}

	stored, ok := repo.byID["evt-1"]
	if !ok {
		t.Fatalf("expected event persisted")
	}
	if stored.Meta == nil || *stored.Meta.Status != MetaStatusPoop {
		t.Fatalf("expected defaulted meta persisted, got %#v", stored.Meta)
	}
}

func TestService_Record_UpsertReplacesAllFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	first := payload("feed")
	first["note"] = "primera"
	first["amountMl"] = 90
	if _, err := svc.Record(context.Background(), first); err != nil {
		t.Fatalf("Record #1 error: %v", err)
	}

	second := payload("feed")
	second["note"] = "corregida"
	if _, err := svc.Record(context.Background(), second); err != nil {
		t.Fatalf("Record #2 error: %v", err)
	}

	if len(repo.byID) != 1 {
		t.Fatalf("expected a single row per id, got %d", len(repo.byID))
	}
	stored := repo.byID["evt-1"]
	if stored.Note == nil || *stored.Note != "corregida" {
		t.Fatalf("expected note replaced")
	}
	if stored.AmountMl != nil {
		t.Fatalf("expected amountMl cleared by the overwrite, got %v", *stored.AmountMl)
	}
}

func TestService_Record_ValidationFailureDoesNotPersist(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	body := payload("pump")
	body["amountMl"] = 90
	body["eventMeta"] = map[string]any{"pumpLeftMl": 40, "pumpRightMl": 60}

	if _, err := svc.Record(context.Background(), body); err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted on validation failure")
	}
}

func TestService_LatestByType_InvalidType(t *testing.T) {
	svc := NewService(newTestRepo())
	if _, err := svc.LatestByType(context.Background(), "nap"); err == nil {
		t.Fatalf("expected error for invalid type")
	}
}

func TestService_TodaySummary_UsesUTCDayWindow(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	dayStart := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	add := func(id string, typ EventType, at time.Time) {
		repo.byID[id] = Event{ID: id, Type: typ, OccurredAt: at, CreatedAt: at, UpdatedAt: at}
	}
	add("at-start", EventTypeFeed, dayStart)        // incluido
	add("at-end", EventTypeFeed, dayEnd)            // excluido
	add("mid", EventTypeDiaper, now.Add(-time.Hour)) // incluido
	add("yesterday", EventTypePump, dayStart.Add(-time.Minute))

	s, err := svc.TodaySummary(context.Background())
	if err != nil {
		t.Fatalf("TodaySummary error: %v", err)
	}

	if !repo.lastFrom.Equal(dayStart) || !repo.lastTo.Equal(dayEnd) {
		t.Fatalf("expected window [%v, %v), repo saw [%v, %v)", dayStart, dayEnd, repo.lastFrom, repo.lastTo)
	}
	if s.FeedCount != 1 {
		t.Fatalf("expected 1 feed (dayEnd exclusive), got %d", s.FeedCount)
	}
	if s.DiaperCount != 1 || s.PumpCount != 0 {
		t.Fatalf("unexpected counts: %#v", s)
	}
	if s.LatestFeedAt == nil || *s.LatestFeedAt != "2026-08-31T00:00:00.000Z" {
		t.Fatalf("unexpected latestFeedAt: %v", s.LatestFeedAt)
	}
}
