package events

import (
	"testing"
	"time"
)

func TestDayWindow_UTCCalendarDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 17, 45, 12, 0, time.UTC)
	start, end := DayWindow(now)

	if !start.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected dayStart: %v", start)
	}
	if !end.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected dayEnd: %v", end)
	}
}

func TestDayWindow_NormalizesZone(t *testing.T) {
	// 23:30 del 30/8 en -03:00 ya es 31/8 en UTC
	now := time.Date(2026, 8, 30, 23, 30, 0, 0, time.FixedZone("ART", -3*3600))
	start, _ := DayWindow(now)

	if !start.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected dayStart: %v", start)
	}
}

func TestBuildSummary_MapsCountsIncludingLegacy(t *testing.T) {
	latest := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	s := BuildSummary(map[string]int{
		"feed":   4,
		"diaper": 3,
		"pump":   2,
		"poop":   1, // filas viejas pre-canonicalización
	}, &latest)

	if s.FeedCount != 4 || s.DiaperCount != 3 || s.PumpCount != 2 {
		t.Fatalf("unexpected counts: %#v", s)
	}
	if s.PoopCount != 1 || s.PeeCount != 0 {
		t.Fatalf("legacy counts should pass through: %#v", s)
	}
	if s.LatestFeedAt == nil || *s.LatestFeedAt != "2026-08-31T14:00:00.000Z" {
		t.Fatalf("unexpected latestFeedAt: %v", s.LatestFeedAt)
	}
}

func TestBuildSummary_NoFeeds(t *testing.T) {
	s := BuildSummary(map[string]int{}, nil)
	if s.LatestFeedAt != nil {
		t.Fatalf("expected null latestFeedAt")
	}
	if s.FeedCount != 0 || s.DiaperCount != 0 {
		t.Fatalf("expected zero counts")
	}
}
