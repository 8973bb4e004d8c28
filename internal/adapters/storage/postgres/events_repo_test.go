package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walnie-api/internal/domain/events"
)

var eventCols = []string{
	"id", "type", "occurred_at", "feed_method", "duration_min", "amount_ml",
	"pump_start_at", "pump_end_at", "note", "event_meta", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *EventsRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewEventsRepo(db)
}

func TestEventsRepo_Upsert(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	note := "siesta"
	amount := 120
	e := events.Event{
		ID:         "evt-1",
		Type:       events.EventTypeFeed,
		OccurredAt: at,
		CreatedAt:  at,
		UpdatedAt:  at,
		AmountMl:   &amount,
		Note:       &note,
	}

	mock.ExpectExec("INSERT INTO events").
		WithArgs(
			"evt-1", "feed", "2026-08-31 10:00:00.000",
			nil, nil, 120, nil, nil, "siesta", nil,
			"2026-08-31 10:00:00.000", "2026-08-31 10:00:00.000",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), e)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventsRepo_ListRange_MapsRowsThroughMapper(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	at := from.Add(10 * time.Hour)

	rows := sqlmock.NewRows(eventCols).
		AddRow("evt-1", "feed", at, "breastLeft", 15, 120, nil, nil, nil, nil, at, at).
		// fila legacy: tipo pee y sin meta; debe salir canonicalizada
		AddRow("old-1", "pee", at.Add(-time.Hour), nil, nil, nil, nil, nil, nil, nil, at, at)

	mock.ExpectQuery("FROM events").
		WithArgs("2026-08-31 00:00:00.000", "2026-09-01 00:00:00.000").
		WillReturnRows(rows)

	got, err := repo.ListRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, events.EventTypeFeed, got[0].Type)
	require.NotNil(t, got[0].FeedMethod)
	assert.Equal(t, events.FeedMethodBreastLeft, *got[0].FeedMethod)
	require.NotNil(t, got[0].AmountMl)
	assert.Equal(t, 120, *got[0].AmountMl)

	assert.Equal(t, events.EventTypeDiaper, got[1].Type)
	require.NotNil(t, got[1].Meta)
	assert.Equal(t, events.MetaStatusPee, *got[1].Meta.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventsRepo_LatestByType_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery("FROM events").
		WithArgs("pump").
		WillReturnRows(sqlmock.NewRows(eventCols))

	_, err := repo.LatestByType(context.Background(), events.EventTypePump)
	assert.ErrorIs(t, err, events.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventsRepo_CountsByType(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{"type", "count"}).
		AddRow("feed", 4).
		AddRow("diaper", 2)

	mock.ExpectQuery("SELECT type, COUNT").
		WithArgs("2026-08-31 00:00:00.000", "2026-09-01 00:00:00.000").
		WillReturnRows(rows)

	counts, err := repo.CountsByType(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"feed": 4, "diaper": 2}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventsRepo_LatestFeedAt_EmptyIsNil(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT occurred_at").
		WithArgs("2026-08-31 00:00:00.000", "2026-09-01 00:00:00.000").
		WillReturnRows(sqlmock.NewRows([]string{"occurred_at"}))

	latest, err := repo.LatestFeedAt(context.Background(), from, to)
	require.NoError(t, err)
	assert.Nil(t, latest)
	assert.NoError(t, mock.ExpectationsWereMet())
}
