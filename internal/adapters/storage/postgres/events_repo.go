package postgres

import (
	"context"
	"database/sql"
	"time"

	"walnie-api/internal/domain/events"
	"walnie-api/internal/platform/timecodec"
)

const eventColumns = `
	id, type, occurred_at, feed_method, duration_min, amount_ml,
	pump_start_at, pump_end_at, note, event_meta, created_at, updated_at`

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Upsert(ctx context.Context, e events.Event) error {
	row, err := events.ToRow(e)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO events (
			id, type, occurred_at, feed_method, duration_min, amount_ml,
			pump_start_at, pump_end_at, note, event_meta, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type,
			occurred_at = EXCLUDED.occurred_at,
			feed_method = EXCLUDED.feed_method,
			duration_min = EXCLUDED.duration_min,
			amount_ml = EXCLUDED.amount_ml,
			pump_start_at = EXCLUDED.pump_start_at,
			pump_end_at = EXCLUDED.pump_end_at,
			note = EXCLUDED.note,
			event_meta = EXCLUDED.event_meta,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
	`,
		row.ID,
		row.Type,
		row.OccurredAt,
		row.FeedMethod,
		row.DurationMin,
		row.AmountMl,
		row.PumpStartAt,
		row.PumpEndAt,
		row.Note,
		row.EventMeta,
		row.CreatedAt,
		row.UpdatedAt,
	)
	return err
}

func (r *EventsRepo) ListRange(ctx context.Context, from, to time.Time) ([]events.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY occurred_at DESC
	`,
		timecodec.EncodeForStorage(from),
		timecodec.EncodeForStorage(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventsRepo) LatestByType(ctx context.Context, t events.EventType) (events.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE type = $1
		ORDER BY occurred_at DESC
		LIMIT 1
	`, string(t))
	if err != nil {
		return events.Event{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return events.Event{}, err
		}
		return events.Event{}, events.ErrNotFound
	}
	return scanEvent(rows)
}

func (r *EventsRepo) CountsByType(ctx context.Context, from, to time.Time) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT type, COUNT(*)
		FROM events
		WHERE occurred_at >= $1 AND occurred_at < $2
		GROUP BY type
	`,
		timecodec.EncodeForStorage(from),
		timecodec.EncodeForStorage(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, err
		}
		counts[typ] = n
	}
	return counts, rows.Err()
}

func (r *EventsRepo) LatestFeedAt(ctx context.Context, from, to time.Time) (*time.Time, error) {
	var occurredAt time.Time
	err := r.db.QueryRowContext(ctx, `
		SELECT occurred_at
		FROM events
		WHERE type = 'feed' AND occurred_at >= $1 AND occurred_at < $2
		ORDER BY occurred_at DESC
		LIMIT 1
	`,
		timecodec.EncodeForStorage(from),
		timecodec.EncodeForStorage(to),
	).Scan(&occurredAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	occurredAt = occurredAt.UTC()
	return &occurredAt, nil
}

// scanEvent lee una fila y la pasa por el Row Mapper: el driver entrega los
// timestamps como time.Time y el meta como texto; FromRow tolera filas viejas.
func scanEvent(rows *sql.Rows) (events.Event, error) {
	var (
		row         events.Row
		occurredAt  time.Time
		createdAt   time.Time
		updatedAt   time.Time
		feedMethod  sql.NullString
		durationMin sql.NullInt64
		amountMl    sql.NullInt64
		pumpStartAt sql.NullTime
		pumpEndAt   sql.NullTime
		note        sql.NullString
		eventMeta   sql.NullString
	)

	if err := rows.Scan(
		&row.ID,
		&row.Type,
		&occurredAt,
		&feedMethod,
		&durationMin,
		&amountMl,
		&pumpStartAt,
		&pumpEndAt,
		&note,
		&eventMeta,
		&createdAt,
		&updatedAt,
	); err != nil {
		return events.Event{}, err
	}

	row.OccurredAt = occurredAt
	row.CreatedAt = createdAt
	row.UpdatedAt = updatedAt
	if feedMethod.Valid {
		row.FeedMethod = &feedMethod.String
	}
	if durationMin.Valid {
		n := int(durationMin.Int64)
		row.DurationMin = &n
	}
	if amountMl.Valid {
		n := int(amountMl.Int64)
		row.AmountMl = &n
	}
	if pumpStartAt.Valid {
		row.PumpStartAt = pumpStartAt.Time
	}
	if pumpEndAt.Valid {
		row.PumpEndAt = pumpEndAt.Time
	}
	if note.Valid {
		row.Note = &note.String
	}
	if eventMeta.Valid {
		row.EventMeta = &eventMeta.String
	}

	return events.FromRow(row)
}
