package postgres

import (
	"context"
	"database/sql"

	"walnie-api/internal/domain/reminders"
	"walnie-api/internal/platform/timecodec"
)

// policyRowID: la política es un singleton, siempre la fila 1.
const policyRowID = 1

type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Get(ctx context.Context) (reminders.Policy, error) {
	var p reminders.Policy
	err := r.db.QueryRowContext(ctx, `
		SELECT interval_hours, updated_at
		FROM reminder_policy
		WHERE id = $1
		LIMIT 1
	`, policyRowID).Scan(&p.IntervalHours, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return reminders.Policy{}, reminders.ErrNotFound
	}
	if err != nil {
		return reminders.Policy{}, err
	}
	return p, nil
}

func (r *RemindersRepo) Set(ctx context.Context, p reminders.Policy) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminder_policy (id, interval_hours, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			interval_hours = EXCLUDED.interval_hours,
			updated_at = EXCLUDED.updated_at
	`, policyRowID, p.IntervalHours, timecodec.EncodeForStorage(p.UpdatedAt))
	return err
}
