package reminders

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

const (
	// DefaultIntervalHours aplica cuando nunca se configuró la política.
	DefaultIntervalHours = 3

	MinIntervalHours = 1
	MaxIntervalHours = 6
)

// Policy es la política de recordatorio de tomas: un singleton con el
// intervalo en horas que usa el widget del teléfono.
type Policy struct {
	IntervalHours int
	UpdatedAt     time.Time
}

// Repository persiste el singleton (upsert sobre una fila fija).
type Repository interface {
	Get(ctx context.Context) (Policy, error)
	Set(ctx context.Context, p Policy) error
}
