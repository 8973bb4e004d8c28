package events

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Repository es el colaborador de storage: upsert por id (last-writer-wins),
// lectura por rango de occurred_at y las consultas crudas del resumen diario.
// Cada llamada se asume atómica; ninguna coordinación extra acá.
type Repository interface {
	Upsert(ctx context.Context, e Event) error

	// ListRange devuelve eventos con occurred_at en [from, to), más
	// recientes primero.
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)

	// LatestByType busca por el tipo CRUDO almacenado (puede ser legacy).
	LatestByType(ctx context.Context, t EventType) (Event, error)

	// CountsByType cuenta por tipo crudo almacenado dentro de [from, to).
	CountsByType(ctx context.Context, from, to time.Time) (map[string]int, error)

	// LatestFeedAt es el occurred_at del feed más reciente en [from, to),
	// o nil si no hay ninguno.
	LatestFeedAt(ctx context.Context, from, to time.Time) (*time.Time, error)
}
