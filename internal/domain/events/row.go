package events

import (
	"encoding/json"
	"strings"
	"time"

	"walnie-api/internal/platform/timecodec"
)

// Row es la forma plana que persiste el storage. Los timestamps son `any`
// porque según el adapter pueden venir como string de formato fijo o como
// datetime nativo del driver; ambos pasan por el codec al leer.
type Row struct {
	ID          string
	Type        string
	OccurredAt  any
	FeedMethod  *string
	DurationMin *int
	AmountMl    *int
	PumpStartAt any
	PumpEndAt   any
	Note        *string
	EventMeta   *string
	CreatedAt   any
	UpdatedAt   any
}

// ToRow proyecta un Event ya validado a la fila persistida. Confía en el
// evento: acá no se re-valida nada.
func ToRow(e Event) (Row, error) {
	r := Row{
		ID:          e.ID,
		Type:        string(e.Type),
		OccurredAt:  timecodec.EncodeForStorage(e.OccurredAt),
		DurationMin: e.DurationMin,
		AmountMl:    e.AmountMl,
		Note:        e.Note,
		CreatedAt:   timecodec.EncodeForStorage(e.CreatedAt),
		UpdatedAt:   timecodec.EncodeForStorage(e.UpdatedAt),
	}

	if e.FeedMethod != nil {
		fm := string(*e.FeedMethod)
		r.FeedMethod = &fm
	}
	if e.PumpStartAt != nil {
		r.PumpStartAt = timecodec.EncodeForStorage(*e.PumpStartAt)
	}
	if e.PumpEndAt != nil {
		r.PumpEndAt = timecodec.EncodeForStorage(*e.PumpEndAt)
	}
	if e.Meta != nil {
		b, err := json.Marshal(e.Meta)
		if err != nil {
			return Row{}, err
		}
		s := string(b)
		r.EventMeta = &s
	}

	return r, nil
}

// FromRow reconstruye un Event desde una fila persistida. A diferencia de
// ToRow, acá se tolera cualquier fila vieja o defectuosa: el tipo legacy se
// canonicaliza, un meta ilegible degrada a nil en vez de fallar la lectura,
// y a los eventos diaper sin meta guardado se les materializa el default.
func FromRow(r Row) (Event, error) {
	source := EventType(r.Type)
	canonical := CanonicalType(source)

	occurredAt, err := rowTime(r.OccurredAt, "occurred_at")
	if err != nil {
		return Event{}, err
	}
	createdAt, err := rowTime(r.CreatedAt, "created_at")
	if err != nil {
		return Event{}, err
	}
	updatedAt, err := rowTime(r.UpdatedAt, "updated_at")
	if err != nil {
		return Event{}, err
	}
	pumpStartAt, err := rowOptionalTime(r.PumpStartAt, "pump_start_at")
	if err != nil {
		return Event{}, err
	}
	pumpEndAt, err := rowOptionalTime(r.PumpEndAt, "pump_end_at")
	if err != nil {
		return Event{}, err
	}

	meta, malformed := decodeMetaText(r.EventMeta)
	if !malformed {
		meta = ApplyMetaDefaults(canonical, meta, source)
	}

	e := Event{
		ID:          r.ID,
		Type:        canonical,
		OccurredAt:  occurredAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DurationMin: r.DurationMin,
		AmountMl:    r.AmountMl,
		PumpStartAt: pumpStartAt,
		PumpEndAt:   pumpEndAt,
		Note:        r.Note,
		Meta:        meta,
	}
	if r.FeedMethod != nil {
		fm := FeedMethod(*r.FeedMethod)
		e.FeedMethod = &fm
	}

	return e, nil
}

// decodeMetaText decodifica la columna de texto del meta. Un texto ilegible
// (filas escritas bajo un esquema viejo o corruptas) degrada a nil: una
// lectura nunca falla por el meta. El segundo retorno distingue "ilegible"
// de "ausente" para que el defaulting no tape datos corruptos.
func decodeMetaText(text *string) (*EventMeta, bool) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil, false
	}

	var meta EventMeta
	if err := json.Unmarshal([]byte(*text), &meta); err != nil {
		return nil, true
	}
	return &meta, false
}

func rowTime(v any, column string) (time.Time, error) {
	iso, err := timecodec.DecodeFromStorage(v)
	if err != nil {
		return time.Time{}, err
	}
	return timecodec.ParseRequired(iso, column)
}

func rowOptionalTime(v any, column string) (*time.Time, error) {
	iso, err := timecodec.DecodeFromStorage(v)
	if err != nil {
		return nil, err
	}
	if iso == "" {
		return nil, nil
	}
	return timecodec.ParseOptional(iso, column)
}
