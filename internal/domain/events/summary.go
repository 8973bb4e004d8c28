package events

import (
	"time"

	"walnie-api/internal/platform/timecodec"
)

// DayWindow calcula la ventana [dayStart, dayEnd) del día calendario UTC que
// contiene a now. El límite superior es exclusivo: un evento exactamente en
// dayEnd pertenece al día siguiente.
func DayWindow(now time.Time) (time.Time, time.Time) {
	u := now.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// BuildSummary arma el resumen a partir de los conteos crudos por tipo.
// poopCount/peeCount se mapean aunque con el esquema actual siempre den cero
// (los legacy se canonicalizan a diaper al escribir); se mantienen por
// compatibilidad con clientes existentes.
func BuildSummary(counts map[string]int, latestFeedAt *time.Time) Summary {
	s := Summary{
		FeedCount:   counts[string(EventTypeFeed)],
		PoopCount:   counts[string(EventTypePoop)],
		PeeCount:    counts[string(EventTypePee)],
		DiaperCount: counts[string(EventTypeDiaper)],
		PumpCount:   counts[string(EventTypePump)],
	}
	if latestFeedAt != nil {
		iso := timecodec.FormatISO(*latestFeedAt)
		s.LatestFeedAt = &iso
	}
	return s
}
