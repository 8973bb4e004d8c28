// Package timecodec convierte entre timestamps ISO-8601 de la API y la
// representación fija que persiste el storage (sin timezone, precisión ms).
package timecodec

import (
	"strings"
	"time"

	"walnie-api/internal/platform/validate"
)

const (
	// storageLayout es el formato persistido: granularidad de milisegundos,
	// sin timezone (siempre UTC por convención).
	storageLayout = "2006-01-02 15:04:05.000"

	// isoLayout es el formato de salida hacia clientes (UTC => sufijo Z).
	isoLayout = "2006-01-02T15:04:05.000Z07:00"
)

// layouts aceptados al parsear entrada de clientes, en orden de prueba.
// Los que no llevan zona se interpretan como UTC.
var parseLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02 15:04:05.999999999", false},
	{"2006-01-02", false},
}

// ParseRequired parsea un timestamp obligatorio. Falla si el valor está
// ausente, en blanco, no es string o no es un datetime válido.
func ParseRequired(value any, field string) (time.Time, error) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}, validate.New(field, field+" is required and must be an ISO datetime string")
	}
	t, ok := parseAny(s)
	if !ok {
		return time.Time{}, validate.New(field, field+" must be a valid ISO datetime string")
	}
	return t, nil
}

// ParseOptional parsea un timestamp opcional: nil o "" devuelve nil sin error.
func ParseOptional(value any, field string) (*time.Time, error) {
	if value == nil || value == "" {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, validate.New(field, field+" must be a valid ISO datetime string")
	}
	t, ok := parseAny(s)
	if !ok {
		return nil, validate.New(field, field+" must be a valid ISO datetime string")
	}
	return &t, nil
}

func parseAny(s string) (time.Time, bool) {
	for _, l := range parseLayouts {
		var (
			t   time.Time
			err error
		)
		if l.zoned {
			t, err = time.Parse(l.layout, s)
		} else {
			t, err = time.ParseInLocation(l.layout, s, time.UTC)
		}
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// EncodeForStorage proyecta un instante al formato persistido (UTC, ms).
func EncodeForStorage(t time.Time) string {
	return t.UTC().Format(storageLayout)
}

// DecodeFromStorage convierte un valor crudo del storage a ISO-8601 con Z.
// Acepta el string de formato fijo o un datetime nativo del driver.
// Un string sin fracción de segundos se completa con ".000".
func DecodeFromStorage(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		withMs := v
		if !strings.Contains(withMs, ".") {
			withMs += ".000"
		}
		return strings.Replace(withMs, " ", "T", 1) + "Z", nil
	case time.Time:
		return FormatISO(v), nil
	default:
		return "", validate.New("", "unsupported datetime type from database")
	}
}

// FormatISO renderiza un instante como ISO-8601 UTC con milisegundos.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
