package events

import (
	"fmt"

	"walnie-api/internal/platform/timecodec"
	"walnie-api/internal/platform/validate"
)

const maxAttachments = 3

// normalizeMeta valida el documento eventMeta crudo contra el tipo del evento.
// Las reglas de presencia de status/changedDiaper se evalúan contra el tipo
// FUENTE (incluye legacy poop/pee); hasRash contra el tipo ya canonicalizado.
// Esa asimetría es deliberada: hasRash es un campo nuevo que los clientes
// legacy nunca mandaron.
//
// Un raw nil devuelve nil: la materialización del default para tipos diaper
// queda en manos de ApplyMetaDefaults, que es el único punto de defaulting.
func normalizeMeta(raw any, source EventType) (*EventMeta, error) {
	if raw == nil {
		return nil, nil
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, validate.New("eventMeta", "eventMeta must be an object")
	}

	canonical := CanonicalType(source)
	meta := &EventMeta{SchemaVersion: 1}

	if v, ok := doc["schemaVersion"]; ok && v != nil {
		n, isInt := intValue(v)
		if !isInt || n <= 0 {
			return nil, validate.New("eventMeta.schemaVersion", "eventMeta.schemaVersion must be a positive integer")
		}
		meta.SchemaVersion = n
	}

	if v, ok := doc["status"]; ok && v != nil {
		s, isStr := v.(string)
		if !isStr || !metaStatuses[MetaStatus(s)] {
			return nil, validate.New("eventMeta.status", "eventMeta.status must be one of poop, pee, mixed")
		}
		st := MetaStatus(s)
		meta.Status = &st
	}

	if v, ok := doc["changedDiaper"]; ok && v != nil {
		b, isBool := v.(bool)
		if !isBool {
			return nil, validate.New("eventMeta.changedDiaper", "eventMeta.changedDiaper must be a boolean")
		}
		meta.ChangedDiaper = &b
	}

	if IsDiaperLike(source) {
		if meta.Status == nil {
			return nil, validate.New("eventMeta.status", "eventMeta.status is required for diaper events")
		}
		if meta.ChangedDiaper == nil {
			return nil, validate.New("eventMeta.changedDiaper", "eventMeta.changedDiaper is required for diaper events")
		}
	}

	if v, ok := doc["hasRash"]; ok && v != nil {
		if canonical != EventTypeDiaper {
			return nil, validate.New("eventMeta.hasRash", "eventMeta.hasRash is only allowed for diaper events")
		}
		b, isBool := v.(bool)
		if !isBool {
			return nil, validate.New("eventMeta.hasRash", "eventMeta.hasRash must be a boolean")
		}
		meta.HasRash = &b
	}

	var err error
	if meta.FeedLeftDurationMin, err = typedMetaInt(doc, "feedLeftDurationMin", source, EventTypeFeed, "feed"); err != nil {
		return nil, err
	}
	if meta.FeedRightDurationMin, err = typedMetaInt(doc, "feedRightDurationMin", source, EventTypeFeed, "feed"); err != nil {
		return nil, err
	}
	if meta.PumpLeftMl, err = typedMetaInt(doc, "pumpLeftMl", source, EventTypePump, "pump"); err != nil {
		return nil, err
	}
	if meta.PumpRightMl, err = typedMetaInt(doc, "pumpRightMl", source, EventTypePump, "pump"); err != nil {
		return nil, err
	}

	if v, ok := doc["attachments"]; ok && v != nil {
		atts, err := normalizeAttachments(v)
		if err != nil {
			return nil, err
		}
		meta.Attachments = atts
	}

	return meta, nil
}

// typedMetaInt valida un entero no negativo que solo es legal para un tipo
// de evento concreto (feed o pump).
func typedMetaInt(doc map[string]any, key string, source, allowed EventType, allowedName string) (*int, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, nil
	}

	field := "eventMeta." + key
	if source != allowed {
		return nil, validate.New(field, fmt.Sprintf("%s is only allowed for %s events", field, allowedName))
	}

	n, isInt := intValue(v)
	if !isInt || n < 0 {
		return nil, validate.New(field, field+" must be a non-negative integer")
	}
	return &n, nil
}

func normalizeAttachments(raw any) ([]Attachment, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, validate.New("eventMeta.attachments", "eventMeta.attachments must be an array")
	}
	if len(list) > maxAttachments {
		return nil, validate.New("eventMeta.attachments",
			fmt.Sprintf("eventMeta.attachments must not contain more than %d items", maxAttachments))
	}

	out := make([]Attachment, 0, len(list))
	for i, item := range list {
		prefix := fmt.Sprintf("eventMeta.attachments[%d]", i)

		doc, ok := item.(map[string]any)
		if !ok {
			return nil, validate.New(prefix, prefix+" must be an object")
		}

		id, _ := doc["id"].(string)
		if id == "" {
			return nil, validate.New(prefix+".id", prefix+".id must be a non-empty string")
		}

		mime, _ := doc["mimeType"].(string)
		if !attachmentMimeTypes[AttachmentMimeType(mime)] {
			return nil, validate.New(prefix+".mimeType", prefix+".mimeType must be image/jpeg or image/png")
		}

		b64, _ := doc["base64"].(string)
		if b64 == "" {
			return nil, validate.New(prefix+".base64", prefix+".base64 must be a non-empty string")
		}

		// createdAt se valida como ISO pero se guarda tal cual vino
		// (no pasa por el codec de storage).
		createdAt, _ := doc["createdAt"].(string)
		if _, err := timecodec.ParseRequired(createdAt, prefix+".createdAt"); err != nil {
			return nil, err
		}

		out = append(out, Attachment{
			ID:        id,
			MimeType:  AttachmentMimeType(mime),
			Base64:    b64,
			CreatedAt: createdAt,
		})
	}

	return out, nil
}

// defaultMetaFor sintetiza el meta default de un evento diaper. El status se
// deriva del tipo fuente legacy: poop→poop, pee→pee, cualquier otro→mixed.
func defaultMetaFor(source EventType) *EventMeta {
	status := MetaStatusMixed
	switch source {
	case EventTypePoop:
		status = MetaStatusPoop
	case EventTypePee:
		status = MetaStatusPee
	}

	changed := true
	rash := false
	return &EventMeta{
		SchemaVersion: 1,
		Status:        &status,
		ChangedDiaper: &changed,
		HasRash:       &rash,
		Attachments:   []Attachment{},
	}
}

// ApplyMetaDefaults es la política de defaulting única, compartida por el
// camino de escritura y el de lectura: los eventos diaper siempre terminan
// con un meta materializado con status y changedDiaper poblados. Para los
// demás tipos devuelve el meta tal cual (posiblemente nil).
func ApplyMetaDefaults(canonical EventType, meta *EventMeta, source EventType) *EventMeta {
	if canonical != EventTypeDiaper {
		return meta
	}
	if meta == nil {
		return defaultMetaFor(source)
	}

	def := defaultMetaFor(source)
	if meta.SchemaVersion <= 0 {
		meta.SchemaVersion = def.SchemaVersion
	}
	if meta.Status == nil {
		meta.Status = def.Status
	}
	if meta.ChangedDiaper == nil {
		meta.ChangedDiaper = def.ChangedDiaper
	}
	return meta
}

// intValue extrae un entero de un valor JSON laxo. Los números llegan como
// float64 vía encoding/json; se rechazan los no enteros.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
