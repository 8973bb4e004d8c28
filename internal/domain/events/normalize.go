package events

import (
	"walnie-api/internal/platform/timecodec"
	"walnie-api/internal/platform/validate"
)

// Normalize valida y canonicaliza un payload crudo de cliente en un Event.
// Es una transformación pura: o devuelve el evento completo o un
// validate.Error nombrando el campo ofensivo; nunca un evento parcial.
func Normalize(body map[string]any) (Event, error) {
	if body == nil {
		return Event{}, validate.New("", "request body must be a JSON object")
	}

	id, err := optionalString(body["id"], "id")
	if err != nil {
		return Event{}, err
	}
	if id == nil {
		return Event{}, validate.New("id", "id is required")
	}

	rawType, _ := body["type"].(string)
	source := EventType(rawType)
	if !IsInputType(source) {
		return Event{}, validate.New("type", "type is invalid")
	}
	canonical := CanonicalType(source)

	occurredAt, err := timecodec.ParseRequired(body["occurredAt"], "occurredAt")
	if err != nil {
		return Event{}, err
	}
	createdAt, err := timecodec.ParseRequired(body["createdAt"], "createdAt")
	if err != nil {
		return Event{}, err
	}
	updatedAt, err := timecodec.ParseRequired(body["updatedAt"], "updatedAt")
	if err != nil {
		return Event{}, err
	}
	pumpStartAt, err := timecodec.ParseOptional(body["pumpStartAt"], "pumpStartAt")
	if err != nil {
		return Event{}, err
	}
	pumpEndAt, err := timecodec.ParseOptional(body["pumpEndAt"], "pumpEndAt")
	if err != nil {
		return Event{}, err
	}

	durationMin, err := optionalNonNegativeInt(body["durationMin"], "durationMin")
	if err != nil {
		return Event{}, err
	}
	amountMl, err := optionalPositiveInt(body["amountMl"], "amountMl")
	if err != nil {
		return Event{}, err
	}
	note, err := optionalString(body["note"], "note")
	if err != nil {
		return Event{}, err
	}
	feedMethod, err := optionalFeedMethod(body["feedMethod"])
	if err != nil {
		return Event{}, err
	}

	// El meta se valida contra el tipo FUENTE: los requisitos de
	// status/changedDiaper aplican también a los legacy poop/pee.
	meta, err := normalizeMeta(body["eventMeta"], source)
	if err != nil {
		return Event{}, err
	}
	meta = ApplyMetaDefaults(canonical, meta, source)

	if err := checkPumpAmounts(canonical, meta, amountMl); err != nil {
		return Event{}, err
	}

	return Event{
		ID:          *id,
		Type:        canonical,
		OccurredAt:  occurredAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		FeedMethod:  feedMethod,
		DurationMin: durationMin,
		AmountMl:    amountMl,
		PumpStartAt: pumpStartAt,
		PumpEndAt:   pumpEndAt,
		Note:        note,
		Meta:        meta,
	}, nil
}

// checkPumpAmounts hace cumplir la invariante de consistencia: si el meta de
// un evento pump trae cantidades por pecho, amountMl debe ser exactamente la
// suma y la suma debe ser positiva.
func checkPumpAmounts(canonical EventType, meta *EventMeta, amountMl *int) error {
	if canonical != EventTypePump || meta == nil {
		return nil
	}
	if meta.PumpLeftMl == nil && meta.PumpRightMl == nil {
		return nil
	}

	total := 0
	if meta.PumpLeftMl != nil {
		total += *meta.PumpLeftMl
	}
	if meta.PumpRightMl != nil {
		total += *meta.PumpRightMl
	}

	if total <= 0 {
		return validate.New("eventMeta.pumpLeftMl", "eventMeta.pumpLeftMl + eventMeta.pumpRightMl must be greater than zero")
	}
	if amountMl == nil || *amountMl != total {
		return validate.New("amountMl", "amountMl must equal eventMeta.pumpLeftMl + eventMeta.pumpRightMl")
	}
	return nil
}

func optionalString(v any, field string) (*string, error) {
	if v == nil || v == "" {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, validate.New(field, field+" must be a string")
	}
	return &s, nil
}

func optionalPositiveInt(v any, field string) (*int, error) {
	if v == nil || v == "" {
		return nil, nil
	}
	n, ok := intValue(v)
	if !ok || n <= 0 {
		return nil, validate.New(field, field+" must be a positive integer")
	}
	return &n, nil
}

func optionalNonNegativeInt(v any, field string) (*int, error) {
	if v == nil || v == "" {
		return nil, nil
	}
	n, ok := intValue(v)
	if !ok || n < 0 {
		return nil, validate.New(field, field+" must be a non-negative integer")
	}
	return &n, nil
}

func optionalFeedMethod(v any) (*FeedMethod, error) {
	if v == nil || v == "" {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok || !feedMethods[FeedMethod(s)] {
		return nil, validate.New("feedMethod", "feedMethod is invalid")
	}
	fm := FeedMethod(s)
	return &fm, nil
}
