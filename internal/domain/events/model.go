package events

import "time"

// Event es la entidad central: un registro de cuidado (toma, pañal, extracción)
// ya validado y canonicalizado. Es inmutable dentro de un request; la
// persistencia hace insert-or-replace por ID (last-writer-wins).
type Event struct {
	// ID lo provee el cliente y es la clave de upsert.
	ID string

	// Type siempre es canónico (los legacy poop/pee ya colapsados a diaper).
	Type EventType

	OccurredAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	FeedMethod  *FeedMethod
	DurationMin *int
	AmountMl    *int

	PumpStartAt *time.Time
	PumpEndAt   *time.Time

	Note *string

	// Meta es el sub-documento polimórfico. Puede ser nil para feed/pump;
	// para eventos tipo diaper siempre queda materializado un default.
	Meta *EventMeta
}

// EventMeta es el documento adjunto versionado por esquema. Qué campos son
// legales depende del tipo del evento dueño (ver meta.go).
type EventMeta struct {
	SchemaVersion int         `json:"schemaVersion"`
	Status        *MetaStatus `json:"status,omitempty"`
	ChangedDiaper *bool       `json:"changedDiaper,omitempty"`
	HasRash       *bool       `json:"hasRash,omitempty"`

	FeedLeftDurationMin  *int `json:"feedLeftDurationMin,omitempty"`
	FeedRightDurationMin *int `json:"feedRightDurationMin,omitempty"`

	PumpLeftMl  *int `json:"pumpLeftMl,omitempty"`
	PumpRightMl *int `json:"pumpRightMl,omitempty"`

	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment es una imagen embebida en el meta. El payload base64 es opaco
// para este core; CreatedAt se valida como ISO pero se guarda tal cual.
type Attachment struct {
	ID        string             `json:"id"`
	MimeType  AttachmentMimeType `json:"mimeType"`
	Base64    string             `json:"base64"`
	CreatedAt string             `json:"createdAt"`
}

// Summary es el resumen del día UTC en curso. poopCount/peeCount se conservan
// por compatibilidad de wire: con el esquema actual siempre son cero porque
// esos tipos se canonicalizan a diaper al escribir.
type Summary struct {
	FeedCount    int     `json:"feedCount"`
	PoopCount    int     `json:"poopCount"`
	PeeCount     int     `json:"peeCount"`
	DiaperCount  int     `json:"diaperCount"`
	PumpCount    int     `json:"pumpCount"`
	LatestFeedAt *string `json:"latestFeedAt"`
}
