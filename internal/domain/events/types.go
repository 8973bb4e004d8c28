package events

// EventType es el tipo canónico de un evento tal como se persiste.
// @Enum feed, diaper, pump
type EventType string

const (
	EventTypeFeed   EventType = "feed"
	EventTypeDiaper EventType = "diaper"
	EventTypePump   EventType = "pump"

	// Tipos legacy: se aceptan en entrada y se colapsan a diaper.
	// La distinción original sobrevive solo en eventMeta.status.
	EventTypePoop EventType = "poop"
	EventTypePee  EventType = "pee"
)

// inputEventTypes son los tipos aceptados en entrada (canónicos + legacy).
var inputEventTypes = map[EventType]bool{
	EventTypeFeed:   true,
	EventTypeDiaper: true,
	EventTypePump:   true,
	EventTypePoop:   true,
	EventTypePee:    true,
}

// IsInputType indica si el valor es un tipo de evento admisible en entrada.
func IsInputType(t EventType) bool {
	return inputEventTypes[t]
}

// CanonicalType colapsa los tipos legacy (poop/pee) a diaper.
func CanonicalType(t EventType) EventType {
	if t == EventTypePoop || t == EventTypePee {
		return EventTypeDiaper
	}
	return t
}

// IsDiaperLike indica si el tipo fuente (pre-canonicalización) es
// diaper, poop o pee.
func IsDiaperLike(t EventType) bool {
	return t == EventTypeDiaper || t == EventTypePoop || t == EventTypePee
}

// FeedMethod define cómo se alimentó al bebé.
// @Enum breastLeft, breastRight, bottleFormula, bottleBreastmilk, mixed
type FeedMethod string

const (
	FeedMethodBreastLeft       FeedMethod = "breastLeft"
	FeedMethodBreastRight      FeedMethod = "breastRight"
	FeedMethodBottleFormula    FeedMethod = "bottleFormula"
	FeedMethodBottleBreastmilk FeedMethod = "bottleBreastmilk"
	FeedMethodMixed            FeedMethod = "mixed"
)

var feedMethods = map[FeedMethod]bool{
	FeedMethodBreastLeft:       true,
	FeedMethodBreastRight:      true,
	FeedMethodBottleFormula:    true,
	FeedMethodBottleBreastmilk: true,
	FeedMethodMixed:            true,
}

// MetaStatus describe qué había en el pañal.
// @Enum poop, pee, mixed
type MetaStatus string

const (
	MetaStatusPoop  MetaStatus = "poop"
	MetaStatusPee   MetaStatus = "pee"
	MetaStatusMixed MetaStatus = "mixed"
)

var metaStatuses = map[MetaStatus]bool{
	MetaStatusPoop:  true,
	MetaStatusPee:   true,
	MetaStatusMixed: true,
}

// AttachmentMimeType define los formatos de imagen admitidos en adjuntos.
// @Enum image/jpeg, image/png
type AttachmentMimeType string

const (
	MimeJPEG AttachmentMimeType = "image/jpeg"
	MimePNG  AttachmentMimeType = "image/png"
)

var attachmentMimeTypes = map[AttachmentMimeType]bool{
	MimeJPEG: true,
	MimePNG:  true,
}
