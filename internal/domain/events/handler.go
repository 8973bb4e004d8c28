package events

import (
	"encoding/json"
	"errors"
	"net/http"

	"walnie-api/internal/metrics"
	"walnie-api/internal/platform/timecodec"
	"walnie-api/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes limita el payload de escritura (los adjuntos van en base64).
const maxBodyBytes = 256 << 10

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/v1/events", func(er chi.Router) {
		er.Post("/", recordEventHandler(svc))
		er.Get("/", listEventsHandler(svc))
		er.Get("/latest", latestEventHandler(svc))
	})
	r.Get("/v1/summary/today", todaySummaryHandler(svc))
}

// eventResponse representa un evento de cuidado devuelto por la API.
// Los opcionales ausentes se serializan como null explícito (contrato con
// los clientes móviles existentes).
type eventResponse struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	OccurredAt  string      `json:"occurredAt"`
	FeedMethod  *FeedMethod `json:"feedMethod"`
	DurationMin *int        `json:"durationMin"`
	AmountMl    *int        `json:"amountMl"`
	PumpStartAt *string     `json:"pumpStartAt"`
	PumpEndAt   *string     `json:"pumpEndAt"`
	Note        *string     `json:"note"`
	EventMeta   *EventMeta  `json:"eventMeta"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

// errorResponse es el cuerpo uniforme de error de la API.
type errorResponse struct {
	Message string `json:"message"`
}

// recordEventHandler godoc
// @Summary Registrar evento de cuidado
// @Description Valida y canonicaliza el payload (los tipos legacy poop/pee colapsan a diaper) y lo persiste con semántica upsert por id: reenviar el mismo id reemplaza todos los campos.
// @Tags events
// @Accept json
// @Produce json
// @Param payload body map[string]any true "Evento; occurredAt/createdAt/updatedAt en ISO-8601"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errorResponse
// @Router /v1/events [post]
func recordEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "request body must be a JSON object")
			return
		}

		e, err := svc.Record(r.Context(), body)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		metrics.EventsRecorded.WithLabelValues(string(e.Type)).Inc()
		writeJSON(w, http.StatusCreated, map[string]string{"id": e.ID})
	}
}

// listEventsHandler godoc
// @Summary Listar eventos por rango
// @Description Devuelve los eventos con occurredAt en [from, to), más recientes primero. Ambos límites son obligatorios.
// @Tags events
// @Produce json
// @Param from query string true "Límite inferior (ISO-8601, inclusivo)"
// @Param to query string true "Límite superior (ISO-8601, exclusivo)"
// @Success 200 {array} eventResponse
// @Failure 400 {object} errorResponse
// @Router /v1/events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := timecodec.ParseRequired(r.URL.Query().Get("from"), "from")
		if err != nil {
			writeDomainError(w, err)
			return
		}
		to, err := timecodec.ParseRequired(r.URL.Query().Get("to"), "to")
		if err != nil {
			writeDomainError(w, err)
			return
		}

		items, err := svc.ListRange(r.Context(), from, to)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// latestEventHandler godoc
// @Summary Último evento de un tipo
// @Description Devuelve el evento más reciente del tipo crudo pedido (se admiten los legacy poop/pee: filas viejas pueden conservarlos).
// @Tags events
// @Produce json
// @Param type query string true "Tipo de evento" Enums(feed, diaper, pump, poop, pee)
// @Success 200 {object} eventResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /v1/events/latest [get]
func latestEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.LatestByType(r.Context(), r.URL.Query().Get("type"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not found")
				return
			}
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// todaySummaryHandler godoc
// @Summary Resumen del día
// @Description Conteos por tipo y hora de la última toma dentro del día calendario UTC en curso.
// @Tags summary
// @Produce json
// @Success 200 {object} Summary
// @Failure 500 {object} errorResponse
// @Router /v1/summary/today [get]
func todaySummaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.TodaySummary(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func toEventResponse(e Event) eventResponse {
	resp := eventResponse{
		ID:          e.ID,
		Type:        e.Type,
		OccurredAt:  timecodec.FormatISO(e.OccurredAt),
		FeedMethod:  e.FeedMethod,
		DurationMin: e.DurationMin,
		AmountMl:    e.AmountMl,
		Note:        e.Note,
		EventMeta:   e.Meta,
		CreatedAt:   timecodec.FormatISO(e.CreatedAt),
		UpdatedAt:   timecodec.FormatISO(e.UpdatedAt),
	}
	if e.PumpStartAt != nil {
		iso := timecodec.FormatISO(*e.PumpStartAt)
		resp.PumpStartAt = &iso
	}
	if e.PumpEndAt != nil {
		iso := timecodec.FormatISO(*e.PumpEndAt)
		resp.PumpEndAt = &iso
	}
	return resp
}

// writeDomainError traduce errores del dominio: los de validación son 400 y
// nombran el campo; cualquier otro es un 500 opaco.
func writeDomainError(w http.ResponseWriter, err error) {
	if ve, ok := validate.As(err); ok {
		metrics.ValidationRejections.Inc()
		writeError(w, http.StatusBadRequest, ve.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
