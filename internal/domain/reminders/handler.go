package reminders

import (
	"encoding/json"
	"net/http"

	"walnie-api/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/v1/reminder-policy", func(pr chi.Router) {
		pr.Get("/", getPolicyHandler(svc))
		pr.Post("/", setPolicyHandler(svc))
	})
}

type policyResponse struct {
	IntervalHours int `json:"intervalHours"`
}

type setPolicyRequest struct {
	// any para poder rechazar valores no enteros antes de castear.
	IntervalHours any `json:"intervalHours"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// getPolicyHandler godoc
// @Summary Leer política de recordatorio
// @Description Devuelve el intervalo configurado en horas; 3 si nunca se configuró.
// @Tags reminders
// @Produce json
// @Success 200 {object} policyResponse
// @Router /v1/reminder-policy [get]
func getPolicyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hours, err := svc.Interval(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, policyResponse{IntervalHours: hours})
	}
}

// setPolicyHandler godoc
// @Summary Configurar política de recordatorio
// @Description Reemplaza el intervalo de recordatorio. Debe ser un entero entre 1 y 6 horas.
// @Tags reminders
// @Accept json
// @Produce json
// @Param payload body policyResponse true "Intervalo en horas (1-6)"
// @Success 200 {object} policyResponse
// @Failure 400 {object} errorResponse
// @Router /v1/reminder-policy [post]
func setPolicyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setPolicyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "request body must be a JSON object")
			return
		}

		hours, ok := intervalValue(req.IntervalHours)
		if !ok {
			writeError(w, http.StatusBadRequest, "intervalHours must be an integer in range 1-6")
			return
		}

		if err := svc.SetInterval(r.Context(), hours); err != nil {
			if ve, isVe := validate.As(err); isVe {
				writeError(w, http.StatusBadRequest, ve.Message)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, policyResponse{IntervalHours: hours})
	}
}

// intervalValue extrae un entero de un valor JSON laxo (llega como float64).
func intervalValue(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int(f), true
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
