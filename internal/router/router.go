package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	mem "walnie-api/internal/adapters/storage/memory"
	pg "walnie-api/internal/adapters/storage/postgres"
	"walnie-api/internal/domain/events"
	"walnie-api/internal/domain/reminders"
	"walnie-api/internal/middleware"
	"walnie-api/internal/platform/timecodec"

	_ "walnie-api/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, se loguea cada request.
	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// El cliente móvil pega cross-origin; la API es de red doméstica.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var (
		eventsRepo    events.Repository
		remindersRepo reminders.Repository
	)
	if db != nil {
		eventsRepo = pg.NewEventsRepo(db)
		remindersRepo = pg.NewRemindersRepo(db)
	} else {
		eventsRepo = mem.NewEventsRepo()
		remindersRepo = mem.NewRemindersRepo()
	}

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	eventsSvc := events.NewService(eventsRepo)
	remindersSvc := reminders.NewService(remindersRepo)

	// Rutas por módulo
	events.RegisterRoutes(r, eventsSvc)
	reminders.RegisterRoutes(r, remindersSvc)

	return r
}

// healthHandler reporta ok y la hora actual; si hay Postgres detrás, primero
// verifica que la conexión siga viva.
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "database unavailable"})
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"now":    timecodec.FormatISO(time.Now()),
		})
	}
}
