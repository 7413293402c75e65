package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/remesahq/remesa/internal/http/corridor"
	"github.com/remesahq/remesa/internal/http/exportcsv"
	"github.com/remesahq/remesa/internal/http/importcsv"
	"github.com/remesahq/remesa/internal/http/remittance"
	"github.com/remesahq/remesa/internal/metrics"
)

const version = "1.0.0"

func New(
	log *slog.Logger,
	m *metrics.Metrics,
	allowedOrigins []string,
	corridorsV1 *corridor.Handler,
	remittancesV1 *remittance.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exportcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	router.Use(requestLogger(log))
	router.Use(m.Middleware)
	router.Use(middleware.Recoverer)

	router.Get("/", root)
	router.Get("/health", health)
	router.Method(http.MethodGet, "/metrics", m.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/corridors", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			corridorsV1.Routes(r)
		})

		r.Route("/remittances", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			remittancesV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}

func root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Remesa API",
		"docs":    "/api/v1",
		"version": version,
	})
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "remesa-api",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
