package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Moora/internal/config"
	"github.com/MikeSquared-Agency/Moora/internal/ranking"
)

func NewRouter(svc *ranking.Service, cfg config.ServerConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.RequestsPerMinute))

	rankings := NewRankingsHandler(svc, cfg.MaxBodyBytes)
	criteria := NewCriteriaHandler(svc)
	weights := NewWeightsHandler(cfg.MaxBodyBytes)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rankings", rankings.Rank)
		r.Post("/rankings/explain", rankings.Explain)

		r.Get("/criteria", criteria.List)
		r.Post("/weights/normalize", weights.Normalize)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
