package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kdduha/diagram-ai-backend/internal/config"
	"github.com/kdduha/diagram-ai-backend/internal/handler"
	"github.com/kdduha/diagram-ai-backend/internal/metrics"
	mw "github.com/kdduha/diagram-ai-backend/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/kdduha/diagram-ai-backend/docs"
)

// NewRouter wires middleware and routes. Timeout and throttle are only
// installed when configured with a positive value.
func NewRouter(cfg *config.Config, logger *zap.Logger, g *handler.GenerateHandler) http.Handler {
	r := chi.NewRouter()

	middlewares := []func(http.Handler) http.Handler{
		mw.RequestID,
		mw.Logging(logger),
		middleware.Recoverer,
		corsHandler(cfg.CORS),
		metrics.Middleware,
	}
	if cfg.Server.ThrottleLimit > 0 {
		middlewares = append(middlewares, middleware.Throttle(cfg.Server.ThrottleLimit))
	}
	if cfg.Server.Timeout > 0 {
		middlewares = append(middlewares, middleware.Timeout(cfg.Server.Timeout))
	}
	r.Use(middlewares...)

	r.Get("/health", handler.Health)

	r.Route("/v1/ai", func(r chi.Router) {
		r.Post("/text-to-diagram/generate", g.TextToDiagram)
		r.Post("/mindmap/generate", g.Mindmap)
		r.Post("/mindmap/markup/generate", g.MindmapMarkup)
		r.Post("/diagram-to-code/generate", handler.DiagramToCode)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// corsHandler allows credentials for every configured origin. "*" reflects
// the caller's origin, since browsers reject a literal "*" with credentials.
func corsHandler(cfg config.CORSConfig) func(http.Handler) http.Handler {
	allowAll := false
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}

	opts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{mw.RequestIDHeader},
		AllowCredentials: true,
	}
	if allowAll {
		opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	} else {
		opts.AllowedOrigins = cfg.AllowedOrigins
	}
	return cors.Handler(opts)
}
