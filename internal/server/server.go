// Package server exposes the scenario engine and store over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/mandate-cli/internal/config"
	"github.com/sells-group/mandate-cli/internal/monitoring"
	"github.com/sells-group/mandate-cli/internal/scenario"
	"github.com/sells-group/mandate-cli/internal/store"
)

const maxBodyBytes = 1 << 20

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	engine  *scenario.Engine
	store   store.Store
	metrics *monitoring.Collector
	limiter *rate.Limiter
	origins []string
}

// New builds a Server. metrics may be nil.
func New(engine *scenario.Engine, st store.Store, metrics *monitoring.Collector, cfg config.ServerConfig) *Server {
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{
		engine:  engine,
		store:   st,
		metrics: metrics,
		limiter: rate.NewLimiter(limit, burst),
		origins: origins,
	}
}

// Router returns the HTTP handler for all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(s.throttle)

		r.Get("/presets", s.handlePresets)
		r.Get("/wtsl", s.handleWTSL)

		r.Post("/scenarios/compute", s.handleCompute)
		r.Post("/scenarios/sweep", s.handleSweep)
		r.Get("/scenarios/compare", s.handleCompare)

		r.Post("/scenarios", s.handleSave)
		r.Get("/scenarios", s.handleList)
		r.Delete("/scenarios", s.handleClear)
	})

	return r
}

// throttle rejects requests beyond the configured rate with 429.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// observe logs each request and records it in the metrics collector.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		s.metrics.ObserveHTTP(route, r.Method, status, elapsed)
		zap.L().Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
