package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"mesa-fund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a LedgerUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.LedgerUseCase
	logger *slog.Logger
	router chi.Router
}

// Option configures optional parts of the router.
type Option func(*options)

type options struct {
	allowedOrigins []string
	timeout        time.Duration
	metricsPath    string
	metrics        http.Handler
}

// WithCORS allows browser requests from the given origins.
func WithCORS(origins []string) Option {
	return func(o *options) { o.allowedOrigins = origins }
}

// WithTimeout bounds the time spent serving one request.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMetrics mounts a metrics handler at path, outside /api/v1.
func WithMetrics(path string, h http.Handler) Option {
	return func(o *options) { o.metricsPath, o.metrics = path, h }
}

// NewHandler creates a handler with all routes configured. It accepts a
// LedgerUseCase implementation and a logger. Mutating routes require the
// caller identity header set by the signing layer.
func NewHandler(svc port.LedgerUseCase, logger *slog.Logger, opts ...Option) *Handler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	if o.timeout > 0 {
		r.Use(middleware.Timeout(o.timeout))
	}
	if len(o.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: o.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", CallerHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if o.metrics != nil {
		r.Method(http.MethodGet, o.metricsPath, o.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(callerIdentity)

		r.Get("/time", h.handleTime)
		r.Get("/events", h.handleEvents)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/latest", h.handleLatestCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/events", h.handleCampaignEvents)
		r.Get("/campaigns/{id}/contributions/{contributor}", h.handleContributionOf)
		r.Get("/contributors/{contributor}/contributions", h.handleContributionsOf)

		r.Group(func(r chi.Router) {
			r.Use(requireCaller)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/contributions", h.handleContribute)
			r.Post("/campaigns/{id}/cancel", h.handleCancel)
			r.Post("/campaigns/{id}/withdraw", h.handleWithdraw)
			r.Post("/campaigns/{id}/refund", h.handleClaimRefund)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// logRequests writes one structured record per request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.LogAttrs(r.Context(), slog.LevelDebug, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
