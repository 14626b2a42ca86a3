package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campus-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter for the campaign core. It resolves
// the acting user from gateway headers and maps core error kinds to status
// codes.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Put("/metrics/{date}", h.handleRecordMetrics)
				r.Get("/insights", h.handleInsights)
			})
		})
		r.Get("/placements", h.handlePlacements)
		r.Post("/feed", h.handleFeed)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// Mount attaches an extra handler, such as the metrics endpoint, at path.
func (h *Handler) Mount(path string, handler http.Handler) {
	h.router.Handle(path, handler)
}
