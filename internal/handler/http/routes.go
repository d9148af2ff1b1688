package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.health)
	router.Get("/version", h.version)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.Route("/api/library", func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withResponseHashing)

		r.Get("/", h.listItems)
		r.Get("/{id}", h.getItem)

		r.With(h.withAuth).Post("/reload", h.reload)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
