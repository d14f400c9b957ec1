package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)
	})

	// storage protocol, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/v1/storage/manifest", h.getManifest)
		r.Post("/api/v1/storage/read", h.readRecords)
		r.Put("/api/v1/storage", h.writeRecords)
	})

	return router
}
