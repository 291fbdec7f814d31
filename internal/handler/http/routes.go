package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Get("/api/activities", h.listActivities)
		r.Post("/api/activities", h.createActivity)
		r.Put("/api/activities", h.updateActivities)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Put("/api/notes", h.updateNotes)

		r.Get("/api/encryption/probe", h.probeEncryptedData)
		r.Get("/api/encryption/legacy", h.listLegacyKeys)
		r.Post("/api/encryption/legacy", h.registerLegacyKey)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
