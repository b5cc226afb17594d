package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/healthz", h.healthz)
	})

	// routes of the authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/createNewNote", h.createNote)
		r.Post("/editNote", h.editNote)
		r.Post("/deleteNote", h.deleteNote)
		r.Get("/api/profile", h.profile)
		r.Get("/api/notes", h.listNotes)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
