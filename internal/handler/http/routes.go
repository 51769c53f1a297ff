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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/admin/verify", h.verifyAccessCode)
	})

	// admin surface, guarded by the gate token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/roster", h.listRoster)
		r.Post("/api/roster", h.createMember)
		r.Patch("/api/roster/{id}", h.updateMember)
		r.Delete("/api/roster/{id}", h.deleteMember)
		r.Get("/api/roster/revision", h.revision)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
