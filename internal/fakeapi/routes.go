package fakeapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// BasePath prefixes every route of the fake API.
const BasePath = "/api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withGzip)

	router.Route(BasePath, func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)
			r.Post("/auth/refresh", h.refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.withInjectedFailure)

			r.Get("/patients/home/", h.home)
			r.Post("/patients/task-status/{taskID}/", h.taskStatus)
			r.Get("/patients/medications/", h.medications)
			r.Get("/patients/diet-plan/", h.dietPlan)
			r.Get("/patients/activities/", h.activities)
			r.Get("/patients/me/", h.profile)
			r.Post("/patients/ai-chat/", h.aiChat)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
