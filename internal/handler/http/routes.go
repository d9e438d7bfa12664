package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router with the full middleware chain and every route of
// the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.authenticate)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/version/", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/session", func(r chi.Router) {
				r.Get("/", h.findAllSessions)
				r.Post("/", h.createSession)
				r.Get("/{id}", h.findSession)
				r.Put("/{id}", h.updateSession)
				r.Delete("/{id}", h.deleteSession)
				r.Post("/{id}/participate/{userId}", h.participate)
				r.Delete("/{id}/participate/{userId}", h.cancelParticipation)
			})

			r.Route("/teacher", func(r chi.Router) {
				r.Get("/", h.findAllTeachers)
				r.Get("/{id}", h.findTeacher)
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/{id}", h.findUser)
				r.Delete("/{id}", h.deleteUser)
			})
		})
	})

	return router
}
