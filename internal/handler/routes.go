package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/lodgings-api/internal/middleware"
)

// NotFoundMessage is returned for any route the API does not serve.
const NotFoundMessage = "The requested resource doesn't exist"

// Routes returns the API router. Mutating routes are wrapped in
// middleware.RequireAuth using verifier.
//
// NotFound and MethodNotAllowed are registered before any sub-router so chi
// propagates them to the mounted routes.
func (s *Server) Routes(verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", NotFoundMessage)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	requireAuth := middleware.RequireAuth(verifier)

	r.Get("/healthz", s.GetHealth)

	r.Route(lodgingsPath, func(r chi.Router) {
		r.Get("/", s.ListLodgings)
		r.Get("/{id}", s.GetLodging)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", s.CreateLodging)
			r.Put("/{id}", s.UpdateLodging)
			r.Delete("/{id}", s.DeleteLodging)
		})
	})

	r.Route(reservationsPath, func(r chi.Router) {
		r.Get("/{id}", s.GetReservation)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", s.CreateReservation)
			r.Delete("/{id}", s.DeleteReservation)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.RegisterUser)
		r.Post("/login", s.Login)
	})

	return r
}
