/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/labor/*            Cost calculation
  /api/settings/*         Fringe percentages
  /api/projects/*         Project calendars
  /api/groupings/*        Budget groupings
  /api/line-items/*       Labor line items
  /api/crew/*             Crew members
  /api/holidays           Public holidays
  /api/classifications/*  Rate card lookups

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/labor/calculate", h.Calculate)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/fringes", h.GetFringeSettings)
			r.Put("/fringes", h.UpdateFringeSettings)
		})

		r.Route("/projects/{projectID}", func(r chi.Router) {
			r.Get("/calendar", h.GetProjectCalendar)
			r.Put("/calendar", h.PutProjectCalendar)
		})

		r.Route("/groupings", func(r chi.Router) {
			r.Post("/", h.SaveGrouping)
			r.Get("/{id}", h.GetGrouping)
			r.Get("/{id}/line-items", h.ListLineItems)
		})

		r.Route("/line-items", func(r chi.Router) {
			r.Post("/", h.SaveLineItem)
			r.Get("/{id}", h.GetLineItem)
		})

		r.Route("/crew", func(r chi.Router) {
			r.Get("/", h.ListCrew)
			r.Post("/", h.SaveCrewMember)
			r.Get("/{id}", h.GetCrewMember)
			r.Delete("/{id}", h.DeleteCrewMember)
			r.Post("/{id}/estimate", h.EstimateShift)
		})

		r.Get("/holidays", h.ListHolidays)

		r.Route("/classifications", func(r chi.Router) {
			r.Get("/", h.SearchClassifications)
			r.Get("/resolve", h.ResolveClassification)
		})
	})

	return r
}
