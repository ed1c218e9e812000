// internal/handler/routes.go
package handler

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the API surface. The caller wraps it with the middleware
// stack and the /api prefix.
func Routes(
	labs *LabHandler,
	projects *ProjectHandler,
	personnel *PersonnelHandler,
	activities *ActivityHandler,
	costs *CostHandler,
	stats *StatsHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Get("/dashboard", stats.Dashboard)

	r.Route("/labs", func(r chi.Router) {
		r.Get("/", labs.List)
		r.Post("/", labs.Create)
		r.Put("/{id}", labs.Update)
		r.Delete("/{id}", labs.Delete)
		r.Get("/{id}/stats", stats.LabStats)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", projects.List)
		r.Post("/", projects.Create)
		r.Put("/{id}", projects.Update)
		r.Delete("/{id}", projects.Delete)
	})

	r.Route("/personnel", func(r chi.Router) {
		r.Get("/", personnel.List)
		r.Post("/", personnel.Create)
		r.Put("/{id}", personnel.Update)
		r.Delete("/{id}", personnel.Delete)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", activities.List)
		r.Post("/", activities.Create)
	})

	r.Route("/costs", func(r chi.Router) {
		r.Get("/", costs.List)
		r.Post("/", costs.Create)
	})

	r.Get("/lab-connections", stats.Connections)

	return r
}
