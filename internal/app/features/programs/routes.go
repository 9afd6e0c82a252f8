// internal/app/features/programs/routes.go
package programs

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the course and draft routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.ListCourses)
		r.Post("/", h.CreateCourse)
		r.Get("/{courseID}/programs", h.ListPrograms)
		r.Get("/{courseID}/programs/{programID}", h.ShowProgram)
		r.Delete("/{courseID}/programs/{programID}", h.DeleteProgram)
	})

	r.Route("/drafts", func(r chi.Router) {
		r.Get("/", h.ListDrafts)
		r.Post("/", h.CreateDraft)
		r.Get("/{id}", h.ShowDraft)
		r.Delete("/{id}", h.DeleteDraft)
		r.Post("/{id}/actions", h.ApplyActions)
		r.Post("/{id}/publish", h.Publish)
		r.Put("/{id}/details", h.SaveDetails)
		r.Put("/{id}/collections/{collection}", h.SaveCollection)
	})
}
