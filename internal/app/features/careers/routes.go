// internal/app/features/careers/routes.go
package careers

import (
	"github.com/dalemusser/campusadmin/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the career routes under /career-posts.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/career-posts", func(r chi.Router) {
		h.posts.Mount(r)

		post := "/{" + shared.ItemParam + "}"
		r.Get(post+"/applicants", h.ListApplicants)
		r.Put(post+"/applicants/{applicantID}/status", h.SetApplicantStatus)
		r.Delete(post+"/applicants/{applicantID}", h.DeleteApplicant)
	})
}
