// internal/app/features/aboutus/routes.go
package aboutus

import (
	aboutusapi "github.com/dalemusser/campusadmin/internal/app/content/aboutus"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the about-us routes under /about-us.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/about-us", func(r chi.Router) {
		r.Route("/"+aboutusapi.HeroImages, h.heroImages.Mount)
		r.Route("/"+aboutusapi.Statistics, h.statistics.Mount)
		r.Route("/"+aboutusapi.CoreValues, h.coreValues.Mount)
		r.Route("/"+aboutusapi.CampusImages, h.campusImages.Mount)

		r.Get("/"+aboutusapi.Content, h.ListContent)
		r.Post("/"+aboutusapi.Content, h.SaveContent)
		r.Delete("/"+aboutusapi.Content+"/{id}", h.DeleteContent)
	})
}
