// internal/app/features/campuslife/handler.go
package campuslife

import (
	"net/http"
	"strings"

	campuslifeapi "github.com/dalemusser/campusadmin/internal/app/content/campuslife"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/features/shared"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler owns the campus-life endpoints: one CRUD family per section.
type Handler struct {
	Log *zap.Logger

	sections map[string]*shared.CRUD[models.CampusItem, *models.CampusItem]
}

// NewHandler constructs a campus-life Handler.
func NewHandler(client *cmsclient.Client, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	api := campuslifeapi.New(client)
	h := &Handler{
		Log:      logger,
		sections: make(map[string]*shared.CRUD[models.CampusItem, *models.CampusItem]),
	}
	for _, name := range campuslifeapi.Sections() {
		res, _ := api.Section(name)
		h.sections[name] = &shared.CRUD[models.CampusItem, *models.CampusItem]{
			Res:     res,
			Prepare: prepareFor(name),
			Audit:   audit,
			Log:     logger,
			ErrLog:  errLog,
		}
	}
	return h
}

// prepareFor returns the normaliser for a section. Club categories and
// event dates only exist in their own sections.
func prepareFor(section string) func(*models.CampusItem) {
	return func(it *models.CampusItem) {
		it.Title = strings.TrimSpace(it.Title)
		it.ImageURL = strings.TrimSpace(it.ImageURL)
		htmlsanitize.Fields(&it.Description)

		if section != "clubs" {
			it.Category = ""
		}
		if section != "events" {
			it.EventDate = nil
			it.Location = ""
		}
	}
}

// MountRoutes mounts the campus-life routes under /campus-life.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/campus-life", func(r chi.Router) {
		r.Get("/", h.ListSections)
		for _, name := range campuslifeapi.Sections() {
			r.Route("/"+name, h.sections[name].Mount)
		}
	})
}

// ListSections handles GET /campus-life.
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	uierrors.OK(w, campuslifeapi.Sections())
}
