// internal/app/features/aboutus/content.go
package aboutus

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/features/shared"
	"github.com/dalemusser/campusadmin/internal/app/system/formutil"
	"github.com/dalemusser/campusadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campusadmin/internal/app/system/inputval"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ListContent handles GET /about-us/content[?type=]. With a type it
// answers the single section of that type.
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := shared.BackendContext(r, h.Log, "list about-us content")
	defer cancel()

	typ := strings.TrimSpace(r.URL.Query().Get("type"))
	if typ == "" {
		list, err := h.API.ListContent(ctx)
		if err != nil {
			h.ErrLog.LogBackendError(w, r, "list about-us content failed", err)
			return
		}
		uierrors.OK(w, list)
		return
	}

	s, err := h.API.ContentByType(ctx, typ)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "get about-us content failed", err)
		return
	}
	if s == nil {
		h.ErrLog.LogNotFound(w, r, "no about-us content of type", "No content of this type yet.")
		return
	}
	uierrors.OK(w, s)
}

// SaveContent handles POST /about-us/content. Sections are keyed by type:
// saving a type that already exists replaces it.
func (h *Handler) SaveContent(w http.ResponseWriter, r *http.Request) {
	var s models.ContentSection
	if err := formutil.Decode(w, r, &s); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode about-us content", err, formutil.Message(err))
		return
	}
	s.Type = strings.ToLower(strings.TrimSpace(s.Type))
	s.Title = strings.TrimSpace(s.Title)
	htmlsanitize.Fields(&s.Content)
	if err := inputval.Struct(s); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := shared.BackendContext(r, h.Log, "save about-us content")
	defer cancel()

	saved, err := h.API.UpsertContent(ctx, s)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "save about-us content failed", err)
		return
	}
	h.Audit.ResourceUpdated(r.Context(), r, "about-us/content/"+saved.Type)
	uierrors.OK(w, saved)
}

// DeleteContent handles DELETE /about-us/content/{id}.
func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := shared.BackendContext(r, h.Log, "delete about-us content")
	defer cancel()

	if err := h.API.DeleteContent(ctx, id); err != nil {
		h.ErrLog.LogBackendError(w, r, "delete about-us content failed", err)
		return
	}
	h.Audit.ResourceDeleted(r.Context(), r, "about-us/content/"+id)
	uierrors.Deleted(w, "Section deleted.")
}
