// internal/app/features/programs/save.go
package programs

import (
	"net/http"

	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/system/formutil"
	"github.com/dalemusser/campusadmin/internal/app/system/inputval"
	"github.com/dalemusser/campusadmin/internal/app/system/programdraft"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type conflict struct {
	Collection string `json:"collection"`
	Live       any    `json:"live"`
}

// loadEditDraft loads the draft and checks it refers to an existing
// program.
func (h *Handler) loadEditDraft(w http.ResponseWriter, r *http.Request) (models.Draft, bool) {
	d, ok := h.loadDraft(w, r)
	if !ok {
		return models.Draft{}, false
	}
	if d.Kind != models.DraftEdit || d.ProgramID == "" {
		uierrors.Fail(w, http.StatusConflict, "Publish the program before saving its sections.", nil)
		return models.Draft{}, false
	}
	return d, true
}

// SaveCollection handles PUT /drafts/{id}/collections/{collection}?force=.
//
// The whole collection is sent to the backend, which replaces it. The save
// is refused with 409 when the backend copy changed since the draft last
// loaded or saved it, unless force is set.
func (h *Handler) SaveCollection(w http.ResponseWriter, r *http.Request) {
	root := chi.URLParam(r, "collection")
	if owner, ok := programdraft.Root(root); !ok || owner != root {
		h.ErrLog.LogBadRequest(w, r, "not a persistable collection", nil, "Unknown section: "+root+".")
		return
	}
	force := formutil.Bool(r, "force")

	d, ok := h.loadEditDraft(w, r)
	if !ok {
		return
	}
	resource := programResource(d.CourseID, d.ProgramID)

	ctx, cancel := h.backendCtx(r, "save "+root)
	defer cancel()

	live, err := h.Courses.GetProgram(ctx, d.CourseID, d.ProgramID)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "reload program failed", err)
		return
	}
	if live == nil {
		h.ErrLog.LogNotFound(w, r, "program gone from backend", "The program no longer exists.")
		return
	}

	liveFP, err := programdraft.Fingerprint(*live, root)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "fingerprint live program", err, "Could not save the section.")
		return
	}
	if base := d.Base[root]; base != "" && base != liveFP && !force {
		h.Audit.ContentConflict(r.Context(), r, resource, root)
		section, _ := programdraft.Section(*live, root)
		uierrors.FailWithData(w, http.StatusConflict,
			"Someone else changed this section since you loaded it. Reload it or save again with force.",
			conflict{Collection: root, Live: section})
		return
	}

	sent := sanitized(d.Program)
	if err := validateSection(sent, root); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}
	payload, err := programdraft.Payload(sent, root)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "build payload", err, err.Error())
		return
	}
	updated, err := h.Courses.UpdateProgram(ctx, d.CourseID, d.ProgramID, payload)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "save "+root+" failed", err)
		return
	}
	h.Audit.CollectionSaved(r.Context(), r, resource, root, sectionSize(d.Program, root), force)

	// Without an echoed program the backend now holds what was sent.
	stored := sent
	if updated != nil && updated.ID != "" {
		stored = *updated
	}
	fp, err := programdraft.Fingerprint(stored, root)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "fingerprint saved program", err, "The section was saved but the draft could not be updated.")
		return
	}
	if d.Base == nil {
		d.Base = map[string]string{}
	}
	d.Base[root] = fp

	d, ok = h.saveDraft(w, r, d)
	if !ok {
		return
	}
	h.Log.Info("program section saved",
		zap.String("resource", resource),
		zap.String("collection", root),
		zap.Bool("forced", force))
	uierrors.OK(w, d)
}

// validateSection checks the tagged rules of one persisted section. Keys
// carry the section name, e.g. "feeStructure.couponCodes[0].discountType".
func validateSection(p models.CourseProgram, root string) error {
	if root != programdraft.FeeStructure {
		return nil
	}
	err := inputval.Struct(p.FeeStructure)
	errs, ok := inputval.AsErrors(err)
	if !ok {
		return err
	}
	prefixed := make(inputval.Errors, len(errs))
	for k, v := range errs {
		prefixed[root+"."+k] = v
	}
	return prefixed
}

// SaveDetails handles PUT /drafts/{id}/details: the program's top-level
// fields are validated and sent without its nested collections.
func (h *Handler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	d, ok := h.loadEditDraft(w, r)
	if !ok {
		return
	}

	p := sanitized(d.Program)
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := h.backendCtx(r, "save program details")
	defer cancel()

	taken, err := h.Courses.SlugTaken(ctx, d.CourseID, p.Slug, d.ProgramID)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "check slug failed", err)
		return
	}
	if taken {
		uierrors.Fail(w, http.StatusConflict, "A program with this slug already exists in the course.",
			map[string]string{"slug": "Choose a different slug."})
		return
	}

	resource := programResource(d.CourseID, d.ProgramID)
	if _, err := h.Courses.UpdateProgram(ctx, d.CourseID, d.ProgramID, detailsPayload(p)); err != nil {
		h.ErrLog.LogBackendError(w, r, "save program details failed", err)
		return
	}
	h.Audit.ResourceUpdated(r.Context(), r, resource)

	d, ok = h.saveDraft(w, r, d)
	if !ok {
		return
	}
	uierrors.OK(w, d)
}
