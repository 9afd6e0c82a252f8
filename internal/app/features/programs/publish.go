// internal/app/features/programs/publish.go
package programs

import (
	"errors"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/app/content/courses"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/system/inputval"
	"github.com/dalemusser/campusadmin/internal/app/system/programdraft"
	"github.com/dalemusser/campusadmin/internal/app/system/slug"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"go.uber.org/zap"
)

// Publish handles POST /drafts/{id}/publish: the draft's full program tree
// is created on the backend in one request. The draft then becomes an edit
// draft of the new program.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	d, ok := h.loadDraft(w, r)
	if !ok {
		return
	}
	if d.Kind != models.DraftNew {
		uierrors.Fail(w, http.StatusConflict, "This program has already been created; save its sections instead.", nil)
		return
	}

	p := sanitized(d.Program)
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := h.backendCtx(r, "create program")
	defer cancel()

	created, err := h.Courses.CreateProgram(ctx, d.CourseID, p)
	if errors.Is(err, courses.ErrDuplicateSlug) {
		uierrors.Fail(w, http.StatusConflict, "A program with this slug already exists in the course.",
			map[string]string{"slug": "Choose a different slug."})
		return
	}
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "create program failed", err)
		return
	}
	h.Audit.ProgramCreated(r.Context(), r, programResource(d.CourseID, created.ID), created.Slug)

	base, err := programdraft.Fingerprints(*created)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "fingerprint program", err, "The program was created but the draft could not be updated.")
		return
	}
	d.Kind = models.DraftEdit
	d.ProgramID = created.ID
	d.Program = *created
	d.Program.SlugLocked = true
	d.Base = base

	d, ok = h.saveDraft(w, r, d)
	if !ok {
		return
	}
	h.Log.Info("program created",
		zap.String("course_id", d.CourseID),
		zap.String("program_id", d.ProgramID),
		zap.String("slug", created.Slug))
	uierrors.Created(w, d)
}
