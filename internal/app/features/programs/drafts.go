// internal/app/features/programs/drafts.go
package programs

import (
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/store/drafts"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/app/system/formutil"
	"github.com/dalemusser/campusadmin/internal/app/system/paging"
	"github.com/dalemusser/campusadmin/internal/app/system/programdraft"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createDraftRequest struct {
	CourseID  string `json:"courseId"`
	ProgramID string `json:"programId"`
}

type actionsRequest struct {
	Actions []programdraft.Action `json:"actions"`
}

type draftList struct {
	Items []models.Draft `json:"items"`
	Page  paging.Page    `json:"page"`
}

// CreateDraft handles POST /drafts. With a programId the draft is loaded
// from the backend; otherwise it starts as a blank program of the course.
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var in createDraftRequest
	if err := formutil.Decode(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode draft request", err, formutil.Message(err))
		return
	}
	in.CourseID = strings.TrimSpace(in.CourseID)
	in.ProgramID = strings.TrimSpace(in.ProgramID)
	if in.CourseID == "" {
		h.ErrLog.LogBadRequest(w, r, "draft without course", nil, "A course is required.")
		return
	}

	d := models.Draft{CourseID: in.CourseID, UpdatedBy: auditlog.Editor(r)}

	ctx, cancel := h.backendCtx(r, "load draft source")
	defer cancel()

	if in.ProgramID != "" {
		p, err := h.Courses.GetProgram(ctx, in.CourseID, in.ProgramID)
		if err != nil {
			h.ErrLog.LogBackendError(w, r, "load program failed", err)
			return
		}
		if p == nil {
			h.ErrLog.LogNotFound(w, r, "program not found", "Program not found.")
			return
		}
		base, err := programdraft.Fingerprints(*p)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "fingerprint program", err, "Could not load the program.")
			return
		}
		d.Kind = models.DraftEdit
		d.ProgramID = p.ID
		d.Program = *p
		d.Program.SlugLocked = true
		d.Base = base
	} else {
		course, err := h.Courses.GetCourse(ctx, in.CourseID)
		if err != nil {
			h.ErrLog.LogBackendError(w, r, "load course failed", err)
			return
		}
		if course == nil {
			h.ErrLog.LogNotFound(w, r, "course not found", "Course not found.")
			return
		}
		d.Kind = models.DraftNew
		d.Program = newProgram(*course)
	}

	dbCtx, dbCancel := h.dbCtx(r, "create draft")
	defer dbCancel()

	d, err := h.Drafts.Create(dbCtx, d)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create draft failed", err, "Could not start the draft.")
		return
	}
	uierrors.Created(w, d)
}

// ListDrafts handles GET /drafts?courseId=&after=&before=&limit=.
func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.dbCtx(r, "list drafts")
	defer cancel()

	f := drafts.ListFilter{CourseID: strings.TrimSpace(r.URL.Query().Get("courseId"))}
	rows, page, err := h.Drafts.List(ctx, f, paging.ParseParams(r))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list drafts failed", err, "Could not list drafts.")
		return
	}
	uierrors.OK(w, draftList{Items: rows, Page: page})
}

// loadDraft reads the draft named by the {id} URL parameter. It answers
// the request itself and returns false when the draft cannot be loaded.
func (h *Handler) loadDraft(w http.ResponseWriter, r *http.Request) (models.Draft, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad draft id", err, "Invalid draft ID.")
		return models.Draft{}, false
	}

	ctx, cancel := h.dbCtx(r, "load draft")
	defer cancel()

	d, err := h.Drafts.GetByID(ctx, id)
	if errors.Is(err, drafts.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "draft not found", "Draft not found.")
		return models.Draft{}, false
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load draft failed", err, "Could not load the draft.")
		return models.Draft{}, false
	}
	return d, true
}

// saveDraft stores d, answering the request on failure.
func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request, d models.Draft) (models.Draft, bool) {
	ctx, cancel := h.dbCtx(r, "save draft")
	defer cancel()

	d.UpdatedBy = auditlog.Editor(r)
	saved, err := h.Drafts.Save(ctx, d)
	if errors.Is(err, drafts.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "draft vanished", "Draft not found.")
		return models.Draft{}, false
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save draft failed", err, "Could not save the draft.")
		return models.Draft{}, false
	}
	return saved, true
}

// ShowDraft handles GET /drafts/{id}.
func (h *Handler) ShowDraft(w http.ResponseWriter, r *http.Request) {
	d, ok := h.loadDraft(w, r)
	if !ok {
		return
	}
	uierrors.OK(w, d)
}

// DeleteDraft handles DELETE /drafts/{id}. Discarding a draft never touches
// the backend.
func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad draft id", err, "Invalid draft ID.")
		return
	}

	ctx, cancel := h.dbCtx(r, "delete draft")
	defer cancel()

	err = h.Drafts.Delete(ctx, id)
	if errors.Is(err, drafts.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "draft not found", "Draft not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete draft failed", err, "Could not discard the draft.")
		return
	}
	uierrors.Deleted(w, "Draft discarded.")
}

// ApplyActions handles POST /drafts/{id}/actions. The actions are applied
// in order; if any fails none are kept.
func (h *Handler) ApplyActions(w http.ResponseWriter, r *http.Request) {
	var in actionsRequest
	if err := formutil.Decode(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode actions", err, formutil.Message(err))
		return
	}

	d, ok := h.loadDraft(w, r)
	if !ok {
		return
	}

	p, err := programdraft.ApplyAll(d.Program, in.Actions...)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "apply actions", err, err.Error())
		return
	}
	d.Program = p

	d, ok = h.saveDraft(w, r, d)
	if !ok {
		return
	}
	h.Log.Debug("draft updated",
		zap.String("draft_id", d.ID.Hex()),
		zap.Int("actions", len(in.Actions)))
	uierrors.OK(w, d)
}
