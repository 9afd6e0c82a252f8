// internal/app/features/programs/courses.go
package programs

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/system/formutil"
	"github.com/dalemusser/campusadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campusadmin/internal/app/system/inputval"
	"github.com/dalemusser/campusadmin/internal/app/system/slug"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ListCourses handles GET /courses.
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.backendCtx(r, "list courses")
	defer cancel()

	list, err := h.Courses.ListCourses(ctx)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "list courses failed", err)
		return
	}
	uierrors.OK(w, list)
}

// CreateCourse handles POST /courses. The slug is derived from the title
// when none is given.
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var c models.Course
	if err := formutil.Decode(w, r, &c); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode course", err, formutil.Message(err))
		return
	}
	c.ID = ""
	c.Title = strings.TrimSpace(c.Title)
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = slug.Generate(c.Title)
	}
	htmlsanitize.Fields(&c.Description)
	if err := inputval.Struct(c); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := h.backendCtx(r, "create course")
	defer cancel()

	created, err := h.Courses.CreateCourse(ctx, c)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "create course failed", err)
		return
	}
	h.Audit.ResourceCreated(r.Context(), r, "courses/"+created.ID)
	uierrors.Created(w, created)
}

// ListPrograms handles GET /courses/{courseID}/programs.
func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	ctx, cancel := h.backendCtx(r, "list programs")
	defer cancel()

	list, err := h.Courses.ListPrograms(ctx, courseID)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "list programs failed", err)
		return
	}
	uierrors.OK(w, list)
}

// ShowProgram handles GET /courses/{courseID}/programs/{programID}.
func (h *Handler) ShowProgram(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	programID := chi.URLParam(r, "programID")

	ctx, cancel := h.backendCtx(r, "get program")
	defer cancel()

	p, err := h.Courses.GetProgram(ctx, courseID, programID)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "get program failed", err)
		return
	}
	if p == nil {
		h.ErrLog.LogNotFound(w, r, "program not found", "Program not found.")
		return
	}
	uierrors.OK(w, p)
}

// DeleteProgram handles DELETE /courses/{courseID}/programs/{programID}.
func (h *Handler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	programID := chi.URLParam(r, "programID")

	ctx, cancel := h.backendCtx(r, "delete program")
	defer cancel()

	if err := h.Courses.DeleteProgram(ctx, courseID, programID); err != nil {
		h.ErrLog.LogBackendError(w, r, "delete program failed", err)
		return
	}
	h.Audit.ProgramDeleted(r.Context(), r, programResource(courseID, programID))
	uierrors.Deleted(w, "Program deleted.")
}

func programResource(courseID, programID string) string {
	return "courses/" + courseID + "/programs/" + programID
}
