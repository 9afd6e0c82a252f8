// internal/app/features/careers/applicants.go
package careers

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/features/shared"
	"github.com/dalemusser/campusadmin/internal/app/system/formutil"
	"github.com/dalemusser/campusadmin/internal/app/system/inputval"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func applicantResource(postID, applicantID string) string {
	return "career-posts/" + postID + "/applicants/" + applicantID
}

// ListApplicants handles GET /career-posts/{itemID}/applicants. A post
// nobody applied to yields an empty list.
func (h *Handler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, shared.ItemParam)

	ctx, cancel := shared.BackendContext(r, h.Log, "list applicants")
	defer cancel()

	list, err := h.API.Applicants(ctx, postID)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "list applicants failed", err)
		return
	}
	uierrors.OK(w, list)
}

// SetApplicantStatus handles PUT
// /career-posts/{itemID}/applicants/{applicantID}/status.
func (h *Handler) SetApplicantStatus(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, shared.ItemParam)
	applicantID := chi.URLParam(r, "applicantID")

	var in models.ApplicantStatusUpdate
	if err := formutil.Decode(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode applicant status", err, formutil.Message(err))
		return
	}
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	if err := inputval.Struct(in); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := shared.BackendContext(r, h.Log, "set applicant status")
	defer cancel()

	a, err := h.API.SetApplicantStatus(ctx, postID, applicantID, in.Status)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "set applicant status failed", err)
		return
	}
	h.Audit.ApplicantStatusChanged(r.Context(), r, applicantResource(postID, applicantID), in.Status)
	h.Log.Info("applicant status changed",
		zap.String("post_id", postID),
		zap.String("applicant_id", applicantID),
		zap.String("status", in.Status))
	uierrors.OK(w, a)
}

// DeleteApplicant handles DELETE /career-posts/{itemID}/applicants/{applicantID}.
func (h *Handler) DeleteApplicant(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, shared.ItemParam)
	applicantID := chi.URLParam(r, "applicantID")

	ctx, cancel := shared.BackendContext(r, h.Log, "delete applicant")
	defer cancel()

	if err := h.API.DeleteApplicant(ctx, postID, applicantID); err != nil {
		h.ErrLog.LogBackendError(w, r, "delete applicant failed", err)
		return
	}
	h.Audit.ResourceDeleted(r.Context(), r, applicantResource(postID, applicantID))
	uierrors.Deleted(w, "Applicant removed.")
}
