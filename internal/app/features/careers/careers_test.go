package careers_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/campusadmin/internal/app/features/careers"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/dalemusser/campusadmin/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setup(t *testing.T) (*testutil.Backend, chi.Router, *observer.ObservedLogs) {
	t.Helper()
	be := testutil.NewBackend(t)
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	al := auditlog.New(nil, logger, auditlog.Config{Content: auditlog.Log})
	h := careers.NewHandler(be.Client(t), al, uierrors.NewErrorLogger(logger), logger)
	r := chi.NewRouter()
	h.MountRoutes(r)
	return be, r, logs
}

func serve(r chi.Router, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func auditEvents(logs *observer.ObservedLogs, eventType string) int {
	n := 0
	for _, e := range logs.FilterMessage("audit event").All() {
		if e.ContextMap()["event_type"] == eventType {
			n++
		}
	}
	return n
}

func validPost() models.CareerPost {
	return models.CareerPost{
		Title:        "Design Lecturer",
		Place:        "Pune",
		Description:  "<p>Teach studio courses</p>",
		Requirements: []string{"Masters in Design", "  ", "Three years teaching "},
		IsActive:     true,
	}
}

func TestCreatePost(t *testing.T) {
	be, r, logs := setup(t)

	rec := serve(r, testutil.NewJSONRequest(t, "POST", "/career-posts", validPost()))
	rec.AssertStatus(t, http.StatusCreated)
	var p models.CareerPost
	rec.Data(t, &p)

	var stored models.CareerPost
	if !be.Doc(t, "career-posts", p.ID, &stored) {
		t.Fatal("post not stored")
	}
	if len(stored.Requirements) != 2 || stored.Requirements[1] != "Three years teaching" {
		t.Errorf("requirements = %q", stored.Requirements)
	}
	if auditEvents(logs, audit.EventResourceCreated) != 1 {
		t.Error("no resource_created audit event")
	}
}

func TestCreatePost_Validation(t *testing.T) {
	be, r, _ := setup(t)

	p := models.CareerPost{
		Title:        "QA",
		Place:        "X",
		Description:  "short",
		Requirements: []string{"ok", "Portfolio"},
	}
	rec := serve(r, testutil.NewJSONRequest(t, "POST", "/career-posts", p))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)

	errs := rec.Envelope(t).Errors
	for _, field := range []string{"title", "place", "description", "requirements[0]"} {
		if errs[field] == "" {
			t.Errorf("missing error for %s (got %v)", field, errs)
		}
	}
	if _, ok := errs["requirements[1]"]; ok {
		t.Error("valid requirement flagged")
	}
	if be.Count("career-posts") != 0 {
		t.Error("invalid post reached the backend")
	}
}

func TestCreatePost_DescriptionMarkupDoesNotCount(t *testing.T) {
	be, r, _ := setup(t)

	p := validPost()
	p.Description = `<p><strong><em>Apply</em></strong></p><p><br></p>`
	rec := serve(r, testutil.NewJSONRequest(t, "POST", "/career-posts", p))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	if errs := rec.Envelope(t).Errors; errs["description"] == "" {
		t.Errorf("errors = %v", errs)
	}
	if be.Count("career-posts") != 0 {
		t.Error("invalid post reached the backend")
	}
}

func TestUpdatePost_BackendRejects(t *testing.T) {
	be, r, _ := setup(t)
	id := be.Seed(t, "career-posts", validPost())[0]
	be.Fail("PUT", "/career-posts/"+id, http.StatusBadRequest, "place is not a campus")

	rec := serve(r, testutil.NewJSONRequest(t, "PUT", "/career-posts/"+id, validPost()))
	rec.AssertStatus(t, http.StatusBadRequest)
	if msg := rec.Envelope(t).Message; msg != "place is not a campus" {
		t.Errorf("message = %q", msg)
	}
}

func TestApplicants(t *testing.T) {
	be, r, logs := setup(t)
	postID := be.Seed(t, "career-posts", validPost())[0]
	apps := be.Seed(t, "career-posts/"+postID+"/applicants",
		models.Applicant{Name: "Asha", Email: "asha@example.com", Status: models.ApplicantPending},
		models.Applicant{Name: "Ravi", Email: "ravi@example.com", Status: models.ApplicantPending},
	)
	base := "/career-posts/" + postID + "/applicants/"

	rec := serve(r, testutil.NewRequest("GET", "/career-posts/"+postID+"/applicants"))
	rec.AssertStatus(t, http.StatusOK)
	var list []models.Applicant
	rec.Data(t, &list)
	if len(list) != 2 {
		t.Fatalf("applicants = %d", len(list))
	}

	rec = serve(r, testutil.NewJSONRequest(t, "PUT", base+apps[0]+"/status", map[string]string{"status": "Shortlisted"}))
	rec.AssertStatus(t, http.StatusOK)
	var a models.Applicant
	be.Doc(t, "career-posts/"+postID+"/applicants", apps[0], &a)
	if a.Status != models.ApplicantShortlisted {
		t.Errorf("status = %q", a.Status)
	}
	if auditEvents(logs, audit.EventApplicantStatusChanged) != 1 {
		t.Error("no applicant_status_changed audit event")
	}

	rec = serve(r, testutil.NewJSONRequest(t, "PUT", base+apps[0]+"/status", map[string]string{"status": "promoted"}))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)

	serve(r, testutil.NewRequest("DELETE", base+apps[1])).AssertStatus(t, http.StatusOK)
	if n := be.Count("career-posts/" + postID + "/applicants"); n != 1 {
		t.Errorf("applicants after delete = %d", n)
	}
}

func TestApplicants_NoneYet(t *testing.T) {
	_, r, _ := setup(t)

	rec := serve(r, testutil.NewRequest("GET", "/career-posts/p9/applicants"))
	rec.AssertStatus(t, http.StatusOK)
	var list []models.Applicant
	rec.Data(t, &list)
	if list == nil || len(list) != 0 {
		t.Errorf("list = %v, want empty", list)
	}
}
