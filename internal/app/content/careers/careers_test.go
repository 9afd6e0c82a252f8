package careers_test

import (
	"context"
	"testing"

	"github.com/dalemusser/campusadmin/internal/app/content/careers"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/dalemusser/campusadmin/internal/testutil"
)

func TestApplicants(t *testing.T) {
	be := testutil.NewBackend(t)
	api := careers.New(be.Client(t))
	ctx := context.Background()

	posts := be.Seed(t, "career-posts", models.CareerPost{Title: "Lecturer", Place: "Pune", Description: "Teach design"})
	apps := be.Seed(t, "career-posts/"+posts[0]+"/applicants",
		models.Applicant{Name: "Asha", Email: "asha@example.com", Status: models.ApplicantPending},
		models.Applicant{Name: "Ravi", Email: "ravi@example.com", Status: models.ApplicantPending},
	)

	list, err := api.Applicants(ctx, posts[0])
	if err != nil {
		t.Fatalf("Applicants: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("applicants = %d, want 2", len(list))
	}

	a, err := api.SetApplicantStatus(ctx, posts[0], apps[0], models.ApplicantShortlisted)
	if err != nil {
		t.Fatalf("SetApplicantStatus: %v", err)
	}
	if a.Status != models.ApplicantShortlisted {
		t.Errorf("status = %q", a.Status)
	}
	req, _ := be.LastRequest("PUT")
	if want := "/career-posts/" + posts[0] + "/applicants/" + apps[0] + "/status"; req.Path != want {
		t.Errorf("PUT path = %q, want %q", req.Path, want)
	}

	if err := api.DeleteApplicant(ctx, posts[0], apps[1]); err != nil {
		t.Fatalf("DeleteApplicant: %v", err)
	}
	list, _ = api.Applicants(ctx, posts[0])
	if len(list) != 1 || list[0].Name != "Asha" {
		t.Errorf("applicants after delete = %+v", list)
	}
}

func TestApplicants_NoneYet(t *testing.T) {
	be := testutil.NewBackend(t)
	api := careers.New(be.Client(t))

	list, err := api.Applicants(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Applicants: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("Applicants = %#v", list)
	}
}
