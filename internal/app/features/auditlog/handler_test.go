package auditlog_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/campusadmin/internal/app/features/auditlog"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/dalemusser/campusadmin/internal/testutil"
	"go.uber.org/zap"
)

type listResponse struct {
	Items []struct {
		ID        string `json:"id"`
		EventType string `json:"eventType"`
		Resource  string `json:"resource"`
		Actor     string `json:"actor"`
	} `json:"items"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
	HasNext    bool  `json:"hasNext"`
}

func newTestHandler(t *testing.T) (*auditlog.Handler, *audit.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return auditlog.NewHandler(db, uierrors.NewErrorLogger(logger), logger), audit.New(db)
}

func seed(t *testing.T, store *audit.Store, events ...audit.Event) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	for _, e := range events {
		if e.Category == "" {
			e.Category = audit.CategoryContent
		}
		e.Success = true
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("seed audit event: %v", err)
		}
	}
}

func TestServeList_Empty(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	auditlog.Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusOK)

	var got listResponse
	rec.Data(t, &got)
	if len(got.Items) != 0 || got.Total != 0 {
		t.Errorf("expected no events, got %+v", got)
	}
	if got.Page != 1 || got.TotalPages != 1 {
		t.Errorf("page = %d/%d, want 1/1", got.Page, got.TotalPages)
	}
}

func TestServeList_FiltersByEventType(t *testing.T) {
	h, store := newTestHandler(t)
	seed(t, store,
		audit.Event{EventType: audit.EventProgramCreated, Resource: "courses/c1/programs/p1", Actor: "amy"},
		audit.Event{EventType: audit.EventResourceDeleted, Resource: "career-posts/j1"},
		audit.Event{EventType: audit.EventProgramCreated, Resource: "courses/c1/programs/p2"},
	)

	rec := testutil.NewRecorder()
	auditlog.Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/?event_type=program_created"))
	rec.AssertStatus(t, http.StatusOK)

	var got listResponse
	rec.Data(t, &got)
	if got.Total != 2 || len(got.Items) != 2 {
		t.Fatalf("expected 2 program_created events, got %+v", got)
	}
	for _, it := range got.Items {
		if it.EventType != audit.EventProgramCreated {
			t.Errorf("unexpected event type %q", it.EventType)
		}
	}
}

func TestServeList_Pagination(t *testing.T) {
	h, store := newTestHandler(t)
	events := make([]audit.Event, 0, 55)
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 55; i++ {
		events = append(events, audit.Event{
			EventType: audit.EventResourceUpdated,
			Resource:  "about-us/statistics/s1",
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}
	seed(t, store, events...)

	rec := testutil.NewRecorder()
	auditlog.Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/?page=2"))
	rec.AssertStatus(t, http.StatusOK)

	var got listResponse
	rec.Data(t, &got)
	if got.Total != 55 || got.TotalPages != 2 || got.Page != 2 {
		t.Errorf("total/pages/page = %d/%d/%d, want 55/2/2", got.Total, got.TotalPages, got.Page)
	}
	if len(got.Items) != 5 {
		t.Errorf("page 2 items = %d, want 5", len(got.Items))
	}
	if got.HasNext {
		t.Error("last page should not have a next page")
	}
}

func TestServeList_BadDate(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	auditlog.Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/?start_date=yesterday"))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "start_date must be YYYY-MM-DD.")
}

func TestServeHistory(t *testing.T) {
	h, store := newTestHandler(t)
	seed(t, store,
		audit.Event{EventType: audit.EventProgramCreated, Resource: "courses/c1/programs/p1"},
		audit.Event{EventType: audit.EventProgramCollectionSaved, Resource: "courses/c1/programs/p1"},
		audit.Event{EventType: audit.EventProgramCreated, Resource: "courses/c1/programs/p2"},
	)

	rec := testutil.NewRecorder()
	auditlog.Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/history?resource=/courses/c1/programs/p1"))
	rec.AssertStatus(t, http.StatusOK)

	var got []struct {
		Resource string `json:"resource"`
	}
	rec.Data(t, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 events for p1, got %d", len(got))
	}
	for _, e := range got {
		if e.Resource != "courses/c1/programs/p1" {
			t.Errorf("unexpected resource %q", e.Resource)
		}
	}
}

func TestServeHistory_RequiresResource(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	auditlog.Routes(h).ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/history"))
	rec.AssertStatus(t, http.StatusBadRequest)
}
