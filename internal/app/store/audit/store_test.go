package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/dalemusser/campusadmin/internal/testutil"
)

func TestStore_LogAndHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	event := audit.Event{
		Category:  audit.CategoryContent,
		EventType: audit.EventProgramCreated,
		Resource:  "/courses/c1/programs/p1",
		IP:        "192.168.1.1",
		UserAgent: "TestBrowser/1.0",
		Success:   true,
		Details:   map[string]string{"slug": "bachelor-of-design"},
	}
	if err := store.Log(ctx, event); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := store.History(ctx, "/courses/c1/programs/p1", 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.ID.IsZero() {
		t.Error("expected generated ID")
	}
	if got.Timestamp.IsZero() {
		t.Error("expected generated timestamp")
	}
	if got.Details["slug"] != "bachelor-of-design" {
		t.Errorf("details = %v", got.Details)
	}
}

func TestStore_QueryFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Now().UTC().Add(-time.Hour)
	events := []audit.Event{
		{Timestamp: base, Category: audit.CategoryContent, EventType: audit.EventResourceCreated, Resource: "/career-posts/a", Success: true},
		{Timestamp: base.Add(time.Minute), Category: audit.CategoryContent, EventType: audit.EventResourceUpdated, Resource: "/career-posts/a", Success: true},
		{Timestamp: base.Add(2 * time.Minute), Category: audit.CategoryContent, EventType: audit.EventResourceDeleted, Resource: "/studentclub/x", Success: true},
	}
	for _, e := range events {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	all, err := store.Query(ctx, audit.QueryFilter{Category: audit.CategoryContent})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].EventType != audit.EventResourceDeleted {
		t.Errorf("expected newest first, got %s", all[0].EventType)
	}

	updated, err := store.Query(ctx, audit.QueryFilter{EventType: audit.EventResourceUpdated})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(updated) != 1 {
		t.Errorf("expected 1 update event, got %d", len(updated))
	}

	since := base.Add(30 * time.Second)
	n, err := store.Count(ctx, audit.QueryFilter{StartTime: &since})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count since = %d, want 2", n)
	}

	limited, err := store.Query(ctx, audit.QueryFilter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(limited) != 1 || limited[0].EventType != audit.EventResourceUpdated {
		t.Errorf("paged query = %+v", limited)
	}
}
