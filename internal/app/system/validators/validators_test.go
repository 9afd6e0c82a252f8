package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/dalemusser/campusadmin/internal/app/store/drafts"
	"github.com/dalemusser/campusadmin/internal/app/system/validators"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/dalemusser/campusadmin/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	collMap := make(map[string]bool)
	for _, name := range names {
		collMap[name] = true
	}
	for _, expected := range []string{"drafts", "audit_events"} {
		if !collMap[expected] {
			t.Errorf("expected collection %q to exist", expected)
		}
	}
}

func TestDraftsValidator_AcceptsStoreDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	store := drafts.New(db)
	d, err := store.Create(ctx, models.Draft{CourseID: "c1", Program: testutil.Program("Interior Design", "design")})
	if err != nil {
		t.Fatalf("Create rejected by validator: %v", err)
	}
	d.Base = nil
	if _, err := store.Save(ctx, d); err != nil {
		t.Errorf("Save with nil base rejected: %v", err)
	}
}

func TestDraftsValidator_RejectsBadDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	now := time.Now()
	tests := []struct {
		name string
		doc  bson.M
	}{
		{"missing fields", bson.M{"kind": models.DraftNew}},
		{"unknown kind", bson.M{
			"kind": "copy", "course_id": "c1", "title_ci": "", "program": bson.M{},
			"created_at": now, "updated_at": now,
		}},
		{"blank course", bson.M{
			"kind": models.DraftNew, "course_id": "  ", "title_ci": "", "program": bson.M{},
			"created_at": now, "updated_at": now,
		}},
		{"curriculum not a list", bson.M{
			"kind": models.DraftNew, "course_id": "c1", "title_ci": "",
			"program":    bson.M{"curriculum": "Year 1"},
			"created_at": now, "updated_at": now,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := db.Collection("drafts").InsertOne(ctx, tt.doc); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAuditEventsValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	store := audit.New(db)
	if err := store.Log(ctx, audit.Event{
		Category:  audit.CategoryContent,
		EventType: audit.EventResourceCreated,
		Resource:  "career-posts/p1",
		Success:   true,
	}); err != nil {
		t.Errorf("valid event rejected: %v", err)
	}

	_, err := db.Collection("audit_events").InsertOne(ctx, bson.M{
		"timestamp":  time.Now(),
		"category":   "auth",
		"event_type": "login_success",
		"success":    true,
	})
	if err == nil {
		t.Error("expected validation error for unknown category")
	}
}
