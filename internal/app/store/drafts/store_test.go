package drafts_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/campusadmin/internal/app/store/drafts"
	"github.com/dalemusser/campusadmin/internal/app/system/paging"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/dalemusser/campusadmin/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateGetSave(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := drafts.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d, err := store.Create(ctx, models.Draft{
		CourseID: "c1",
		Program:  testutil.Program("Bachelor of Design", "design"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d.ID.IsZero() || d.Kind != models.DraftNew || d.TitleCI != "bachelor of design" {
		t.Errorf("created draft = %+v", d)
	}

	got, err := store.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Program.Title != "Bachelor of Design" {
		t.Errorf("title = %q", got.Program.Title)
	}
	if len(got.Program.Curriculum) != 1 || len(got.Program.Curriculum[0].Semesters[0].Subjects) != 2 {
		t.Errorf("curriculum = %+v", got.Program.Curriculum)
	}

	got.Program.Title = "Master of Design"
	got.Kind = models.DraftEdit
	got.ProgramID = "p1"
	got.Base = map[string]string{"curriculum": "abc"}
	got.UpdatedBy = "meera"
	if _, err := store.Save(ctx, got); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	again, err := store.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if again.Program.Title != "Master of Design" || again.TitleCI != "master of design" {
		t.Errorf("after save title = %q / %q", again.Program.Title, again.TitleCI)
	}
	if again.Kind != models.DraftEdit || again.ProgramID != "p1" || again.Base["curriculum"] != "abc" {
		t.Errorf("after save = %+v", again)
	}
	if !again.UpdatedAt.After(again.CreatedAt) && !again.UpdatedAt.Equal(again.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", again.UpdatedAt, again.CreatedAt)
	}
}

func TestStore_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := drafts.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := primitive.NewObjectID()
	if _, err := store.GetByID(ctx, id); !errors.Is(err, drafts.ErrNotFound) {
		t.Errorf("GetByID err = %v", err)
	}
	if _, err := store.Save(ctx, models.Draft{ID: id, CourseID: "c1"}); !errors.Is(err, drafts.ErrNotFound) {
		t.Errorf("Save err = %v", err)
	}
	if err := store.Delete(ctx, id); !errors.Is(err, drafts.ErrNotFound) {
		t.Errorf("Delete err = %v", err)
	}
}

func TestStore_ListPaged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := drafts.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, title := range []string{"Charlie", "alpha", "Bravo", "Delta"} {
		course := "c1"
		if title == "Delta" {
			course = "c2"
		}
		if _, err := store.Create(ctx, models.Draft{CourseID: course, Program: models.CourseProgram{Title: title}}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	first, page, err := store.List(ctx, drafts.ListFilter{}, paging.Params{Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != 2 || first[0].Program.Title != "alpha" || first[1].Program.Title != "Bravo" {
		t.Fatalf("first page = %v", titles(first))
	}
	if !page.HasNext || page.HasPrev {
		t.Errorf("first page flags = %+v", page)
	}

	second, page, err := store.List(ctx, drafts.ListFilter{}, paging.Params{After: page.Next, Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got := titles(second); len(got) != 2 || got[0] != "Charlie" || got[1] != "Delta" {
		t.Fatalf("second page = %v", got)
	}
	if page.HasNext || !page.HasPrev {
		t.Errorf("second page flags = %+v", page)
	}

	back, _, err := store.List(ctx, drafts.ListFilter{}, paging.Params{Before: page.Prev, Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got := titles(back); len(got) != 2 || got[0] != "alpha" || got[1] != "Bravo" {
		t.Errorf("previous page = %v", got)
	}

	c1, _, err := store.List(ctx, drafts.ListFilter{CourseID: "c1"}, paging.Params{Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(c1) != 3 {
		t.Errorf("course c1 drafts = %v", titles(c1))
	}
}

func TestStore_DeleteStale(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := drafts.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	old, err := store.Create(ctx, models.Draft{CourseID: "c1", Program: models.CourseProgram{Title: "Old"}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	fresh, err := store.Create(ctx, models.Draft{CourseID: "c1", Program: models.CourseProgram{Title: "Fresh"}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// age the first draft
	_, err = db.Collection("drafts").UpdateOne(ctx, bson.M{"_id": old.ID},
		bson.M{"$set": bson.M{"updated_at": time.Now().UTC().Add(-96 * time.Hour)}})
	if err != nil {
		t.Fatalf("age draft: %v", err)
	}

	n, err := store.DeleteStale(ctx, time.Now().UTC().Add(-72*time.Hour))
	if err != nil {
		t.Fatalf("DeleteStale failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
	if _, err := store.GetByID(ctx, old.ID); !errors.Is(err, drafts.ErrNotFound) {
		t.Errorf("old draft still present: %v", err)
	}
	if _, err := store.GetByID(ctx, fresh.ID); err != nil {
		t.Errorf("fresh draft gone: %v", err)
	}
}

func titles(ds []models.Draft) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Program.Title
	}
	return out
}
