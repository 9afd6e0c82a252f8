package campuslife_test

import (
	"context"
	"testing"

	"github.com/dalemusser/campusadmin/internal/app/content/campuslife"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/dalemusser/campusadmin/internal/testutil"
)

func TestSectionsMapToBackendPaths(t *testing.T) {
	be := testutil.NewBackend(t)
	api := campuslife.New(be.Client(t))

	want := map[string]string{
		"life":       "/lifeatinframesection",
		"services":   "/studentservice",
		"clubs":      "/studentclub",
		"events":     "/campusevent",
		"gallery":    "/galleryimage",
		"facilities": "/sportsfacility",
	}
	names := campuslife.Sections()
	if len(names) != len(want) {
		t.Fatalf("Sections() = %v", names)
	}
	for _, name := range names {
		res, ok := api.Section(name)
		if !ok {
			t.Fatalf("Section(%q) missing", name)
		}
		if res.Path() != want[name] {
			t.Errorf("Section(%q).Path() = %q, want %q", name, res.Path(), want[name])
		}
	}
	if _, ok := api.Section("cafeteria"); ok {
		t.Error("unknown section resolved")
	}
}

func TestEventRoundTrip(t *testing.T) {
	be := testutil.NewBackend(t)
	api := campuslife.New(be.Client(t))
	events, _ := api.Section("events")

	created, err := events.Create(context.Background(), models.CampusItem{
		Title: "Annual fest", ImageURL: "https://img/fest.png", Order: 1, Location: "Main lawn",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	var stored models.CampusItem
	if !be.Doc(t, "campusevent", created.ID, &stored) {
		t.Fatal("event not stored")
	}
	if stored.Location != "Main lawn" {
		t.Errorf("location = %q", stored.Location)
	}
}
