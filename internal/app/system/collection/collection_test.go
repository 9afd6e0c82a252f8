package collection_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/campusadmin/internal/app/system/collection"
	"github.com/dalemusser/campusadmin/internal/domain/models"
)

func tools() []models.SoftwareTool {
	return []models.SoftwareTool{
		{Name: "Photoshop", Order: 1},
		{Name: "Illustrator", Order: 2},
		{Name: "Figma", Order: 3},
	}
}

func TestAdd_AppendsDefaultsWithNextOrder(t *testing.T) {
	in := tools()
	out := collection.Add(in)

	if len(out) != len(in)+1 {
		t.Fatalf("expected length %d, got %d", len(in)+1, len(out))
	}
	added := out[len(out)-1]
	if added.Order != 4 {
		t.Errorf("expected order 4, got %d", added.Order)
	}
	if added.Name != "" {
		t.Errorf("expected empty name on new element, got %q", added.Name)
	}
	if len(in) != 3 {
		t.Error("input slice must not change")
	}
}

func TestAdd_EmptyList(t *testing.T) {
	out := collection.Add[models.EMIOption](nil)
	if len(out) != 1 {
		t.Fatalf("expected 1 element, got %d", len(out))
	}
	if out[0].Order != 1 {
		t.Errorf("expected order 1, got %d", out[0].Order)
	}
	if !out[0].IsActive {
		t.Error("expected new EMI option to default to active")
	}
}

func TestUpdate_ChangesOnlyOneField(t *testing.T) {
	in := tools()
	out, err := collection.Update(in, 1, "description", "Vector editor")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if out[1].Description != "Vector editor" {
		t.Errorf("expected description to be set, got %q", out[1].Description)
	}
	if out[1].Name != "Illustrator" || out[1].Order != 2 {
		t.Errorf("other fields changed: %+v", out[1])
	}
	if out[0] != in[0] || out[2] != in[2] {
		t.Error("siblings must not change")
	}
	if in[1].Description != "" {
		t.Error("input slice must not change")
	}
}

func TestUpdate_ParsesTypedFields(t *testing.T) {
	in := []models.EMIOption{{Months: 6, Order: 1}}
	out, err := collection.Update(in, 0, "monthlyAmount", "1250.50")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if out[0].MonthlyAmount != 1250.50 {
		t.Errorf("expected 1250.50, got %v", out[0].MonthlyAmount)
	}

	_, err = collection.Update(in, 0, "months", "six")
	var fe *models.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fe.Field != "months" {
		t.Errorf("expected field months, got %q", fe.Field)
	}
}

func TestUpdate_UnknownField(t *testing.T) {
	_, err := collection.Update(tools(), 0, "colour", "red")
	if !errors.Is(err, models.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestUpdate_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, 3, 10} {
		if _, err := collection.Update(tools(), i, "name", "x"); !errors.Is(err, collection.ErrIndexOutOfRange) {
			t.Errorf("index %d: expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestRemove_PreservesRelativeOrder(t *testing.T) {
	in := tools()
	out, err := collection.Remove(in, 1)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected length 2, got %d", len(out))
	}
	if out[0].Name != "Photoshop" || out[1].Name != "Figma" {
		t.Errorf("unexpected order: %+v", out)
	}
	// order fields are not renumbered
	if out[1].Order != 3 {
		t.Errorf("expected untouched order 3, got %d", out[1].Order)
	}
	if len(in) != 3 || in[1].Name != "Illustrator" {
		t.Error("input slice must not change")
	}
}

func TestRemove_OutOfRange(t *testing.T) {
	if _, err := collection.Remove(tools(), 3); !errors.Is(err, collection.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := collection.Remove([]string{}, 0); !errors.Is(err, collection.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange on empty list, got %v", err)
	}
}

func TestStringHelpers(t *testing.T) {
	subjects := []string{"Drawing", "Colour Theory"}

	added := collection.Append(subjects, "Typography")
	if len(added) != 3 || added[2] != "Typography" {
		t.Errorf("Append: got %v", added)
	}

	replaced, err := collection.Replace(added, 0, "Sketching")
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if replaced[0] != "Sketching" || added[0] != "Drawing" {
		t.Errorf("Replace: got %v (input %v)", replaced, added)
	}

	deleted, err := collection.Delete(replaced, 1)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(deleted) != 2 || deleted[0] != "Sketching" || deleted[1] != "Typography" {
		t.Errorf("Delete: got %v", deleted)
	}
}

func TestEdit_ReachesNestedCollection(t *testing.T) {
	years := []models.CurriculumYear{{Year: "Year 1", Order: 1}}
	out, err := collection.Edit(years, 0, func(y *models.CurriculumYear) error {
		y.Semesters = collection.Add(y.Semesters)
		return nil
	})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if len(out[0].Semesters) != 1 {
		t.Errorf("expected 1 semester, got %d", len(out[0].Semesters))
	}
	if len(years[0].Semesters) != 0 {
		t.Error("input slice must not change")
	}
}
