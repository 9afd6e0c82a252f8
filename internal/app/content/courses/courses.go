// Package courses wraps the backend's course and course-program endpoints.
package courses

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/app/content"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/domain/models"
)

// ErrDuplicateSlug is returned when a program's slug is already used by
// another program of the same course.
var ErrDuplicateSlug = errors.New("a program with this slug already exists in the course")

type API struct {
	c       *cmsclient.Client
	courses *content.Resource[models.Course]
}

func New(c *cmsclient.Client) *API {
	return &API{c: c, courses: content.NewResource[models.Course](c, "courses")}
}

func (a *API) ListCourses(ctx context.Context) ([]models.Course, error) {
	return a.courses.List(ctx)
}

func (a *API) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	return a.courses.Get(ctx, courseID)
}

func (a *API) CreateCourse(ctx context.Context, c models.Course) (*models.Course, error) {
	return a.courses.Create(ctx, c)
}

func programsPath(courseID string) string {
	return cmsclient.Path("courses", courseID, "programs")
}

func programPath(courseID, programID string) string {
	return cmsclient.Path("courses", courseID, "programs", programID)
}

// ListPrograms returns the programs of one course.
func (a *API) ListPrograms(ctx context.Context, courseID string) ([]models.CourseProgram, error) {
	ps, err := cmsclient.List[models.CourseProgram](ctx, a.c, programsPath(courseID))
	if err != nil {
		return nil, fmt.Errorf("list programs of %s: %w", courseID, err)
	}
	return ps, nil
}

// GetProgram returns nil, nil when the program does not exist.
func (a *API) GetProgram(ctx context.Context, courseID, programID string) (*models.CourseProgram, error) {
	p, err := cmsclient.Find[models.CourseProgram](ctx, a.c, programPath(courseID, programID))
	if err != nil {
		return nil, fmt.Errorf("get program %s/%s: %w", courseID, programID, err)
	}
	return p, nil
}

// SlugTaken reports whether another program of the course, other than
// exceptID, already uses slug.
func (a *API) SlugTaken(ctx context.Context, courseID, slug, exceptID string) (bool, error) {
	existing, err := a.ListPrograms(ctx, courseID)
	if err != nil {
		return false, err
	}
	for _, e := range existing {
		if e.Slug == slug && (exceptID == "" || e.ID != exceptID) {
			return true, nil
		}
	}
	return false, nil
}

// CreateProgram posts the full program tree in one request. The slug must
// not already be taken within the course.
func (a *API) CreateProgram(ctx context.Context, courseID string, p models.CourseProgram) (*models.CourseProgram, error) {
	taken, err := a.SlugTaken(ctx, courseID, p.Slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
	}

	p.ID = ""
	p.FeeStructure.CouponCodes = append(make([]models.CouponCode, 0, len(p.FeeStructure.CouponCodes)), p.FeeStructure.CouponCodes...)
	p.Normalize()
	out, err := cmsclient.Send[models.CourseProgram](ctx, a.c, http.MethodPost, programsPath(courseID), p)
	if err != nil {
		return nil, fmt.Errorf("create program in %s: %w", courseID, err)
	}
	if out == nil || out.ID == "" {
		return nil, fmt.Errorf("create program in %s: %w", courseID, cmsclient.ErrNoData)
	}
	return out, nil
}

// UpdateProgram sends a partial update. payload is typically one nested
// collection keyed by its JSON name, e.g. {"curriculum": [...]}, which the
// backend replaces wholesale. The result is nil when the backend does not
// echo the program.
func (a *API) UpdateProgram(ctx context.Context, courseID, programID string, payload map[string]any) (*models.CourseProgram, error) {
	out, err := cmsclient.Send[models.CourseProgram](ctx, a.c, http.MethodPut, programPath(courseID, programID), payload)
	if err != nil {
		return nil, fmt.Errorf("update program %s/%s: %w", courseID, programID, err)
	}
	return out, nil
}

func (a *API) DeleteProgram(ctx context.Context, courseID, programID string) error {
	if err := a.c.Delete(ctx, programPath(courseID, programID), nil); err != nil {
		return fmt.Errorf("delete program %s/%s: %w", courseID, programID, err)
	}
	return nil
}
