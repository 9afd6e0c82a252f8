package programdraft

import (
	"github.com/dalemusser/campusadmin/internal/app/system/collection"
	"github.com/dalemusser/campusadmin/internal/app/system/slug"
	"github.com/dalemusser/campusadmin/internal/domain/models"
)

// Apply returns p with a applied. p itself is never modified.
func Apply(p models.CourseProgram, a Action) (models.CourseProgram, error) {
	depth, ok := parentDepth[a.Collection]
	if !ok {
		return p, badAction(a, "unknown collection")
	}
	if len(a.Parent) != depth {
		return p, badAction(a, "wrong parent path")
	}
	switch a.Op {
	case OpAdd, OpUpdate, OpRemove:
	default:
		return p, badAction(a, "unknown op")
	}

	orig := p
	var err error
	switch a.Collection {
	case Program:
		if a.Op != OpUpdate {
			return p, badAction(a, "program fields can only be updated")
		}
		err = setProgramField(&p, a.Field, a.Value)
	case AdmissionSteps:
		p.AdmissionSteps, err = reduce(p.AdmissionSteps, a)
	case Curriculum:
		p.Curriculum, err = reduce(p.Curriculum, a)
	case Semesters:
		p.Curriculum, err = collection.Edit(p.Curriculum, a.Parent[0], func(y *models.CurriculumYear) (err error) {
			y.Semesters, err = reduce(y.Semesters, a)
			return err
		})
	case Subjects:
		p.Curriculum, err = collection.Edit(p.Curriculum, a.Parent[0], func(y *models.CurriculumYear) (err error) {
			y.Semesters, err = collection.Edit(y.Semesters, a.Parent[1], func(s *models.CurriculumSemester) (err error) {
				s.Subjects, err = reduceStrings(s.Subjects, a)
				return err
			})
			return err
		})
	case SoftwareTools:
		p.SoftwareTools, err = reduce(p.SoftwareTools, a)
	case CareerPaths:
		p.CareerPaths, err = reduce(p.CareerPaths, a)
	case Roles:
		p.CareerPaths, err = collection.Edit(p.CareerPaths, a.Parent[0], func(c *models.CareerPath) (err error) {
			c.Roles, err = reduceStrings(c.Roles, a)
			return err
		})
	case EMIOptions:
		p.FeeStructure.EMIOptions, err = reduce(p.FeeStructure.EMIOptions, a)
	case CouponCodes:
		p.FeeStructure.CouponCodes, err = reduce(p.FeeStructure.CouponCodes, a)
	}
	if err != nil {
		return orig, err
	}
	return p, nil
}

// ApplyAll folds actions over p, stopping at the first failure.
func ApplyAll(p models.CourseProgram, actions ...Action) (models.CourseProgram, error) {
	var err error
	for _, a := range actions {
		if p, err = Apply(p, a); err != nil {
			return p, err
		}
	}
	return p, nil
}

func reduce[T any, P collection.Element[T]](list []T, a Action) ([]T, error) {
	switch a.Op {
	case OpAdd:
		return collection.Add[T, P](list), nil
	case OpUpdate:
		return collection.Update[T, P](list, a.Index, a.Field, a.Value)
	default:
		return collection.Remove(list, a.Index)
	}
}

func reduceStrings(list []string, a Action) ([]string, error) {
	switch a.Op {
	case OpAdd:
		return collection.Append(list, a.Value), nil
	case OpUpdate:
		return collection.Replace(list, a.Index, a.Value)
	default:
		return collection.Delete(list, a.Index)
	}
}

// setProgramField keeps the slug in step with the title until an editor sets
// the slug by hand. Clearing the slug unlocks it again.
func setProgramField(p *models.CourseProgram, field, value string) error {
	switch field {
	case "title":
		if err := p.Set(field, value); err != nil {
			return err
		}
		if !p.SlugLocked {
			p.Slug = slug.Generate(value)
		}
		return nil
	case "slug":
		s := slug.Generate(value)
		if s == "" {
			p.SlugLocked = false
			p.Slug = slug.Generate(p.Title)
			return nil
		}
		p.SlugLocked = true
		p.Slug = s
		return nil
	}
	return p.Set(field, value)
}
