// internal/app/features/programs/payload.go
package programs

import (
	"github.com/dalemusser/campusadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campusadmin/internal/app/system/programdraft"
	"github.com/dalemusser/campusadmin/internal/domain/models"
)

// sanitized returns p with every rich-text field cleaned. Nested slices
// are copied so the draft itself is left as the editor wrote it.
func sanitized(p models.CourseProgram) models.CourseProgram {
	htmlsanitize.Fields(&p.ShortDescription, &p.Description)

	p.AdmissionSteps = append([]models.AdmissionStep(nil), p.AdmissionSteps...)
	for i := range p.AdmissionSteps {
		htmlsanitize.Fields(&p.AdmissionSteps[i].Description)
	}
	p.Curriculum = append([]models.CurriculumYear(nil), p.Curriculum...)
	for i := range p.Curriculum {
		htmlsanitize.Fields(&p.Curriculum[i].Description)
	}
	p.SoftwareTools = append([]models.SoftwareTool(nil), p.SoftwareTools...)
	for i := range p.SoftwareTools {
		htmlsanitize.Fields(&p.SoftwareTools[i].Description)
	}
	p.CareerPaths = append([]models.CareerPath(nil), p.CareerPaths...)
	for i := range p.CareerPaths {
		htmlsanitize.Fields(&p.CareerPaths[i].Description)
	}
	p.FeeStructure.CouponCodes = append([]models.CouponCode(nil), p.FeeStructure.CouponCodes...)
	for i := range p.FeeStructure.CouponCodes {
		htmlsanitize.Fields(&p.FeeStructure.CouponCodes[i].Description)
	}
	return p
}

// detailsPayload holds the top-level program fields. Nested collections are
// persisted on their own.
func detailsPayload(p models.CourseProgram) map[string]any {
	return map[string]any{
		"title":            p.Title,
		"slug":             p.Slug,
		"parentCourseSlug": p.ParentCourseSlug,
		"shortDescription": p.ShortDescription,
		"description":      p.Description,
		"imageUrl":         p.ImageURL,
		"detailsUrl":       p.DetailsURL,
		"duration":         p.Duration,
		"isActive":         p.IsActive,
		"order":            p.Order,
	}
}

// sectionSize counts the elements persisted with root.
func sectionSize(p models.CourseProgram, root string) int {
	switch root {
	case programdraft.AdmissionSteps:
		return len(p.AdmissionSteps)
	case programdraft.Curriculum:
		return len(p.Curriculum)
	case programdraft.SoftwareTools:
		return len(p.SoftwareTools)
	case programdraft.CareerPaths:
		return len(p.CareerPaths)
	case programdraft.FeeStructure:
		return len(p.FeeStructure.EMIOptions) + len(p.FeeStructure.CouponCodes)
	}
	return 0
}

// newProgram is the blank program a new draft starts from.
func newProgram(course models.Course) models.CourseProgram {
	return models.CourseProgram{
		ParentCourseSlug: course.Slug,
		IsActive:         true,
		Order:            1,
		AdmissionSteps:   []models.AdmissionStep{},
		Curriculum:       []models.CurriculumYear{},
		SoftwareTools:    []models.SoftwareTool{},
		CareerPaths:      []models.CareerPath{},
		FeeStructure: models.FeeStructure{
			EMIOptions:  []models.EMIOption{},
			CouponCodes: []models.CouponCode{},
		},
	}
}
