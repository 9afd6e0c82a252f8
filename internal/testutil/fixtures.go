package testutil

import (
	"context"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Calling it again on the returned request adds to the same route context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Program returns a program that passes create validation once a slug is
// set, with one element in every nested collection.
func Program(title, parentCourseSlug string) models.CourseProgram {
	maxDiscount := 500.0
	return models.CourseProgram{
		Title:            title,
		Slug:             "",
		ParentCourseSlug: parentCourseSlug,
		ShortDescription: "A short description",
		Description:      "<p>Full description</p>",
		ImageURL:         "https://img.example.edu/program.png",
		DetailsURL:       "https://www.example.edu/programs/details",
		Duration:         "3 years",
		IsActive:         true,
		Order:            1,
		AdmissionSteps: []models.AdmissionStep{
			{StepNumber: 1, Icon: "form", Title: "Apply", Description: "Fill the form", Order: 1},
		},
		Curriculum: []models.CurriculumYear{
			{
				Year: "Year 1",
				Semesters: []models.CurriculumSemester{
					{Semester: "Semester 1", Subjects: []string{"Sketching", "Drawing"}, Order: 1},
				},
				Order: 1,
			},
		},
		SoftwareTools: []models.SoftwareTool{
			{Name: "Figma", LogoURL: "https://img.example.edu/figma.png", Order: 1},
		},
		CareerPaths: []models.CareerPath{
			{Title: "Designer", Roles: []string{"UI Designer"}, Order: 1},
		},
		FeeStructure: models.FeeStructure{
			TotalFee: 300000,
			Currency: "INR",
			EMIOptions: []models.EMIOption{
				{Months: 12, MonthlyAmount: 25000, TotalAmount: 300000, IsActive: true, Order: 1},
			},
			CouponCodes: []models.CouponCode{
				{Code: "EARLY10", DiscountType: models.DiscountPercentage, DiscountValue: 10,
					MaximumDiscount: &maxDiscount, IsActive: true, Order: 1},
			},
		},
	}
}
