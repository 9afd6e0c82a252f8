// internal/domain/models/program.go
package models

import "time"

// CourseProgram is the root aggregate edited by the programs dashboard.
//
// A program belongs to exactly one parent course and is identified by its
// slug within that course. All nested collections are embedded by value and
// are replaced wholesale by the backend on update.
type CourseProgram struct {
	ID               string `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string `bson:"title" json:"title" validate:"notblank"`
	Slug             string `bson:"slug" json:"slug" validate:"notblank"`
	ParentCourseSlug string `bson:"parent_course_slug" json:"parentCourseSlug" validate:"notblank"`
	ShortDescription string `bson:"short_description,omitempty" json:"shortDescription,omitempty"`
	Description      string `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL         string `bson:"image_url" json:"imageUrl" validate:"notblank"`
	DetailsURL       string `bson:"details_url" json:"detailsUrl" validate:"notblank"`
	Duration         string `bson:"duration,omitempty" json:"duration,omitempty"`
	IsActive         bool   `bson:"is_active" json:"isActive"`
	Order            int    `bson:"order" json:"order" validate:"min=1"`

	// SlugLocked is set once an editor types a slug by hand; from then on
	// title edits no longer regenerate it. It is never sent to the backend.
	SlugLocked bool `bson:"slug_locked,omitempty" json:"-"`

	AdmissionSteps []AdmissionStep  `bson:"admission_steps" json:"admissionSteps"`
	Curriculum     []CurriculumYear `bson:"curriculum" json:"curriculum"`
	SoftwareTools  []SoftwareTool   `bson:"software_tools" json:"softwareTools"`
	CareerPaths    []CareerPath     `bson:"career_paths" json:"careerPaths"`
	FeeStructure   FeeStructure     `bson:"fee_structure" json:"feeStructure"`

	CreatedAt *time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

type AdmissionStep struct {
	StepNumber  int    `bson:"step_number" json:"stepNumber"`
	Icon        string `bson:"icon" json:"icon"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Order       int    `bson:"order" json:"order"`
}

type CurriculumYear struct {
	Year        string               `bson:"year" json:"year"`
	Semesters   []CurriculumSemester `bson:"semesters" json:"semesters"`
	ImageURL    string               `bson:"image_url" json:"imageUrl"`
	Description string               `bson:"description" json:"description"`
	Order       int                  `bson:"order" json:"order"`
}

type CurriculumSemester struct {
	Semester string   `bson:"semester" json:"semester"`
	Subjects []string `bson:"subjects" json:"subjects"`
	Order    int      `bson:"order" json:"order"`
}

type SoftwareTool struct {
	Name        string `bson:"name" json:"name"`
	LogoURL     string `bson:"logo_url" json:"logoUrl"`
	Description string `bson:"description" json:"description"`
	Order       int    `bson:"order" json:"order"`
}

type CareerPath struct {
	Title       string   `bson:"title" json:"title"`
	Roles       []string `bson:"roles" json:"roles"`
	Description string   `bson:"description" json:"description"`
	Order       int      `bson:"order" json:"order"`
}

// FeeStructure is one-per-program and owns its EMI options and coupons.
type FeeStructure struct {
	TotalFee    float64      `bson:"total_fee" json:"totalFee"`
	Currency    string       `bson:"currency,omitempty" json:"currency,omitempty"`
	EMIOptions  []EMIOption  `bson:"emi_options" json:"emiOptions"`
	CouponCodes []CouponCode `bson:"coupon_codes" json:"couponCodes" validate:"dive"`
}

type EMIOption struct {
	Months        int     `bson:"months" json:"months"`
	MonthlyAmount float64 `bson:"monthly_amount" json:"monthlyAmount"`
	TotalAmount   float64 `bson:"total_amount" json:"totalAmount"`
	ProcessingFee float64 `bson:"processing_fee" json:"processingFee"`
	InterestRate  float64 `bson:"interest_rate" json:"interestRate"`
	IsActive      bool    `bson:"is_active" json:"isActive"`
	Order         int     `bson:"order" json:"order"`
}

// Coupon discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// CouponCode is a discount attached to a fee structure.
// MaximumDiscount only carries meaning for percentage coupons; it is nil for
// fixed ones so it never reaches the backend payload.
type CouponCode struct {
	Code            string     `bson:"code" json:"code"`
	DiscountType    string     `bson:"discount_type" json:"discountType" validate:"oneof=percentage fixed"`
	DiscountValue   float64    `bson:"discount_value" json:"discountValue"`
	MinimumAmount   float64    `bson:"minimum_amount" json:"minimumAmount"`
	MaximumDiscount *float64   `bson:"maximum_discount,omitempty" json:"maximumDiscount,omitempty"`
	ValidFrom       *time.Time `bson:"valid_from,omitempty" json:"validFrom,omitempty"`
	ValidUntil      *time.Time `bson:"valid_until,omitempty" json:"validUntil,omitempty"`
	UsageLimit      int        `bson:"usage_limit" json:"usageLimit"`
	UsedCount       int        `bson:"used_count" json:"usedCount"`
	IsActive        bool       `bson:"is_active" json:"isActive"`
	Description     string     `bson:"description" json:"description"`
	Order           int        `bson:"order" json:"order"`
}

// Normalize drops fields that have no meaning for the coupon's discount type.
func (c *CouponCode) Normalize() {
	if c.DiscountType == DiscountFixed {
		c.MaximumDiscount = nil
	}
}

// Normalize applies per-element normalisation across the whole tree. It is
// called before a program is sent to the backend.
func (p *CourseProgram) Normalize() {
	for i := range p.FeeStructure.CouponCodes {
		p.FeeStructure.CouponCodes[i].Normalize()
	}
}

// Course is a parent course that groups programs.
type Course struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title" validate:"notblank"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `json:"isActive"`
	Order       int    `json:"order"`
}
