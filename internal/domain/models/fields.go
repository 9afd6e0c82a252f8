// internal/domain/models/fields.go
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Form inputs arrive as strings; the Set methods below parse them into the
// typed field named by its JSON key.

// ErrUnknownField is returned when a Set call names a field the entity does
// not have.
var ErrUnknownField = errors.New("unknown field")

// FieldError reports a value that could not be parsed for a field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func unknownField(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func parseInt(field, value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &FieldError{Field: field, Value: value, Err: err}
	}
	return n, nil
}

func parseFloat(field, value string) (float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: value, Err: err}
	}
	return f, nil
}

// parseBool accepts the values an HTML checkbox or JSON client may send.
func parseBool(field, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no", "":
		return false, nil
	}
	return false, &FieldError{Field: field, Value: value, Err: errors.New("not a boolean")}
}

// parseTime accepts RFC 3339 timestamps and bare dates from date inputs.
// An empty value clears the timestamp.
func parseTime(field, value string) (*time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, &FieldError{Field: field, Value: value, Err: errors.New("not an ISO timestamp")}
}

/* ----------------------------- program ----------------------------- */

// Set updates one top-level program field. Nested collections are edited
// through their own element setters.
func (p *CourseProgram) Set(field, value string) error {
	var err error
	switch field {
	case "title":
		p.Title = value
	case "slug":
		p.Slug = value
	case "parentCourseSlug":
		p.ParentCourseSlug = value
	case "shortDescription":
		p.ShortDescription = value
	case "description":
		p.Description = value
	case "imageUrl":
		p.ImageURL = value
	case "detailsUrl":
		p.DetailsURL = value
	case "duration":
		p.Duration = value
	case "isActive":
		p.IsActive, err = parseBool(field, value)
	case "order":
		p.Order, err = parseInt(field, value)
	case "totalFee":
		p.FeeStructure.TotalFee, err = parseFloat(field, value)
	case "currency":
		p.FeeStructure.Currency = value
	default:
		return unknownField(field)
	}
	return err
}

/* ----------------------------- elements ---------------------------- */

func (s *AdmissionStep) Init(order int) {
	*s = AdmissionStep{StepNumber: order, Order: order}
}

func (s *AdmissionStep) Set(field, value string) error {
	var err error
	switch field {
	case "stepNumber":
		s.StepNumber, err = parseInt(field, value)
	case "icon":
		s.Icon = value
	case "title":
		s.Title = value
	case "description":
		s.Description = value
	case "order":
		s.Order, err = parseInt(field, value)
	default:
		return unknownField(field)
	}
	return err
}

func (y *CurriculumYear) Init(order int) {
	*y = CurriculumYear{Semesters: []CurriculumSemester{}, Order: order}
}

func (y *CurriculumYear) Set(field, value string) error {
	var err error
	switch field {
	case "year":
		y.Year = value
	case "imageUrl":
		y.ImageURL = value
	case "description":
		y.Description = value
	case "order":
		y.Order, err = parseInt(field, value)
	default:
		return unknownField(field)
	}
	return err
}

func (s *CurriculumSemester) Init(order int) {
	*s = CurriculumSemester{Subjects: []string{}, Order: order}
}

func (s *CurriculumSemester) Set(field, value string) error {
	var err error
	switch field {
	case "semester":
		s.Semester = value
	case "order":
		s.Order, err = parseInt(field, value)
	default:
		return unknownField(field)
	}
	return err
}

func (t *SoftwareTool) Init(order int) {
	*t = SoftwareTool{Order: order}
}

func (t *SoftwareTool) Set(field, value string) error {
	var err error
	switch field {
	case "name":
		t.Name = value
	case "logoUrl":
		t.LogoURL = value
	case "description":
		t.Description = value
	case "order":
		t.Order, err = parseInt(field, value)
	default:
		return unknownField(field)
	}
	return err
}

func (c *CareerPath) Init(order int) {
	*c = CareerPath{Roles: []string{}, Order: order}
}

func (c *CareerPath) Set(field, value string) error {
	var err error
	switch field {
	case "title":
		c.Title = value
	case "description":
		c.Description = value
	case "order":
		c.Order, err = parseInt(field, value)
	default:
		return unknownField(field)
	}
	return err
}

func (e *EMIOption) Init(order int) {
	*e = EMIOption{IsActive: true, Order: order}
}

func (e *EMIOption) Set(field, value string) error {
	var err error
	switch field {
	case "months":
		e.Months, err = parseInt(field, value)
	case "monthlyAmount":
		e.MonthlyAmount, err = parseFloat(field, value)
	case "totalAmount":
		e.TotalAmount, err = parseFloat(field, value)
	case "processingFee":
		e.ProcessingFee, err = parseFloat(field, value)
	case "interestRate":
		e.InterestRate, err = parseFloat(field, value)
	case "isActive":
		e.IsActive, err = parseBool(field, value)
	case "order":
		e.Order, err = parseInt(field, value)
	default:
		return unknownField(field)
	}
	return err
}

func (c *CouponCode) Init(order int) {
	*c = CouponCode{DiscountType: DiscountPercentage, IsActive: true, Order: order}
}

func (c *CouponCode) Set(field, value string) error {
	var err error
	switch field {
	case "code":
		c.Code = strings.ToUpper(strings.TrimSpace(value))
	case "discountType":
		t := strings.ToLower(strings.TrimSpace(value))
		if t != DiscountPercentage && t != DiscountFixed {
			return &FieldError{Field: field, Value: value, Err: errors.New("must be percentage or fixed")}
		}
		c.DiscountType = t
		c.Normalize()
	case "discountValue":
		c.DiscountValue, err = parseFloat(field, value)
	case "minimumAmount":
		c.MinimumAmount, err = parseFloat(field, value)
	case "maximumDiscount":
		if c.DiscountType == DiscountFixed {
			// ignored for fixed coupons
			return nil
		}
		if strings.TrimSpace(value) == "" {
			c.MaximumDiscount = nil
			return nil
		}
		var f float64
		if f, err = parseFloat(field, value); err == nil {
			c.MaximumDiscount = &f
		}
	case "validFrom":
		c.ValidFrom, err = parseTime(field, value)
	case "validUntil":
		c.ValidUntil, err = parseTime(field, value)
	case "usageLimit":
		c.UsageLimit, err = parseInt(field, value)
	case "usedCount":
		c.UsedCount, err = parseInt(field, value)
	case "isActive":
		c.IsActive, err = parseBool(field, value)
	case "description":
		c.Description = value
	case "order":
		c.Order, err = parseInt(field, value)
	default:
		return unknownField(field)
	}
	return err
}
