// internal/domain/models/career.go
package models

import "time"

type CareerPost struct {
	ID             string     `json:"_id,omitempty"`
	Title          string     `json:"title" validate:"notblank,min=3"`
	Place          string     `json:"place" validate:"notblank,min=2"`
	Description    string     `json:"description" validate:"notblank,textmin=10"`
	Requirements   []string   `json:"requirements" validate:"dive,min=5"`
	EmploymentType string     `json:"employmentType,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// Applicant statuses.
const (
	ApplicantPending     = "pending"
	ApplicantReviewed    = "reviewed"
	ApplicantShortlisted = "shortlisted"
	ApplicantRejected    = "rejected"
	ApplicantHired       = "hired"
)

// ApplicantStatuses lists every status an applicant can be moved to.
var ApplicantStatuses = []string{
	ApplicantPending,
	ApplicantReviewed,
	ApplicantShortlisted,
	ApplicantRejected,
	ApplicantHired,
}

type Applicant struct {
	ID           string     `json:"_id,omitempty"`
	CareerPostID string     `json:"careerPostId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	ResumeURL    string     `json:"resumeUrl,omitempty"`
	CoverLetter  string     `json:"coverLetter,omitempty"`
	Status       string     `json:"status"`
	AppliedAt    *time.Time `json:"appliedAt,omitempty"`
}

// ApplicantStatusUpdate is the body of an applicant status change.
type ApplicantStatusUpdate struct {
	Status string `json:"status" validate:"oneof=pending reviewed shortlisted rejected hired"`
}
