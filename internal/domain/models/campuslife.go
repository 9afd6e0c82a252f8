// internal/domain/models/campuslife.go
package models

import "time"

// CampusItem is the shape shared by every campus-life section: the
// life-at-campus blocks, student services, clubs, events, gallery images
// and sports facilities.
type CampusItem struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl" validate:"notblank"`
	IsActive    bool   `json:"isActive"`
	Order       int    `json:"order" validate:"min=1"`

	// Clubs only.
	Category string `json:"category,omitempty"`

	// Events only.
	EventDate *time.Time `json:"eventDate,omitempty"`
	Location  string     `json:"location,omitempty"`
}
