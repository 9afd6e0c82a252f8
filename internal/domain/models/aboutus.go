// internal/domain/models/aboutus.go
package models

// About-us content families. All are flat documents owned by the backend;
// the dashboard only shuttles them through.

type HeroImage struct {
	ID       string `json:"_id,omitempty"`
	ImageURL string `json:"imageUrl" validate:"notblank"`
	AltText  string `json:"altText,omitempty"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order" validate:"min=1"`
}

// ContentSection is a block of about-us copy. Sections are upserted by
// Type: there is at most one section per type.
type ContentSection struct {
	ID       string `json:"_id,omitempty"`
	Type     string `json:"type" validate:"notblank"`
	Title    string `json:"title" validate:"notblank"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsActive bool   `json:"isActive"`
}

type Statistic struct {
	ID     string `json:"_id,omitempty"`
	Label  string `json:"label" validate:"notblank"`
	Value  string `json:"value" validate:"notblank"`
	Suffix string `json:"suffix,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Order  int    `json:"order" validate:"min=1"`
}

type CoreValue struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order" validate:"min=1"`
}

type CampusImage struct {
	ID       string `json:"_id,omitempty"`
	ImageURL string `json:"imageUrl" validate:"notblank"`
	Caption  string `json:"caption,omitempty"`
	Order    int    `json:"order" validate:"min=1"`
}
