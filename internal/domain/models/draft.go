// internal/domain/models/draft.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Draft kinds.
const (
	DraftNew  = "new"  // program not yet created on the backend
	DraftEdit = "edit" // loaded from an existing program
)

// Draft is an editor's in-progress copy of a program. Base holds the
// fingerprint of every nested collection as last loaded from or saved to
// the backend, keyed by the collection's JSON name.
type Draft struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Kind      string             `bson:"kind" json:"kind"`
	CourseID  string             `bson:"course_id" json:"courseId"`
	ProgramID string             `bson:"program_id,omitempty" json:"programId,omitempty"`
	TitleCI   string             `bson:"title_ci" json:"-"`
	Program   CourseProgram      `bson:"program" json:"program"`
	Base      map[string]string  `bson:"base,omitempty" json:"base,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
	UpdatedBy string             `bson:"updated_by,omitempty" json:"updatedBy,omitempty"`
}
