// internal/app/store/drafts/store.go
package drafts

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/campusadmin/internal/app/system/paging"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no draft has the requested ID.
var ErrNotFound = errors.New("draft not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("drafts")}
}

// Create inserts d, assigning its ID and timestamps.
func (s *Store) Create(ctx context.Context, d models.Draft) (models.Draft, error) {
	now := time.Now().UTC()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if d.Kind == "" {
		d.Kind = models.DraftNew
	}
	d.TitleCI = text.Fold(d.Program.Title)
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Draft{}, err
	}
	return d, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Draft, error) {
	var d models.Draft
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Draft{}, ErrNotFound
	}
	return d, err
}

// Save writes the mutable parts of d (kind, program ID, program, base
// fingerprints, editor) and bumps updated_at.
func (s *Store) Save(ctx context.Context, d models.Draft) (models.Draft, error) {
	d.UpdatedAt = time.Now().UTC()
	d.TitleCI = text.Fold(d.Program.Title)
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": d.ID}, bson.M{"$set": bson.M{
		"kind":       d.Kind,
		"program_id": d.ProgramID,
		"title_ci":   d.TitleCI,
		"program":    d.Program,
		"base":       d.Base,
		"updated_at": d.UpdatedAt,
		"updated_by": d.UpdatedBy,
	}})
	if err != nil {
		return models.Draft{}, err
	}
	if res.MatchedCount == 0 {
		return models.Draft{}, ErrNotFound
	}
	return d, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFilter narrows List to one course when CourseID is set.
type ListFilter struct {
	CourseID string
}

// List returns one page of drafts ordered by program title.
func (s *Store) List(ctx context.Context, f ListFilter, p paging.Params) ([]models.Draft, paging.Page, error) {
	ks := paging.NewKeyset(p)

	filter := bson.M{}
	if f.CourseID != "" {
		filter["course_id"] = f.CourseID
	}
	if w := ks.Window("title_ci"); w != nil {
		for k, v := range w {
			filter[k] = v
		}
	}

	cur, err := s.c.Find(ctx, filter, ks.FindOptions("title_ci"))
	if err != nil {
		return nil, paging.Page{}, err
	}
	defer cur.Close(ctx)

	rows := []models.Draft{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, paging.Page{}, err
	}

	page := paging.Finish(&rows, ks,
		func(d models.Draft) string { return d.TitleCI },
		func(d models.Draft) primitive.ObjectID { return d.ID },
	)
	return rows, page, nil
}

// DeleteStale removes drafts not updated since before and reports how many
// were removed.
func (s *Store) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"updated_at": bson.M{"$lt": before}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
