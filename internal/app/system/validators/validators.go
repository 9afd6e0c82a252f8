// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/dalemusser/campusadmin/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// collectionSchema pairs a collection with the $jsonSchema its documents
// must satisfy.
type collectionSchema struct {
	name   string
	schema bson.M
}

func schemas() []collectionSchema {
	return []collectionSchema{
		{name: "drafts", schema: draftsSchema()},
		{name: "audit_events", schema: auditEventsSchema()},
	}
}

// EnsureAll creates the app's collections when missing and attaches their
// JSON-Schema validators. Servers without collMod validator support
// (some DocumentDB versions) keep the collection and skip the validator.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		// Fall through to create; NamespaceExists is tolerated below.
		zap.L().Warn("listCollections failed", zap.Error(err))
	}

	var errs []error
	for _, cs := range schemas() {
		if err := ensureOne(ctx, db, cs, slices.Contains(existing, cs.name)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cs.name, err))
		}
	}
	return errors.Join(errs...)
}

func ensureOne(ctx context.Context, db *mongo.Database, cs collectionSchema, exists bool) error {
	if !exists {
		switch err := db.CreateCollection(ctx, cs.name); {
		case err == nil:
			zap.L().Info("created collection", zap.String("collection", cs.name))
		case classify(err) == errNamespaceExists:
		default:
			return err
		}
	}

	cmd := bson.D{
		{Key: "collMod", Value: cs.name},
		{Key: "validator", Value: cs.schema},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		if classify(err) == errUnsupported {
			zap.L().Info("validator skipped (unsupported)", zap.String("collection", cs.name))
			return nil
		}
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", cs.name))
	return nil
}

type commandErrKind int

const (
	errOther commandErrKind = iota
	errNamespaceExists
	errUnsupported
)

// classify sorts server errors by code, falling back to the message text
// for drivers and proxies that drop the code.
func classify(err error) commandErrKind {
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case 48:
			return errNamespaceExists
		case 59, 115:
			return errUnsupported
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already exists"), strings.Contains(msg, "namespace exists"):
		return errNamespaceExists
	case strings.Contains(msg, "no such command"),
		strings.Contains(msg, "not implemented"),
		strings.Contains(msg, "not supported"):
		return errUnsupported
	}
	return errOther
}

func draftsSchema() bson.M {
	nullableArray := bson.M{"bsonType": bson.A{"array", "null"}}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"kind", "course_id", "title_ci", "program", "created_at", "updated_at"},
			"properties": bson.M{
				"kind":       bson.M{"enum": bson.A{models.DraftNew, models.DraftEdit}},
				"course_id":  bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"program_id": bson.M{"bsonType": "string"},
				"title_ci":   bson.M{"bsonType": "string"},
				"program": bson.M{
					"bsonType": "object",
					"properties": bson.M{
						"admission_steps": nullableArray,
						"curriculum":      nullableArray,
						"software_tools":  nullableArray,
						"career_paths":    nullableArray,
						"fee_structure":   bson.M{"bsonType": "object"},
					},
				},
				"base":       bson.M{"bsonType": bson.A{"object", "null"}},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
				"updated_by": bson.M{"bsonType": "string"},
			},
		},
	}
}

func auditEventsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"timestamp", "category", "event_type", "success"},
			"properties": bson.M{
				"timestamp":  bson.M{"bsonType": "date"},
				"category":   bson.M{"enum": bson.A{audit.CategoryContent}},
				"event_type": bson.M{"bsonType": "string", "minLength": 1},
				"resource":   bson.M{"bsonType": "string"},
				"success":    bson.M{"bsonType": "bool"},
				"details":    bson.M{"bsonType": "object"},
			},
		},
	}
}
