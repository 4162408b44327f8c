// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/domain/models"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	// Core collections this app uses
	ensure("users", usersSchema())
	ensure("registration_intents", registrationIntentsSchema())
	ensure("admin_institutes", adminInstitutesSchema())
	ensure("institutes", institutesSchema())
	ensure("notifications", notificationsSchema())

	// These don't strictly need validators; we still ensure the collections exist.
	ensure("profiles", nil)
	ensure("awards", nil)
	ensure("highlights", nil)
	ensure("locations", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureCollection creates name when it does not exist yet. A create that
// loses a race to a concurrent startup is not an error.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err == nil && len(names) > 0 {
		return nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExists(err) {
			return nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

// setValidator attaches a JSON-Schema validator via collMod. Level "moderate"
// so pre-existing documents that predate the schema are not rejected on read,
// only on the next write that touches them.
func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

// commandErrIs matches a mongo CommandError by server error code, falling
// back to message substrings for servers that report differently.
func commandErrIs(err error, code int32, substrings ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == code {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, s := range substrings {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func isNamespaceExists(err error) bool {
	return commandErrIs(err, 48, "already exists", "namespace exists")
}

func isNoSuchCommand(err error) bool {
	return commandErrIs(err, 59, "no such command")
}

func isNotImplemented(err error) bool {
	return commandErrIs(err, 115, "not implemented", "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"full_name", "email", "role", "status"},
			"properties": bson.M{
				"full_name":     bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"email":         bson.M{"bsonType": "string", "minLength": 3, "pattern": "@"},
				"password_hash": bson.M{"bsonType": "string"},
				"role":          bson.M{"enum": bson.A{"admin", "institute_admin", "business_admin", "student"}},
				"status":        bson.M{"enum": bson.A{"active", "disabled"}},
			},
		},
	}
}

func registrationIntentsSchema() bson.M {
	statusEnum := bson.A{
		models.IntentStatusPending,
		models.IntentStatusApproved,
		models.IntentStatusRejected,
		models.IntentStatusPaymentRequired,
		models.IntentStatusCompleted,
	}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"user_id", "organization_type", "organization_name", "email", "status"},
			"properties": bson.M{
				"user_id":           bson.M{"bsonType": "objectId"},
				"organization_type": bson.M{"enum": bson.A{models.IntentTypeInstitute, models.IntentTypeBusiness}},
				"organization_name": bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"email":             bson.M{"bsonType": "string", "minLength": 3, "pattern": "@"},
				"status":            bson.M{"enum": statusEnum},
				"institute_id":      bson.M{"bsonType": "objectId"},
				"reviewed_by":       bson.M{"bsonType": "objectId"},
				"reviewed_at":       bson.M{"bsonType": "date"},
				"created_at":        bson.M{"bsonType": "date"},
				"updated_at":        bson.M{"bsonType": "date"},
			},
		},
	}
}

func adminInstitutesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"slug", "published"},
			"properties": bson.M{
				"slug":                    bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"name":                    bson.M{"bsonType": "string"},
				"user_ids":                bson.M{"bsonType": "array", "items": bson.M{"bsonType": "objectId"}},
				"published":               bson.M{"bsonType": "bool"},
				"publish_locked_by_admin": bson.M{"bsonType": "bool"},
				"last_publish_changed_by": bson.M{"enum": bson.A{models.PublishActorAdmin, models.PublishActorInstituteAdmin}},
				"last_published_at":       bson.M{"bsonType": "date"},
				"last_unpublished_at":     bson.M{"bsonType": "date"},
				"created_at":              bson.M{"bsonType": "date"},
				"updated_at":              bson.M{"bsonType": "date"},
			},
		},
	}
}

func institutesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "public_profile_id"},
			"properties": bson.M{
				"name":              bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"public_profile_id": bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"user_ids":          bson.M{"bsonType": "array", "items": bson.M{"bsonType": "objectId"}},
			},
		},
	}
}

func notificationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"user_id", "kind", "title", "read"},
			"properties": bson.M{
				"user_id": bson.M{"bsonType": "objectId"},
				"kind": bson.M{"enum": bson.A{
					models.NotificationIntentReviewed,
					models.NotificationPublishChanged,
					models.NotificationSystem,
				}},
				"title":      bson.M{"bsonType": "string", "minLength": 1},
				"read":       bson.M{"bsonType": "bool"},
				"read_at":    bson.M{"bsonType": "date"},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}
