// Package intentqueries provides the admin registration-intent listing with
// its cross-collection joins.
package intentqueries

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/paging"
	"github.com/talentboard/careerhub/internal/app/system/search"
	"github.com/talentboard/careerhub/internal/domain/models"
)

// Sortable fields, keyed by the API's sortBy values.
var sortFields = map[string]string{
	"createdAt":        "created_at",
	"organizationName": "organization_name",
	"status":           "status",
	"email":            "email",
}

// ValidSortBy reports whether the given sortBy value is accepted.
func ValidSortBy(s string) bool {
	_, ok := sortFields[s]
	return ok
}

// Filter defines the filter options for listing registration intents.
type Filter struct {
	Status         string     // exact lifecycle status
	Type           string     // "institute" or "business"
	Search         string     // case-insensitive substring, OR across contact fields
	DateRangeStart *time.Time // inclusive lower bound on created_at
	DateRangeEnd   *time.Time // inclusive upper bound on created_at
	SortBy         string     // one of sortFields' keys; defaults to createdAt
	SortDesc       bool
}

// ApplicantUser is the joined account summary for an intent's submitter.
type ApplicantUser struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	FullName string             `bson:"full_name" json:"fullName"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"`
}

// ApplicantProfile is the joined profile summary for an intent's submitter.
type ApplicantProfile struct {
	PublicProfileID string `bson:"public_profile_id" json:"publicProfileId"`
	Headline        string `bson:"headline,omitempty" json:"headline,omitempty"`
}

// Item is one row of the admin intent listing: the intent plus the joined
// applicant account, profile, and whether an admin institute record already
// exists for the linked institute.
type Item struct {
	models.RegistrationIntent `bson:",inline"`

	User              *ApplicantUser    `bson:"user,omitempty" json:"user,omitempty"`
	Profile           *ApplicantProfile `bson:"profile,omitempty" json:"profile,omitempty"`
	HasAdminInstitute bool              `bson:"has_admin_institute" json:"hasAdminInstitute"`
}

// Result contains one page of items and the filtered total.
type Result struct {
	Items []Item
	Total int64
}

// Strategy is one way of producing the intent listing. The aggregation
// strategy is preferred; the manual-join strategy is the fallback and must
// return the same rows for the same inputs.
type Strategy interface {
	List(ctx context.Context, filter Filter, page paging.Params) (Result, error)
}

// List runs the aggregation strategy and falls back to the manual join if the
// pipeline fails, so the listing degrades instead of erroring on servers
// where the pipeline cannot run.
func List(ctx context.Context, db *mongo.Database, filter Filter, page paging.Params) (Result, error) {
	res, err := NewPipelineStrategy(db).List(ctx, filter, page)
	if err != nil {
		zap.L().Warn("intent aggregation pipeline failed, using manual join",
			zap.Error(err))
		return NewManualJoinStrategy(db).List(ctx, filter, page)
	}
	return res, nil
}

// buildMatch translates a Filter into the match document shared by both
// strategies and by the count, so totals always reflect every predicate
// including search.
func buildMatch(filter Filter) bson.M {
	var clauses []bson.M
	if filter.Status != "" {
		clauses = append(clauses, bson.M{"status": filter.Status})
	}
	if filter.Type != "" {
		clauses = append(clauses, bson.M{"organization_type": filter.Type})
	}
	if filter.Search != "" {
		clauses = append(clauses, search.OrAcross(filter.Search,
			"organization_name", "email", "contact_name", "contact_phone", "city", "state"))
	}
	if filter.DateRangeStart != nil || filter.DateRangeEnd != nil {
		window := bson.M{}
		if filter.DateRangeStart != nil {
			window["$gte"] = *filter.DateRangeStart
		}
		if filter.DateRangeEnd != nil {
			window["$lte"] = *filter.DateRangeEnd
		}
		clauses = append(clauses, bson.M{"created_at": window})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

// sortDoc returns the sort document for a Filter. Ties break on _id so pages
// are stable across both strategies.
func sortDoc(filter Filter) bson.D {
	field, ok := sortFields[filter.SortBy]
	if !ok {
		field = "created_at"
	}
	order := 1
	if filter.SortDesc {
		order = -1
	}
	return bson.D{
		{Key: field, Value: order},
		{Key: "_id", Value: order},
	}
}
