package intentqueries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentboard/careerhub/internal/app/system/paging"
	"github.com/talentboard/careerhub/internal/domain/models"
)

// ManualJoinStrategy produces the same listing as PipelineStrategy without
// aggregation: one filtered find per page plus batched secondary reads,
// joined in memory.
type ManualJoinStrategy struct {
	db *mongo.Database
}

func NewManualJoinStrategy(db *mongo.Database) *ManualJoinStrategy {
	return &ManualJoinStrategy{db: db}
}

func (m *ManualJoinStrategy) List(ctx context.Context, filter Filter, page paging.Params) (Result, error) {
	var result Result
	match := buildMatch(filter)

	intents := m.db.Collection("registration_intents")

	total, err := intents.CountDocuments(ctx, match)
	if err != nil {
		return result, err
	}
	result.Total = total

	cur, err := intents.Find(ctx, match, options.Find().
		SetSort(sortDoc(filter)).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit)))
	if err != nil {
		return result, err
	}
	defer cur.Close(ctx)

	var rows []models.RegistrationIntent
	if err := cur.All(ctx, &rows); err != nil {
		return result, err
	}
	if len(rows) == 0 {
		return result, nil
	}

	userIDs := make([]primitive.ObjectID, 0, len(rows))
	var instituteIDs []primitive.ObjectID
	for _, r := range rows {
		userIDs = append(userIDs, r.UserID)
		if r.InstituteID != nil {
			instituteIDs = append(instituteIDs, *r.InstituteID)
		}
	}

	users, err := m.loadUsers(ctx, userIDs)
	if err != nil {
		return result, err
	}
	profiles, err := m.loadProfiles(ctx, userIDs)
	if err != nil {
		return result, err
	}
	adminRecs, err := m.loadAdminRecordIDs(ctx, instituteIDs)
	if err != nil {
		return result, err
	}

	result.Items = make([]Item, 0, len(rows))
	for _, r := range rows {
		item := Item{RegistrationIntent: r}
		if u, ok := users[r.UserID]; ok {
			item.User = &ApplicantUser{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role}
		}
		if p, ok := profiles[r.UserID]; ok {
			item.Profile = &ApplicantProfile{PublicProfileID: p.PublicProfileID, Headline: p.Headline}
		}
		if r.InstituteID != nil {
			item.HasAdminInstitute = adminRecs[*r.InstituteID]
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}

func (m *ManualJoinStrategy) loadUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	out := map[primitive.ObjectID]models.User{}
	cur, err := m.db.Collection("users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, cur.Err()
}

func (m *ManualJoinStrategy) loadProfiles(ctx context.Context, userIDs []primitive.ObjectID) (map[primitive.ObjectID]models.Profile, error) {
	out := map[primitive.ObjectID]models.Profile{}
	cur, err := m.db.Collection("profiles").Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var p models.Profile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	return out, cur.Err()
}

func (m *ManualJoinStrategy) loadAdminRecordIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	out := map[primitive.ObjectID]bool{}
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := m.db.Collection("admin_institutes").Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.ID] = true
	}
	return out, cur.Err()
}
