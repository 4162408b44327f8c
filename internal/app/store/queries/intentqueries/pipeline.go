package intentqueries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentboard/careerhub/internal/app/system/paging"
)

// PipelineStrategy produces the listing with a single aggregation pipeline:
// one $facet runs the count and the joined page in parallel.
type PipelineStrategy struct {
	db *mongo.Database
}

func NewPipelineStrategy(db *mongo.Database) *PipelineStrategy {
	return &PipelineStrategy{db: db}
}

func (p *PipelineStrategy) List(ctx context.Context, filter Filter, page paging.Params) (Result, error) {
	var result Result

	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: buildMatch(filter)}},
		bson.D{{Key: "$facet", Value: bson.M{
			"totalCount": []bson.M{
				{"$count": "count"},
			},
			"data": dataPipeline(filter, page),
		}}},
	}

	cur, err := p.db.Collection("registration_intents").Aggregate(ctx, pipe)
	if err != nil {
		return result, err
	}
	defer cur.Close(ctx)

	var aggResult struct {
		TotalCount []struct {
			Count int64 `bson:"count"`
		} `bson:"totalCount"`
		Data []Item `bson:"data"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&aggResult); err != nil {
			return result, err
		}
	}
	if err := cur.Err(); err != nil {
		return result, err
	}

	if len(aggResult.TotalCount) > 0 {
		result.Total = aggResult.TotalCount[0].Count
	}
	result.Items = aggResult.Data
	return result, nil
}

// dataPipeline builds the page portion of the $facet: sort, window, then the
// three joins (applicant account, applicant profile, admin-record existence).
func dataPipeline(filter Filter, page paging.Params) []bson.M {
	pipeline := []bson.M{
		{"$sort": sortDoc(filter)},
		{"$skip": page.Skip()},
		{"$limit": int64(page.Limit)},
	}

	// Applicant account.
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user_docs",
		}},
	)

	// Applicant profile.
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         "profiles",
			"localField":   "user_id",
			"foreignField": "user_id",
			"as":           "profile_docs",
		}},
	)

	// Admin institute record, matched on the linked institute ID.
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         "admin_institutes",
			"localField":   "institute_id",
			"foreignField": "_id",
			"as":           "admin_docs",
		}},
	)

	pipeline = append(pipeline,
		bson.M{"$addFields": bson.M{
			"user":    bson.M{"$arrayElemAt": []interface{}{"$user_docs", 0}},
			"profile": bson.M{"$arrayElemAt": []interface{}{"$profile_docs", 0}},
			"has_admin_institute": bson.M{
				"$gt": []interface{}{bson.M{"$size": "$admin_docs"}, 0},
			},
		}},
		bson.M{"$project": bson.M{
			"user_docs":    0,
			"profile_docs": 0,
			"admin_docs":   0,
		}},
	)

	return pipeline
}
