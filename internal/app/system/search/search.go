// internal/app/system/search/search.go
package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Regex builds a case-insensitive substring matcher for a user-supplied
// term. The term is quoted so metacharacters match literally.
func Regex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(term)), Options: "i"}
}

// OrAcross matches term against any of the named fields. An empty term or
// field list yields an empty document, which matches everything.
func OrAcross(term string, fields ...string) bson.M {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return bson.M{}
	}
	re := Regex(term)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}
