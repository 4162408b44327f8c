package search

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegex_QuotesMetacharacters(t *testing.T) {
	re := Regex("a.b+c@example.com")
	if re.Pattern != `a\.b\+c@example\.com` {
		t.Errorf("pattern: got %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Errorf("options: got %q, want i", re.Options)
	}
}

func TestRegex_TrimsWhitespace(t *testing.T) {
	if got := Regex("  hello  ").Pattern; got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestOrAcross(t *testing.T) {
	doc := OrAcross("aurora", "organization_name", "email")
	or, ok := doc["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("got %v, want $or with 2 clauses", doc)
	}
	re, ok := or[0]["organization_name"].(primitive.Regex)
	if !ok || re.Pattern != "aurora" {
		t.Errorf("first clause: got %v", or[0])
	}
}

func TestOrAcross_EmptyTerm(t *testing.T) {
	if doc := OrAcross("   ", "email"); len(doc) != 0 {
		t.Errorf("empty term: got %v, want empty document", doc)
	}
	if doc := OrAcross("x"); len(doc) != 0 {
		t.Errorf("no fields: got %v, want empty document", doc)
	}
}
