package authz_test

import (
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/talentboard/careerhub/internal/app/system/auth"
	"github.com/talentboard/careerhub/internal/app/system/authz"
)

func TestUserCtx_NoUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	role, name, id, ok := authz.UserCtx(r)
	if ok {
		t.Error("expected ok=false without a user")
	}
	if role != "visitor" || name != "" || id != primitive.NilObjectID {
		t.Errorf("expected visitor defaults, got role=%q name=%q id=%v", role, name, id)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   "not-an-object-id",
		Role: "admin",
	})

	_, _, _, ok := authz.UserCtx(r)
	if ok {
		t.Error("expected ok=false for malformed user ID")
	}
}

func TestUserCtx_NormalizesRole(t *testing.T) {
	oid := primitive.NewObjectID()
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   oid.Hex(),
		Name: "Casey",
		Role: "Institute_Admin",
	})

	role, name, id, ok := authz.UserCtx(r)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != authz.RoleInstituteAdmin {
		t.Errorf("expected lowercased role, got %q", role)
	}
	if name != "Casey" || id != oid {
		t.Errorf("unexpected name/id: %q %v", name, id)
	}
}

func TestIsAdmin(t *testing.T) {
	admin := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   primitive.NewObjectID().Hex(),
		Role: "admin",
	})
	student := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   primitive.NewObjectID().Hex(),
		Role: "student",
	})

	if !authz.IsAdmin(admin) {
		t.Error("expected IsAdmin=true for admin")
	}
	if authz.IsAdmin(student) {
		t.Error("expected IsAdmin=false for student")
	}
	if !authz.IsStudent(student) {
		t.Error("expected IsStudent=true for student")
	}
}

func TestUserID(t *testing.T) {
	oid := primitive.NewObjectID()
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   oid.Hex(),
		Role: "student",
	})

	if got := authz.UserID(r); got != oid {
		t.Errorf("UserID: got %v, want %v", got, oid)
	}
	if got := authz.UserID(httptest.NewRequest("GET", "/", nil)); got != primitive.NilObjectID {
		t.Errorf("expected NilObjectID without user, got %v", got)
	}
}
