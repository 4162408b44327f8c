// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/talentboard/careerhub/internal/app/system/auth"
)

// Role values recognized by the platform.
const (
	RoleAdmin          = "admin"
	RoleInstituteAdmin = "institute_admin"
	RoleBusinessAdmin  = "business_admin"
	RoleStudent        = "student"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present in context or the user ID is malformed, it
// returns "visitor", "", NilObjectID, false — so ok=true always means a valid,
// authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in credentials - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is a platform admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}

// IsInstituteAdmin reports whether the current request's user administers an institute.
func IsInstituteAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleInstituteAdmin
}

// IsBusinessAdmin reports whether the current request's user administers a business.
func IsBusinessAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleBusinessAdmin
}

// IsStudent reports whether the current request's user is a student.
func IsStudent(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleStudent
}

// UserID returns the current user's ObjectID, or NilObjectID if absent/invalid.
func UserID(r *http.Request) primitive.ObjectID {
	_, _, id, ok := UserCtx(r)
	if !ok {
		return primitive.NilObjectID
	}
	return id
}
