// internal/app/policy/institutepolicy/institutepolicy.go
package institutepolicy

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/talentboard/careerhub/internal/app/system/authz"
)

// Owns reports whether userID appears in the institute's owner list.
func Owns(userID primitive.ObjectID, ownerIDs []primitive.ObjectID) bool {
	for _, id := range ownerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CanManage reports whether the current request user can manage an institute
// with the given owner list:
//   - Platform admins always can
//   - Institute owners can manage their own institutes
func CanManage(r *http.Request, ownerIDs []primitive.ObjectID) bool {
	if authz.IsAdmin(r) {
		return true
	}
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return false
	}
	return Owns(userID, ownerIDs)
}
