// internal/app/features/adminintents/routes.go
package adminintents

import (
	"github.com/go-chi/chi/v5"

	"github.com/talentboard/careerhub/internal/app/system/auth"
	"github.com/talentboard/careerhub/internal/app/system/authz"
)

// Routes mounts the admin registration-intent endpoints
// (typically under "/api/admin/registration-intents" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Use(auth.RequireRole(authz.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Get("/export", h.ServeExport)
	r.Patch("/{id}", h.HandleReview)

	return r
}
