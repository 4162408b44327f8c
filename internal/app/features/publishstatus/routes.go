// internal/app/features/publishstatus/routes.go
package publishstatus

import (
	"github.com/go-chi/chi/v5"

	"github.com/talentboard/careerhub/internal/app/system/auth"
)

// Routes mounts the publish-status endpoints
// (typically under "/api/institutes/{instituteId}/publish-status" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeStatus)
	r.Patch("/", h.HandleUpdate)

	return r
}
