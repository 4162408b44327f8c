// internal/app/features/intents/routes.go
package intents

import (
	"github.com/go-chi/chi/v5"

	"github.com/talentboard/careerhub/internal/app/system/auth"
)

// Routes mounts the self-service registration-intent endpoints
// (typically under "/api/registration-intents" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Post("/", h.HandleSubmit)
	r.Get("/", h.ServeMine)

	return r
}
