// internal/app/features/institutecontent/routes.go
package institutecontent

import (
	"github.com/go-chi/chi/v5"

	"github.com/talentboard/careerhub/internal/app/system/auth"
)

// Routes mounts the profile-content endpoints
// (typically under "/api/institutes/{instituteId}" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Route("/awards", func(ar chi.Router) {
		ar.Get("/", h.ServeAwards)
		ar.Post("/", h.HandleCreateAward)
		ar.Put("/{id}", h.HandleUpdateAward)
		ar.Delete("/{id}", h.HandleDeleteAward)
	})

	r.Route("/highlights", func(hr chi.Router) {
		hr.Get("/", h.ServeHighlights)
		hr.Post("/", h.HandleCreateHighlight)
		hr.Put("/{id}", h.HandleUpdateHighlight)
		hr.Delete("/{id}", h.HandleDeleteHighlight)
	})

	r.Route("/locations", func(lr chi.Router) {
		lr.Get("/", h.ServeLocations)
		lr.Post("/", h.HandleCreateLocation)
		lr.Put("/{id}", h.HandleUpdateLocation)
		lr.Delete("/{id}", h.HandleDeleteLocation)
	})

	return r
}
