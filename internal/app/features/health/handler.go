// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/httpjson"
)

const pingTimeout = 3 * time.Second

// Handler answers liveness and readiness probes.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// ServeHealth reports process liveness plus database reachability.
//
// Route: GET /api/health
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	dbStatus := "up"
	if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("health check: database ping failed", zap.Error(err))
		dbStatus = "down"
	}

	data := map[string]string{
		"status":   "ok",
		"database": dbStatus,
	}
	if dbStatus != "up" {
		httpjson.Error(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	httpjson.OK(w, data)
}
