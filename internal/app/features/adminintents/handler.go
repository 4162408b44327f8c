// internal/app/features/adminintents/handler.go
package adminintents

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	notificationstore "github.com/talentboard/careerhub/internal/app/store/notifications"
	intentstore "github.com/talentboard/careerhub/internal/app/store/registrationintents"
	userstore "github.com/talentboard/careerhub/internal/app/store/users"
	"github.com/talentboard/careerhub/internal/app/system/auditlog"
)

const (
	listTimeout   = 15 * time.Second
	reviewTimeout = 10 * time.Second
)

// Handler is the admin surface for registration intents: the joined listing
// and the review action.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Audit         *auditlog.Logger
	Intents       *intentstore.Store
	Users         *userstore.Store
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Audit:         audit,
		Intents:       intentstore.New(db),
		Users:         userstore.New(db),
		Notifications: notificationstore.New(db),
	}
}
