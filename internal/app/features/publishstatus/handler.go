// internal/app/features/publishstatus/handler.go
package publishstatus

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	admininstitutestore "github.com/talentboard/careerhub/internal/app/store/admininstitutes"
	notificationstore "github.com/talentboard/careerhub/internal/app/store/notifications"
	"github.com/talentboard/careerhub/internal/app/store/queries/publishresolve"
	"github.com/talentboard/careerhub/internal/app/system/auditlog"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

// Handler exposes an institute's publish status for reading and mutation.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Audit         *auditlog.Logger
	Resolver      *publishresolve.Resolver
	Admin         *admininstitutestore.Store
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Audit:         audit,
		Resolver:      publishresolve.New(db),
		Admin:         admininstitutestore.New(db),
		Notifications: notificationstore.New(db),
	}
}

// statusView is the wire shape for a resolved publish state.
type statusView struct {
	InstituteID          string     `json:"instituteId"`
	Slug                 string     `json:"slug"`
	Name                 string     `json:"name"`
	Published            bool       `json:"published"`
	PublishLockedByAdmin bool       `json:"publishLockedByAdmin"`
	LastPublishChangedBy string     `json:"lastPublishChangedBy,omitempty"`
	LastPublishedAt      *time.Time `json:"lastPublishedAt,omitempty"`
	LastUnpublishedAt    *time.Time `json:"lastUnpublishedAt,omitempty"`
	Source               string     `json:"source"`
}

func viewOf(requestedID string, st publishresolve.State) statusView {
	return statusView{
		InstituteID:          requestedID,
		Slug:                 st.Slug,
		Name:                 st.Name,
		Published:            st.Published,
		PublishLockedByAdmin: st.PublishLockedByAdmin,
		LastPublishChangedBy: st.LastPublishChangedBy,
		LastPublishedAt:      st.LastPublishedAt,
		LastUnpublishedAt:    st.LastUnpublishedAt,
		Source:               string(st.Source),
	}
}
