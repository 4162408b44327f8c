// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	notificationstore "github.com/talentboard/careerhub/internal/app/store/notifications"
	userstore "github.com/talentboard/careerhub/internal/app/store/users"
	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/workers"
)

// notifCleanup runs for the lifetime of the process; Shutdown stops it.
var notifCleanup *workers.NotificationCleanup

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}

	notifCleanup = workers.NewNotificationCleanup(
		notificationstore.New(deps.MongoDatabase), logger,
		appCfg.NotificationCleanupInterval, appCfg.NotificationRetention)
	notifCleanup.Start()

	return nil
}

// ensureAdmin promotes the configured account to the platform admin role.
// The account must already exist; startup does not invent credentials.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := userstore.New(deps.MongoDatabase)

	u, err := users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.Warn("admin_email set but no such user exists yet; sign the user up first",
			zap.String("email", email))
		return nil
	}
	if err != nil {
		return err
	}
	if u.Role == authz.RoleAdmin {
		return nil
	}

	if err := users.SetRole(ctx, u.ID, authz.RoleAdmin); err != nil {
		return err
	}
	logger.Info("promoted user to platform admin",
		zap.String("email", email),
		zap.String("previous_role", u.Role))
	return nil
}
