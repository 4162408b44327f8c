// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminintentsfeature "github.com/talentboard/careerhub/internal/app/features/adminintents"
	healthfeature "github.com/talentboard/careerhub/internal/app/features/health"
	institutecontentfeature "github.com/talentboard/careerhub/internal/app/features/institutecontent"
	intentsfeature "github.com/talentboard/careerhub/internal/app/features/intents"
	loginfeature "github.com/talentboard/careerhub/internal/app/features/login"
	notificationsfeature "github.com/talentboard/careerhub/internal/app/features/notifications"
	publishstatusfeature "github.com/talentboard/careerhub/internal/app/features/publishstatus"
	"github.com/talentboard/careerhub/internal/app/store/audit"
	"github.com/talentboard/careerhub/internal/app/system/auditlog"
	"github.com/talentboard/careerhub/internal/app/system/auth"
	"github.com/talentboard/careerhub/internal/app/system/ratelimit"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CareerHub builds the auth manager and
// rate limiters here, applies request-scoped middleware, and mounts the
// JSON API feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	authMgr, err := auth.NewManager(
		appCfg.TokenKey,
		appCfg.SessionKey,
		appCfg.SessionName,
		appCfg.SessionDomain,
		secure,
		appCfg.TokenTTL,
		logger,
	)
	if err != nil {
		logger.Error("auth manager init failed", zap.Error(err))
		return nil, err
	}

	loginLimiter := ratelimit.NewLoginLimiterWithConfig(
		appCfg.LoginIPLimit, appCfg.LoginIPWindow,
		appCfg.LoginEmailLimit, appCfg.LoginEmailWindow,
	)
	intentLimiter := ratelimit.New(appCfg.IntentSubmitLimit, appCfg.IntentSubmitWindow)

	db := deps.MongoDatabase

	auditLogger := auditlog.New(audit.New(db), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	r := chi.NewRouter()

	// Every response carries a request ID; the auth middleware loads the
	// SessionUser into context so handlers can use authz.UserCtx.
	r.Use(requestid.Middleware)
	r.Use(authMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(db, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	// Authentication.
	loginHandler := loginfeature.NewHandler(db, authMgr, loginLimiter, auditLogger, logger)
	r.Mount("/api/auth", loginfeature.Routes(loginHandler))

	// Registration intents: applicant submission/listing, plus the admin
	// review queue.
	intentsHandler := intentsfeature.NewHandler(db, logger)
	r.With(intentLimiter.Middleware).
		Mount("/api/registration-intents", intentsfeature.Routes(intentsHandler))

	adminIntentsHandler := adminintentsfeature.NewHandler(db, auditLogger, logger)
	r.Mount("/api/admin/registration-intents", adminintentsfeature.Routes(adminIntentsHandler))

	// Institute surface: publish status plus owner-managed content.
	publishHandler := publishstatusfeature.NewHandler(db, auditLogger, logger)
	contentHandler := institutecontentfeature.NewHandler(db, logger)
	r.Route("/api/institutes/{instituteId}", func(r chi.Router) {
		r.Mount("/publish-status", publishstatusfeature.Routes(publishHandler))
		r.Mount("/", institutecontentfeature.Routes(contentHandler))
	})

	// Notification feed.
	notificationsHandler := notificationsfeature.NewHandler(db, logger)
	r.Mount("/api/notifications", notificationsfeature.Routes(notificationsHandler))

	return r, nil
}
