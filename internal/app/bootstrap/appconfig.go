// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging, CORS, body limits). AppConfig is everything specific to
// CareerHub: database connection details, auth secrets, and rate-limit
// tuning for the public endpoints.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Auth configuration
	TokenKey      string        // Secret for signing bearer tokens
	TokenTTL      time.Duration // Bearer token lifetime
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: careerhub-session)
	SessionDomain string        // Cookie domain (blank means current host)

	// Login rate limiting
	LoginIPLimit     int           // Attempts allowed per IP per window
	LoginIPWindow    time.Duration // Window for the per-IP limit
	LoginEmailLimit  int           // Attempts allowed per email per window
	LoginEmailWindow time.Duration // Window for the per-email limit

	// Registration intent submission rate limiting (per client IP)
	IntentSubmitLimit  int
	IntentSubmitWindow time.Duration

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLogAuth  string
	AuditLogAdmin string

	// Notification retention
	NotificationCleanupInterval time.Duration // How often the cleanup worker runs
	NotificationRetention       time.Duration // How long read notifications are kept

	// AdminEmail, when set, promotes that user to the platform admin role
	// on startup.
	AdminEmail string
}
