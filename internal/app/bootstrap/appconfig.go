// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig covers the drafts database, the content backend the dashboard
// edits, and the draft cleanup and audit settings.
type AppConfig struct {
	// MongoDB connection configuration (drafts and audit trail)
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Content backend
	ContentAPIURL     string        // Base URL of the content REST API (e.g., https://api.example.edu/api)
	ContentAPIToken   string        // Bearer token sent on every backend call (blank for none)
	ContentAPITimeout time.Duration // Per-call timeout for backend requests

	// Drafts
	DraftTTL             time.Duration // Drafts untouched this long are removed
	DraftCleanupSchedule string        // Cron schedule for the cleanup job (e.g., "@hourly")

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLogContent string
}
