// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for campusadmin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, content_api_url, etc.
//   - Environment variables: CAMPUSADMIN_MONGO_URI, CAMPUSADMIN_CONTENT_API_URL, etc.
//   - Command-line flags: --mongo_uri, --content_api_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "campusadmin", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Content backend
	{Name: "content_api_url", Default: "http://localhost:5000/api", Desc: "Base URL of the content REST API"},
	{Name: "content_api_token", Default: "", Desc: "Bearer token for the content API (blank for none)"},
	{Name: "content_api_timeout", Default: "15s", Desc: "Timeout for each content API call (e.g., 15s, 1m)"},

	// Drafts
	{Name: "draft_ttl", Default: "72h", Desc: "Remove drafts not edited for this long"},
	{Name: "draft_cleanup_schedule", Default: workers.DefaultCleanupSchedule, Desc: "Cron schedule for draft cleanup"},

	// Audit logging settings
	{Name: "audit_log_content", Default: "all", Desc: "Content change logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, CAMPUSADMIN_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAMPUSADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		ContentAPIURL:     appValues.String("content_api_url"),
		ContentAPIToken:   appValues.String("content_api_token"),
		ContentAPITimeout: appValues.Duration("content_api_timeout", cmsclient.DefaultTimeout),

		DraftTTL:             appValues.Duration("draft_ttl", 72*time.Hour),
		DraftCleanupSchedule: appValues.String("draft_cleanup_schedule"),

		AuditLogContent: appValues.String("audit_log_content"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI, content API URL and cleanup schedule are checked here so
// that typos fail at startup rather than on the first request or tick.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}

	if !urlutil.IsValidAbsHTTPURL(appCfg.ContentAPIURL) {
		return fmt.Errorf("content_api_url must be an absolute http(s) URL, got %q", appCfg.ContentAPIURL)
	}
	if appCfg.ContentAPITimeout <= 0 {
		return fmt.Errorf("content_api_timeout must be positive")
	}

	if appCfg.DraftTTL <= 0 {
		return fmt.Errorf("draft_ttl must be positive")
	}
	if _, err := cron.ParseStandard(appCfg.DraftCleanupSchedule); err != nil {
		return fmt.Errorf("invalid draft_cleanup_schedule %q: %w", appCfg.DraftCleanupSchedule, err)
	}

	switch appCfg.AuditLogContent {
	case auditlog.All, auditlog.DB, auditlog.Log, auditlog.Off:
	default:
		return fmt.Errorf("audit_log_content must be one of all, db, log, off; got %q", appCfg.AuditLogContent)
	}

	return nil
}
