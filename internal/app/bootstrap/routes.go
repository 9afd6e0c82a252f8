// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutusfeature "github.com/dalemusser/campusadmin/internal/app/features/aboutus"
	auditlogfeature "github.com/dalemusser/campusadmin/internal/app/features/auditlog"
	campuslifefeature "github.com/dalemusser/campusadmin/internal/app/features/campuslife"
	careersfeature "github.com/dalemusser/campusadmin/internal/app/features/careers"
	errorsfeature "github.com/dalemusser/campusadmin/internal/app/features/errors"
	healthfeature "github.com/dalemusser/campusadmin/internal/app/features/health"
	programsfeature "github.com/dalemusser/campusadmin/internal/app/features/programs"
	"github.com/dalemusser/campusadmin/internal/app/store/audit"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the MongoDB handles and the content backend client
//   - logger: the fully configured zap.Logger for this app
//
// Every route answers JSON in the {success, data} envelope, including the
// router's own 404 and 405 responses.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Content changes go to MongoDB and/or zap depending on audit_log_content.
	auditLogger := auditlog.New(audit.New(deps.MongoDatabase), logger, auditlog.Config{
		Content: appCfg.AuditLogContent,
	})

	r := chi.NewRouter()

	// Request IDs are forwarded to the backend as X-Request-ID.
	r.Use(middleware.RequestID)

	fallback := errorsfeature.NewHandler()
	r.NotFound(fallback.NotFound)
	r.MethodNotAllowed(fallback.MethodNotAllowed)

	// Health check endpoint for load balancers and monitoring.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Content, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Courses, programs and program drafts
	programsfeature.NewHandler(deps.MongoDatabase, deps.Content, auditLogger, errLog, logger).MountRoutes(r)

	// About us
	aboutusfeature.NewHandler(deps.Content, auditLogger, errLog, logger).MountRoutes(r)

	// Careers and applicants
	careersfeature.NewHandler(deps.Content, auditLogger, errLog, logger).MountRoutes(r)

	// Campus life sections
	campuslifefeature.NewHandler(deps.Content, auditLogger, errLog, logger).MountRoutes(r)

	// Audit trail of content changes
	auditHandler := auditlogfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/audit-events", auditlogfeature.Routes(auditHandler))

	return r, nil
}
