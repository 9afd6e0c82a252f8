// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/campusadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. Backend
// timeouts follow the configured content API timeout, and the draft cleanup
// job is scheduled here.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	cfg := timeouts.Current()
	cfg.Backend = appCfg.ContentAPITimeout
	timeouts.Configure(cfg)

	if deps.DraftCleanup != nil {
		if err := deps.DraftCleanup.Start(); err != nil {
			logger.Error("draft cleanup start failed", zap.Error(err))
			return err
		}
	}

	logger.Info("campusadmin started",
		zap.String("env", coreCfg.Env),
		zap.String("content_api", appCfg.ContentAPIURL),
		zap.Duration("draft_ttl", appCfg.DraftTTL))
	return nil
}
