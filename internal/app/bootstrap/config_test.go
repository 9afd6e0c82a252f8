package bootstrap

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:             "mongodb://localhost:27017",
		MongoDatabase:        "campusadmin",
		MongoMaxPoolSize:     100,
		MongoMinPoolSize:     10,
		ContentAPIURL:        "https://api.example.edu/api",
		ContentAPITimeout:    15 * time.Second,
		DraftTTL:             72 * time.Hour,
		DraftCleanupSchedule: "@hourly",
		AuditLogContent:      "all",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), testLogger()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"bad mongo uri", func(c *AppConfig) { c.MongoURI = "postgres://localhost" }, "MongoDB URI"},
		{"empty database", func(c *AppConfig) { c.MongoDatabase = "" }, "mongo_database"},
		{"pool sizes inverted", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, "mongo_min_pool_size"},
		{"relative api url", func(c *AppConfig) { c.ContentAPIURL = "/api" }, "content_api_url"},
		{"zero api timeout", func(c *AppConfig) { c.ContentAPITimeout = 0 }, "content_api_timeout"},
		{"zero draft ttl", func(c *AppConfig) { c.DraftTTL = 0 }, "draft_ttl"},
		{"bad schedule", func(c *AppConfig) { c.DraftCleanupSchedule = "every tuesday" }, "draft_cleanup_schedule"},
		{"bad audit mode", func(c *AppConfig) { c.AuditLogContent = "verbose" }, "audit_log_content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateConfig_AuditModes(t *testing.T) {
	for _, mode := range []string{"all", "db", "log", "off"} {
		cfg := validAppConfig()
		cfg.AuditLogContent = mode
		if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
			t.Errorf("mode %q: %v", mode, err)
		}
	}
}
