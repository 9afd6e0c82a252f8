package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigureIgnoresZero(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Short: 7 * time.Second, Backend: 20 * time.Second})
	if Short() != 7*time.Second {
		t.Errorf("Short = %v", Short())
	}
	if Backend() != 20*time.Second {
		t.Errorf("Backend = %v", Backend())
	}
	if Medium() != DefaultMedium || Ping() != DefaultPing || Long() != DefaultLong {
		t.Errorf("unset values changed: %+v", Current())
	}

	Reset()
	if Short() != DefaultShort || Backend() != DefaultBackend {
		t.Errorf("Reset did not restore defaults: %+v", Current())
	}
}

func TestWithTimeoutLogsDeadline(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "slow op")
	<-ctx.Done()
	cancel()

	if logs.FilterMessage("operation timed out").Len() != 1 {
		t.Errorf("expected a timeout warning, got %d entries", logs.Len())
	}
}

func TestWithTimeoutQuietOnCancel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	_, cancel := WithTimeout(context.Background(), time.Minute, zap.New(core), "fast op")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("unexpected log entries: %d", logs.Len())
	}
}
