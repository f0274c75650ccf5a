package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/km-arc/go-board/framework/config"
	"github.com/stretchr/testify/assert"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// clearEnv blanks every key Load reads; empty values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_PORT",
		"LOG_LEVEL", "LOG_FORMAT",
		"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT", "HTTP_MAX_BODY_BYTES",
		"METRICS_ENABLED", "METRICS_PATH",
	} {
		t.Setenv(k, "")
	}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := config.Load("testdata/missing.env")

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"App.Name", cfg.App.Name, "GoBoard"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Debug", cfg.App.Debug, true},
		{"App.Port", cfg.App.Port, "8080"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "console"},
		{"HTTP.ReadTimeout", cfg.HTTP.ReadTimeout, 10 * time.Second},
		{"HTTP.ShutdownTimeout", cfg.HTTP.ShutdownTimeout, 15 * time.Second},
		{"HTTP.MaxBodyBytes", cfg.HTTP.MaxBodyBytes, int64(1 << 20)},
		{"Metrics.Enabled", cfg.Metrics.Enabled, true},
		{"Metrics.Path", cfg.Metrics.Path, "/metrics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsLocal())
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_NAME", "Boards")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("HTTP_READ_TIMEOUT", "250ms")
	t.Setenv("METRICS_ENABLED", "0")

	cfg := config.Load("testdata/missing.env")

	assert.Equal(t, "Boards", cfg.App.Name)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsLocal())
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("GOBOARD_TEST_GREETING")
		os.Unsetenv("GOBOARD_TEST_WORKERS")
	})

	config.Load("testdata/app.env")

	assert.Equal(t, "from-file", config.Get("GOBOARD_TEST_GREETING", ""))
	assert.Equal(t, 4, config.GetInt("GOBOARD_TEST_WORKERS", 0))
}

// ── Getters ──────────────────────────────────────────────────────────────────

func TestGetters_Fallbacks(t *testing.T) {
	t.Setenv("GOBOARD_TEST_INT", "nope")
	t.Setenv("GOBOARD_TEST_BOOL", "maybe")
	t.Setenv("GOBOARD_TEST_DURATION", "soon")

	assert.Equal(t, "fallback", config.Get("GOBOARD_TEST_UNSET", "fallback"))
	assert.Equal(t, 7, config.GetInt("GOBOARD_TEST_INT", 7))
	assert.True(t, config.GetBool("GOBOARD_TEST_BOOL", true))
	assert.Equal(t, time.Second, config.GetDuration("GOBOARD_TEST_DURATION", time.Second))
}

func TestGetters_Values(t *testing.T) {
	t.Setenv("GOBOARD_TEST_INT", "42")
	t.Setenv("GOBOARD_TEST_BOOL", "false")
	t.Setenv("GOBOARD_TEST_DURATION", "5s")

	assert.Equal(t, 42, config.GetInt("GOBOARD_TEST_INT", 0))
	assert.False(t, config.GetBool("GOBOARD_TEST_BOOL", true))
	assert.Equal(t, 5*time.Second, config.GetDuration("GOBOARD_TEST_DURATION", 0))
}
