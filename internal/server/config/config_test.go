package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	want := &Config{
		EndpointAddrGRPC:        ":50051",
		MetricsAddr:             ":9090",
		SecretKey:               "secretKey",
		SessionValidityDuration: 30 * time.Minute,
		LogLevel:                "info",
	}
	if diff := cmp.Diff(want, defaults()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NoSources(t *testing.T) {
	if diff := cmp.Diff(defaults(), load(nil)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeJSON(t, map[string]any{
		"endpoint_addr_grpc":        "127.0.0.1:9000",
		"database_dsn":              "postgres://x",
		"redis_url":                 "redis://localhost:6379/0",
		"session_validity_duration": "10m",
		"otel_endpoint":             "http://collector:4318",
	})

	got := load([]string{"-c", path})

	want := defaults()
	want.EndpointAddrGRPC = "127.0.0.1:9000"
	want.DatabaseDSN = "postgres://x"
	want.RedisURL = "redis://localhost:6379/0"
	want.SessionValidityDuration = 10 * time.Minute
	want.OtelEndpoint = "http://collector:4318"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeJSON(t, map[string]any{
		"endpoint_addr_grpc": ":1",
		"secret_key":         "from-json",
		"log_level":          "warn",
	})
	t.Setenv("GOPHGRAM_SECRET_KEY", "from-env")
	t.Setenv("GOPHGRAM_LOG_LEVEL", "debug")
	t.Setenv("GOPHGRAM_SESSION_VALIDITY", "5m")
	t.Setenv("GOPHGRAM_OTEL_ENDPOINT", "http://otel:4318")

	got := load([]string{"-config", path, "-l", "error", "-x", "ignored"})

	assert.Equal(t, ":1", got.EndpointAddrGRPC, "json over default")
	assert.Equal(t, "from-env", got.SecretKey, "env over json")
	assert.Equal(t, "error", got.LogLevel, "flag over env")
	assert.Equal(t, 5*time.Minute, got.SessionValidityDuration)
	assert.Equal(t, "http://otel:4318", got.OtelEndpoint)
}

func TestLoad_Flags(t *testing.T) {
	got := load([]string{"-a", ":7", "-m", "", "-d", "dsn", "-r", "redis://r", "-s", "s", "-t", "3", "-l", "debug"})

	want := &Config{
		EndpointAddrGRPC:        ":7",
		MetricsAddr:             "",
		DatabaseDSN:             "dsn",
		RedisURL:                "redis://r",
		SecretKey:               "s",
		SessionValidityDuration: 3 * time.Minute,
		LogLevel:                "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Panics(t *testing.T) {
	t.Run("missing json file", func(t *testing.T) {
		assert.Panics(t, func() { load([]string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		assert.Panics(t, func() { load([]string{"-c", path}) })
	})
	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("GOPHGRAM_SESSION_VALIDITY", "forever")
		assert.Panics(t, func() { load(nil) })
	})
	t.Run("bad flag value", func(t *testing.T) {
		assert.Panics(t, func() { load([]string{"-t", "soon"}) })
	})
}
