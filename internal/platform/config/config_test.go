package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetEnv(t, "CONTABANCO_LOG_LEVEL", "CONTABANCO_LOG_FORMAT", "CONTABANCO_METRICS_ADDR", "CONTABANCO_CURRENCY")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, Config{LogLevel: "warn", LogFormat: "text", CurrencySymbol: "R$"}, cfg)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("CONTABANCO_LOG_LEVEL", "debug")
		t.Setenv("CONTABANCO_LOG_FORMAT", "json")
		t.Setenv("CONTABANCO_METRICS_ADDR", "127.0.0.1:9090")
		t.Setenv("CONTABANCO_CURRENCY", "US$")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "127.0.0.1:9090", cfg.MetricsAddr)
		assert.Equal(t, "US$", cfg.CurrencySymbol)
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Setenv("CONTABANCO_LOG_LEVEL", "verbose")

		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONTABANCO_LOG_LEVEL")
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		t.Setenv("CONTABANCO_LOG_LEVEL", "info")
		t.Setenv("CONTABANCO_LOG_FORMAT", "xml")

		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONTABANCO_LOG_FORMAT")
	})
}

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
