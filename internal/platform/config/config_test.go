package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"TCF_ADDR", "TCF_RESTRICTIONS_FILE", "TCF_LOG_LEVEL", "TCF_INDEX_CAPACITY", "TCF_SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RestrictionsFile)
	assert.Zero(t, cfg.IndexCapacity)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("TCF_ADDR", "127.0.0.1:9000")
	t.Setenv("TCF_RESTRICTIONS_FILE", "/etc/tcf/restrictions.yaml")
	t.Setenv("TCF_LOG_LEVEL", "debug")
	t.Setenv("TCF_INDEX_CAPACITY", "24")
	t.Setenv("TCF_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Server{
		Addr:             "127.0.0.1:9000",
		RestrictionsFile: "/etc/tcf/restrictions.yaml",
		IndexCapacity:    24,
		LogLevel:         "debug",
		ShutdownTimeout:  3 * time.Second,
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Run("negative capacity", func(t *testing.T) {
		t.Setenv("TCF_INDEX_CAPACITY", "-1")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("TCF_INDEX_CAPACITY", "")
		t.Setenv("TCF_SHUTDOWN_TIMEOUT", "soon")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}
