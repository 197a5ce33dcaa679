package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv leaves the variable truly
	// absent for the duration of the test.
	for _, key := range []string{"RATCHET_LOG_LEVEL", "RATCHET_METRICS_ADDR", "RATCHET_NO_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":9464", cfg.MetricsAddr)
	assert.False(t, cfg.NoColor)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATCHET_LOG_LEVEL", "debug")
	t.Setenv("RATCHET_METRICS_ADDR", "127.0.0.1:9090")
	t.Setenv("RATCHET_NO_COLOR", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9090", cfg.MetricsAddr)
	assert.True(t, cfg.NoColor)
}
