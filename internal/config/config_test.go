package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxproxy/cx/internal/config"
)

// ===== DEFAULTS =====

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
}

func TestDefault_Limits(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 150, cfg.MaxLines)
	assert.Equal(t, 300, cfg.MaxLineLen)
	assert.True(t, cfg.ShowFooter)
	assert.Contains(t, cfg.LsSkip, "node_modules")
	assert.Contains(t, cfg.LsSkip, "target")
}

func TestDefaultYAML_RoundTrips(t *testing.T) {
	cfg := config.Default()
	err := config.ParseInto(&cfg, []byte(config.DefaultYAML()))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// ===== OVERLAY =====

func TestParseInto_PartialOverride(t *testing.T) {
	cfg := config.Default()
	err := config.ParseInto(&cfg, []byte("max_lines: 40\n"))
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.MaxLines)
	// Untouched fields keep their defaults.
	assert.Equal(t, 300, cfg.MaxLineLen)
	assert.True(t, cfg.HistoryEnabled)
}

func TestParseInto_DisableFooter(t *testing.T) {
	cfg := config.Default()
	err := config.ParseInto(&cfg, []byte("show_footer: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.ShowFooter)
}

func TestParseInto_ListReplacesDefault(t *testing.T) {
	cfg := config.Default()
	err := config.ParseInto(&cfg, []byte("ls_skip:\n  - vendor\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor"}, cfg.LsSkip)
}

func TestParseInto_InvalidYAML(t *testing.T) {
	cfg := config.Default()
	err := config.ParseInto(&cfg, []byte("max_lines: [not a number"))
	assert.Error(t, err)
}

// ===== ENV EXPANSION =====

func TestParseInto_EnvExpansion(t *testing.T) {
	os.Setenv("CX_TEST_LEVEL", "debug")
	defer os.Unsetenv("CX_TEST_LEVEL")

	cfg := config.Default()
	err := config.ParseInto(&cfg, []byte("log_level: ${CX_TEST_LEVEL}\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseInto_EnvDefaultWhenUnset(t *testing.T) {
	os.Unsetenv("CX_TEST_MISSING")

	cfg := config.Default()
	err := config.ParseInto(&cfg, []byte("log_level: ${CX_TEST_MISSING:-error}\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

// ===== VALIDATION =====

func TestValidate_RejectsNonPositiveLimits(t *testing.T) {
	cfg := config.Default()
	cfg.MaxLines = 0
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.MaxLineLen = -1
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.LsMaxDepth = 0
	assert.Error(t, cfg.Validate())
}
