package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LIFEDASH_DATA_DIR", dir)
	t.Setenv("LIFEDASH_DB_NAME", "")
	t.Setenv("LIFEDASH_STORE_CODEC", "")
	t.Setenv("LIFEDASH_REFRESH_SCHEDULE", "")
	t.Setenv("LIFEDASH_HISTORY_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "lifedash.db"), cfg.DBPath())
	assert.Equal(t, CodecJSON, cfg.StoreCodec)
	assert.Equal(t, "@every 6h", cfg.RefreshSchedule)
	assert.Equal(t, 10, cfg.HistoryLimit)
}

func TestLoad_FromEnv(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("LIFEDASH_DATA_DIR", dir)
	t.Setenv("LIFEDASH_STORE_CODEC", "MSGPACK")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("LIFEDASH_HISTORY_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, CodecMsgpack, cfg.StoreCodec)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, 3, cfg.HistoryLimit)
}

func TestLoad_InvalidCodec(t *testing.T) {
	t.Setenv("LIFEDASH_DATA_DIR", t.TempDir())
	t.Setenv("LIFEDASH_STORE_CODEC", "xml")

	_, err := Load()
	assert.ErrorContains(t, err, "LIFEDASH_STORE_CODEC")
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("LIFEDASH_TEST_INT", "not-a-number")
	t.Setenv("LIFEDASH_TEST_BOOL", "yes-please")

	assert.Equal(t, 7, getEnvAsInt("LIFEDASH_TEST_INT", 7))
	assert.True(t, getEnvAsBool("LIFEDASH_TEST_BOOL", true))
	assert.Equal(t, "fallback", getEnv("LIFEDASH_TEST_UNSET", "fallback"))
}

func TestLoadThresholds(t *testing.T) {
	th, err := LoadThresholds("")
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholds(), th)

	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
trading:
  target_win_rate: 60
health:
  weekly_target: 4
integrator:
  top_actions: 5
`), 0o644))

	th, err = LoadThresholds(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, th.Trading.TargetWinRate)
	assert.Equal(t, 4, th.Health.WeeklyTarget)
	assert.Equal(t, 5, th.Integrator.TopActions)

	// Untouched keys keep their defaults
	defaults := DefaultThresholds()
	assert.Equal(t, defaults.Trading.LowWinRate, th.Trading.LowWinRate)
	assert.Equal(t, defaults.Health.StrengthTypes, th.Health.StrengthTypes)
	assert.Equal(t, defaults.Discipline, th.Discipline)
}

func TestLoadThresholds_Errors(t *testing.T) {
	_, err := LoadThresholds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trading: [not, a, map"), 0o644))
	th, err := LoadThresholds(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultThresholds(), th)
}

func TestThresholds_Deps(t *testing.T) {
	deps := DefaultThresholds().Deps()
	assert.NotNil(t, deps.Discipline)
	assert.NotNil(t, deps.Health)
	assert.NotNil(t, deps.Trading)
	assert.NotNil(t, deps.Career)
	assert.NotNil(t, deps.Finance)
	assert.NotNil(t, deps.Coach)
}
