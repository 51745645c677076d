package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func boolPtr(b bool) *bool { return &b }

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins проверяет, что поле берётся из первого источника,
// в котором оно задано.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1/api"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2/api", RetryCount: 7}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:1/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7, cfg.Adapter.RetryCount)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: ":memory:"}},
		App:     App{OfflineMode: boolPtr(false)},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	require.NotNil(t, cfg.App.OfflineMode)
	assert.False(t, *cfg.App.OfflineMode, "explicit false must survive the defaults")
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://10.0.0.1:5000/api")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")
	t.Setenv("STORAGE_DB_DSN", "/tmp/k.db")
	t.Setenv("APP_OFFLINE_MODE", "false")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "1m")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	cfg := b.configs[0]
	assert.Equal(t, "http://10.0.0.1:5000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/k.db", cfg.Storage.DB.DSN)
	require.NotNil(t, cfg.App.OfflineMode)
	assert.False(t, *cfg.App.OfflineMode)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
		"workers": map[string]any{"refresh_interval": "30s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvBeatsFlagsBeatsDefaults(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "env.db")

	b := newConfigBuilder()
	b.args = []string{"-d", "flag.db", "-retry-count", "4"}

	cfg, err := b.withEnv().withFlags().withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Adapter.RetryCount)
	assert.Equal(t, DefaultRetryWait, cfg.Adapter.RetryWait)
}

// TestGetStructuredConfig_OfflineModeCanBeDisabled проверяет, что явное
// false из env или флагов не перетирается значением по умолчанию.
func TestGetStructuredConfig_OfflineModeCanBeDisabled(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
	}{
		{name: "env", env: "false"},
		{name: "flag", args: []string{"-offline=false"}},
		{name: "env and flag", env: "false", args: []string{"-offline=false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("APP_OFFLINE_MODE", tt.env)
			}

			b := newConfigBuilder()
			b.args = tt.args

			cfg, err := b.withEnv().withFlags().withJSON().withDefaults().build()
			require.NoError(t, err)
			require.NotNil(t, cfg.App.OfflineMode)
			assert.False(t, *cfg.App.OfflineMode)
			assert.False(t, cfg.Client().App.OfflineMode)
		})
	}
}

func TestGetStructuredConfig_OfflineModeDefaultsToTrue(t *testing.T) {
	b := newConfigBuilder()
	b.args = nil

	cfg, err := b.withEnv().withFlags().withJSON().withDefaults().build()
	require.NoError(t, err)
	require.NotNil(t, cfg.App.OfflineMode)
	assert.True(t, *cfg.App.OfflineMode)
}
