package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("USER", "abhijay")
	return dir
}

func TestDefaults(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "kanban", cfg.StorageKey)
	assert.Equal(t, filepath.Join(dir, "data", "dayboard", "dayboard.db"), cfg.DataPath)
	assert.Equal(t, filepath.Join(dir, "state", "dayboard", "dayboard.log"), cfg.LogPath)
	assert.Equal(t, "abhijay", cfg.UserName)
	assert.Equal(t, time.Second, cfg.ClockInterval())
	assert.True(t, cfg.Watch)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayersFileDotEnvAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "dayboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend = "file"
data_path = "/tmp/dayboard-data"
user_name = "from-file"
clock_interval_ms = 500
watch = false
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DAYBOARD_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("DAYBOARD_USER_NAME", "from-env")
	// godotenv never overrides a variable that is already set
	t.Setenv("DAYBOARD_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("DAYBOARD_LOG_LEVEL"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "/tmp/dayboard-data", cfg.DataPath)
	assert.Equal(t, "from-env", cfg.UserName)
	assert.Equal(t, 500*time.Millisecond, cfg.ClockInterval())
	assert.False(t, cfg.Watch)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = "), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestFromEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DAYBOARD_BACKEND", "FILE")
	t.Setenv("DAYBOARD_STORAGE_KEY", "planner")
	t.Setenv("DAYBOARD_CLOCK_BUFFER", "16")
	t.Setenv("DAYBOARD_WATCH", "off")
	t.Setenv("DAYBOARD_COLUMN_WIDTH", "not-a-number")

	cfg := FromEnv(Default())
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "planner", cfg.StorageKey)
	assert.Equal(t, 16, cfg.ClockBuffer)
	assert.False(t, cfg.Watch)
	assert.Equal(t, DefaultColumnWidth, cfg.ColumnWidth)
}

func TestValidate(t *testing.T) {
	isolate(t)
	cases := map[string]func(*Config){
		"backend":  func(c *Config) { c.Backend = "redis" },
		"key":      func(c *Config) { c.StorageKey = " " },
		"data":     func(c *Config) { c.DataPath = "" },
		"interval": func(c *Config) { c.ClockIntervalMS = 0 },
		"width":    func(c *Config) { c.ColumnWidth = 4 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestStorePath(t *testing.T) {
	isolate(t)
	cfg := Default()
	assert.Equal(t, cfg.DataPath, cfg.StorePath())

	cfg.Backend = BackendFile
	assert.Equal(t, filepath.Dir(cfg.DataPath), cfg.StorePath())

	cfg.DataPath = "/tmp/boards"
	assert.Equal(t, "/tmp/boards", cfg.StorePath())
}
