// Package config loads dayboard settings from defaults, a TOML file, a
// .env file and DAYBOARD_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"

	DefaultStorageKey   = "kanban"
	DefaultClockMillis  = 1000
	DefaultClockBuffer  = 4
	DefaultColumnWidth  = 34
	DefaultLogLevel     = "info"
	DefaultDatabaseName = "dayboard.db"
)

type Config struct {
	Backend         string `toml:"backend"`
	DataPath        string `toml:"data_path"`
	StorageKey      string `toml:"storage_key"`
	LogPath         string `toml:"log_path"`
	LogLevel        string `toml:"log_level"`
	UserName        string `toml:"user_name"`
	ClockIntervalMS int    `toml:"clock_interval_ms"`
	ClockBuffer     int    `toml:"clock_buffer"`
	Watch           bool   `toml:"watch"`
	ColumnWidth     int    `toml:"column_width"`
}

func Default() Config {
	user := strings.TrimSpace(os.Getenv("USER"))
	if user == "" {
		user = "there"
	}
	return Config{
		Backend:         BackendSQLite,
		DataPath:        filepath.Join(dataDir(), DefaultDatabaseName),
		StorageKey:      DefaultStorageKey,
		LogPath:         filepath.Join(stateDir(), "dayboard.log"),
		LogLevel:        DefaultLogLevel,
		UserName:        user,
		ClockIntervalMS: DefaultClockMillis,
		ClockBuffer:     DefaultClockBuffer,
		Watch:           true,
		ColumnWidth:     DefaultColumnWidth,
	}
}

// DefaultPath is where Load looks for config.toml when no path is given.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(homeDir(), ".config")
	}
	return filepath.Join(base, "dayboard", "config.toml")
}

// Load layers the TOML file at path (missing is fine), then ./.env, then
// the environment over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := decodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg = FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("DAYBOARD_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("DAYBOARD_DATA_PATH"); ok {
		cfg.DataPath = v
	}
	if v, ok := getEnvString("DAYBOARD_STORAGE_KEY"); ok {
		cfg.StorageKey = v
	}
	if v, ok := getEnvString("DAYBOARD_LOG_PATH"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvString("DAYBOARD_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvString("DAYBOARD_USER_NAME"); ok {
		cfg.UserName = v
	}
	if v, ok := getEnvInt("DAYBOARD_CLOCK_INTERVAL_MS"); ok && v > 0 {
		cfg.ClockIntervalMS = v
	}
	if v, ok := getEnvInt("DAYBOARD_CLOCK_BUFFER"); ok && v > 0 {
		cfg.ClockBuffer = v
	}
	if v, ok := getEnvBool("DAYBOARD_WATCH"); ok {
		cfg.Watch = v
	}
	if v, ok := getEnvInt("DAYBOARD_COLUMN_WIDTH"); ok && v > 0 {
		cfg.ColumnWidth = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("config: data_path is required")
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return errors.New("config: storage_key is required")
	}
	if c.ClockIntervalMS <= 0 {
		return fmt.Errorf("config: clock_interval_ms must be positive, got %d", c.ClockIntervalMS)
	}
	if c.ColumnWidth < 16 {
		return fmt.Errorf("config: column_width must be at least 16, got %d", c.ColumnWidth)
	}
	return nil
}

func (c Config) ClockInterval() time.Duration {
	return time.Duration(c.ClockIntervalMS) * time.Millisecond
}

// StorePath is the path handed to the storage backend: the database file
// for sqlite, a directory for the file backend. A file backend pointed at
// a .db file uses the file's directory.
func (c Config) StorePath() string {
	if c.Backend == BackendFile && strings.EqualFold(filepath.Ext(c.DataPath), ".db") {
		return filepath.Dir(c.DataPath)
	}
	return c.DataPath
}

func dataDir() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "dayboard")
	}
	return filepath.Join(homeDir(), ".local", "share", "dayboard")
}

func stateDir() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return filepath.Join(v, "dayboard")
	}
	return filepath.Join(homeDir(), ".local", "state", "dayboard")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
