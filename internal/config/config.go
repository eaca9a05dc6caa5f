// Package config loads and saves the due CLI settings stored in
// config.json, with environment variable overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
)

const (
	configFile = "config.json"
	lockFile   = "config.json.lock"
)

// Environment overrides
const (
	EnvConfigDir = "DUE_CONFIG_DIR"
	EnvOutput    = "DUE_OUTPUT"
	EnvLogLevel  = "DUE_LOG_LEVEL"
	EnvLogFormat = "DUE_LOG_FORMAT"
	EnvLogFile   = "DUE_LOG_FILE"
	EnvNow       = "DUE_NOW"
)

// Defaults
const (
	DefaultOutput    = "text"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `json:"level,omitempty"`  // "debug", "info", "warn" (default), "error"
	Format string `json:"format,omitempty"` // "text" (default) or "json"
	File   string `json:"file,omitempty"`   // rotated log file; empty = stderr only
}

// Config is the due config stored at ~/.config/due/config.json.
type Config struct {
	Output string    `json:"output,omitempty"` // "text" (default) or "json"
	Log    LogConfig `json:"log"`

	// Now pins the reference instant. Only settable through DUE_NOW.
	Now string `json:"-"`
}

// Dir returns the config directory: $DUE_CONFIG_DIR, else ~/.config/due.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "due"), nil
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, configFile)
}

// Load reads the config file from the default directory, applies
// environment overrides and fills defaults.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(dir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}

// LoadFile reads the config exactly as stored in dir. A missing file is an
// empty config.
func LoadFile(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", Path(dir), err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from DUE_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvNow); v != "" {
		c.Now = v
	}
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Save writes the config to dir using atomic write (temp file + rename)
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, Path(dir))
}

// Update loads the stored config, applies fn and saves the result while
// holding the config lock.
func Update(dir string, fn func(*Config) error) error {
	return withConfigLock(dir, func() error {
		cfg, err := LoadFile(dir)
		if err != nil {
			return err
		}
		if err := fn(cfg); err != nil {
			return err
		}
		return Save(dir, cfg)
	})
}

// withConfigLock serializes access to config.json using flock
func withConfigLock(dir string, fn func() error) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, lockFile), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return err
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

// ErrUnknownKey is returned by Get and Set for unsupported keys.
var ErrUnknownKey = errors.New("unknown config key")

// key describes one settable config key.
type key struct {
	get     func(*Config) string
	set     func(*Config, string)
	allowed []string // empty = free-form
}

var keys = map[string]key{
	"output": {
		get:     func(c *Config) string { return c.Output },
		set:     func(c *Config, v string) { c.Output = v },
		allowed: []string{"text", "json"},
	},
	"log.level": {
		get:     func(c *Config) string { return c.Log.Level },
		set:     func(c *Config, v string) { c.Log.Level = v },
		allowed: []string{"debug", "info", "warn", "error"},
	},
	"log.format": {
		get:     func(c *Config) string { return c.Log.Format },
		set:     func(c *Config, v string) { c.Log.Format = v },
		allowed: []string{"text", "json"},
	},
	"log.file": {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) { c.Log.File = v },
	},
}

// Keys returns the supported config keys, sorted.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Get returns the value of a config key.
func (c *Config) Get(name string) (string, error) {
	k, ok := keys[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}
	return k.get(c), nil
}

// Set validates and assigns a config key. An empty value unsets it.
func (c *Config) Set(name, value string) error {
	k, ok := keys[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}
	value = strings.TrimSpace(value)
	if value != "" && len(k.allowed) > 0 {
		value = strings.ToLower(value)
		if !contains(k.allowed, value) {
			return fmt.Errorf("invalid value %q for %s (expected one of: %s)",
				value, name, strings.Join(k.allowed, ", "))
		}
	}
	k.set(c, value)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
