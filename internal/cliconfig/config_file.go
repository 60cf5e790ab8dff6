package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Infer        []string `toml:"infer"`
	Lang         string   `toml:"lang"`
	Languages    []string `toml:"languages"`
	APIEndpoint  string   `toml:"api_endpoint"`
	UserAgent    string   `toml:"user_agent"`
	RateInterval string   `toml:"rate_interval"`
	HTTPTimeout  string   `toml:"http_timeout"`
	MaxRetries   *int     `toml:"max_retries"`
	CacheDir     string   `toml:"cache_dir"`
	LogLevel     string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.urlinfer/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".urlinfer", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStrings("infer", fc.Infer, &cfg.Rules)
	s.setString("lang", fc.Lang, &cfg.Lang)
	s.setStrings("languages", fc.Languages, &cfg.Languages)
	s.setString("api-endpoint", fc.APIEndpoint, &cfg.APIEndpoint)
	s.setString("user-agent", fc.UserAgent, &cfg.UserAgent)
	s.setString("cache-dir", fc.CacheDir, &cfg.CacheDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("rate-interval", fc.RateInterval, &cfg.RateInterval); err != nil {
		return err
	}
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setIntPtr("retries", fc.MaxRetries, &cfg.MaxRetries)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
