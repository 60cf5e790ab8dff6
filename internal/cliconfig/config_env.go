package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (URLINFER_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStringsFromString("infer", os.Getenv("URLINFER_INFER"), &cfg.Rules)
	s.setString("lang", os.Getenv("URLINFER_LANG"), &cfg.Lang)
	s.setStringsFromString("languages", os.Getenv("URLINFER_LANGUAGES"), &cfg.Languages)
	s.setString("api-endpoint", os.Getenv("URLINFER_API_ENDPOINT"), &cfg.APIEndpoint)
	s.setString("user-agent", os.Getenv("URLINFER_USER_AGENT"), &cfg.UserAgent)
	s.setString("cache-dir", os.Getenv("URLINFER_CACHE_DIR"), &cfg.CacheDir)
	s.setString("log-level", os.Getenv("URLINFER_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("rate-interval", os.Getenv("URLINFER_RATE_INTERVAL"), &cfg.RateInterval); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("URLINFER_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setIntFromString("retries", os.Getenv("URLINFER_MAX_RETRIES"), &cfg.MaxRetries); err != nil {
		return err
	}

	return nil
}
