package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/pkg/infer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Lang != "en" {
		t.Errorf("Lang = %v, want en", cfg.Lang)
	}
	if len(cfg.Languages) != len(infer.DefaultLanguages) {
		t.Errorf("Languages = %v, want %v", cfg.Languages, infer.DefaultLanguages)
	}
	if cfg.RateInterval != 100*time.Millisecond {
		t.Errorf("RateInterval = %v, want 100ms", cfg.RateInterval)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("MaxRetries = %v, want 2", cfg.MaxRetries)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func(mut func(*Config)) Config {
		c := DefaultConfig()
		mut(&c)
		return c
	}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "all rules",
			config: valid(func(c *Config) { c.Rules = []string{"wikivoyage", "dbpedia", "wikipedia-language-expand"} }),
		},
		{
			name:   "no rules",
			config: valid(func(c *Config) { c.Rules = nil }),
		},
		{
			name:    "unknown rule",
			config:  valid(func(c *Config) { c.Rules = []string{"wikidata"} }),
			wantErr: true,
		},
		{
			name:    "missing lang",
			config:  valid(func(c *Config) { c.Lang = "" }),
			wantErr: true,
		},
		{
			name:    "lang with digits",
			config:  valid(func(c *Config) { c.Lang = "e1" }),
			wantErr: true,
		},
		{
			name:   "regional language code",
			config: valid(func(c *Config) { c.Languages = []string{"zh-yue", "be-tarask", "simple"} }),
		},
		{
			name:    "bad language in set",
			config:  valid(func(c *Config) { c.Languages = []string{"en", "f r"} }),
			wantErr: true,
		},
		{
			name:    "endpoint must be http",
			config:  valid(func(c *Config) { c.APIEndpoint = "ftp://example.org/api.php" }),
			wantErr: true,
		},
		{
			name:   "endpoint with placeholder",
			config: valid(func(c *Config) { c.APIEndpoint = "https://{site}/w/api.php" }),
		},
		{
			name:    "negative rate interval",
			config:  valid(func(c *Config) { c.RateInterval = -time.Second }),
			wantErr: true,
		},
		{
			name:    "zero timeout",
			config:  valid(func(c *Config) { c.HTTPTimeout = 0 }),
			wantErr: true,
		},
		{
			name:    "too many retries",
			config:  valid(func(c *Config) { c.MaxRetries = 11 }),
			wantErr: true,
		},
		{
			name:    "bad log level",
			config:  valid(func(c *Config) { c.LogLevel = "verbose" }),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate_Normalizes(t *testing.T) {
	c := DefaultConfig()
	c.Lang = " FR "
	c.Languages = []string{"EN", "fr", "en"}
	c.Rules = []string{" WikiVoyage", "", "dbpedia"}
	c.APIEndpoint = "http://localhost:8080/w/api.php/"
	c.LogLevel = "DEBUG"

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c.Lang != "fr" {
		t.Errorf("Lang = %v, want fr", c.Lang)
	}
	if len(c.Languages) != 2 || c.Languages[0] != "en" || c.Languages[1] != "fr" {
		t.Errorf("Languages = %v, want [en fr]", c.Languages)
	}
	if len(c.Rules) != 2 || c.Rules[0] != "wikivoyage" || c.Rules[1] != "dbpedia" {
		t.Errorf("Rules = %v, want [wikivoyage dbpedia]", c.Rules)
	}
	if c.APIEndpoint != "http://localhost:8080/w/api.php" {
		t.Errorf("APIEndpoint = %v", c.APIEndpoint)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", c.LogLevel)
	}
}
