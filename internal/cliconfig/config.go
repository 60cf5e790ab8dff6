package cliconfig

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	httpAdapter "github.com/jopela/urlinfer/internal/adapters/http"
	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/pkg/infer"
	"github.com/jopela/urlinfer/pkg/resolver"
)

// DefaultLang is the language assigned to DBpedia hosts without one.
const DefaultLang = "en"

// Config holds CLI configuration for urlinfer.
type Config struct {
	Rules     []string `validate:"dive,rulename"`
	Lang      string   `validate:"required,langcode"`
	Languages []string `validate:"required,min=1,dive,langcode"`

	APIEndpoint  string        `validate:"omitempty,startswith=http"`
	UserAgent    string        `validate:"required"`
	RateInterval time.Duration `validate:"gte=0"`
	HTTPTimeout  time.Duration `validate:"gt=0"`
	MaxRetries   int           `validate:"gte=0,lte=10"`
	CacheDir     string

	LogLevel string `validate:"oneof=debug info warn error"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Lang:         DefaultLang,
		Languages:    append([]string(nil), infer.DefaultLanguages...),
		UserAgent:    httpAdapter.DefaultUserAgent,
		RateInterval: resolver.DefaultInterval,
		HTTPTimeout:  10 * time.Second,
		MaxRetries:   2,
		LogLevel:     "info",
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate

	langCodeRe = regexp.MustCompile(`^[a-z]{2,3}(-[a-z0-9]+)*$|^simple$`)
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("rulename", func(fl validator.FieldLevel) bool {
			_, err := infer.ParseName(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
			return langCodeRe.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate normalizes the configuration and checks it for errors.
func (c *Config) Validate() error {
	c.Lang = strings.ToLower(strings.TrimSpace(c.Lang))
	c.Languages = infer.NormalizeLanguages(c.Languages)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	rules := make([]string, 0, len(c.Rules))
	for _, r := range c.Rules {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			rules = append(rules, r)
		}
	}
	c.Rules = rules

	// Ensure no trailing slash
	c.APIEndpoint = strings.TrimRight(c.APIEndpoint, "/")

	if err := configValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list value if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setStringsFromString splits a comma-separated list.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	var list []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	s.setStrings(flag, list, dst)
}

// setIntPtr sets an int value from a pointer if not nil and flag not changed.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
