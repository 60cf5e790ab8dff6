package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	zero := 0
	three := 3

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Infer:        []string{"dbpedia", "wikivoyage"},
				Lang:         "fr",
				Languages:    []string{"fr", "de"},
				APIEndpoint:  "http://localhost/w/api.php",
				UserAgent:    "bot/2.0",
				RateInterval: "250ms",
				HTTPTimeout:  "3s",
				MaxRetries:   &three,
				CacheDir:     "/tmp/cache",
				LogLevel:     "debug",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Rules:        []string{"dbpedia", "wikivoyage"},
				Lang:         "fr",
				Languages:    []string{"fr", "de"},
				APIEndpoint:  "http://localhost/w/api.php",
				UserAgent:    "bot/2.0",
				RateInterval: 250 * time.Millisecond,
				HTTPTimeout:  3 * time.Second,
				MaxRetries:   3,
				CacheDir:     "/tmp/cache",
				LogLevel:     "debug",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Lang:  "de",
				Infer: []string{"wikivoyage"},
			},
			changed: map[string]bool{"lang": true},
			initial: Config{Lang: "ru"},
			expected: Config{
				Lang:  "ru", // unchanged because flag was set
				Rules: []string{"wikivoyage"},
			},
		},
		{
			name:       "explicit zero retries",
			fileConfig: FileConfig{MaxRetries: &zero},
			changed:    map[string]bool{},
			initial:    Config{MaxRetries: 2},
			expected:   Config{MaxRetries: 0},
		},
		{
			name:       "zero rate interval disables pacing",
			fileConfig: FileConfig{RateInterval: "0s"},
			changed:    map[string]bool{},
			initial:    Config{RateInterval: time.Second},
			expected:   Config{RateInterval: 0},
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{HTTPTimeout: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			assertConfigEqual(t, cfg, tt.expected)
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
infer = ["dbpedia", "wikipedia-language-expand"]
lang = "fr"
languages = ["fr", "en", "de"]
api_endpoint = "https://{site}/w/api.php"
rate_interval = "200ms"
max_retries = 1
cache_dir = "/var/cache/urlinfer"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if strings.Join(fc.Infer, ",") != "dbpedia,wikipedia-language-expand" {
		t.Errorf("Infer = %v", fc.Infer)
	}
	if fc.Lang != "fr" {
		t.Errorf("Lang = %v, want fr", fc.Lang)
	}
	if len(fc.Languages) != 3 {
		t.Errorf("Languages = %v, want 3 entries", fc.Languages)
	}
	if fc.APIEndpoint != "https://{site}/w/api.php" {
		t.Errorf("APIEndpoint = %v", fc.APIEndpoint)
	}
	if fc.RateInterval != "200ms" {
		t.Errorf("RateInterval = %v, want 200ms", fc.RateInterval)
	}
	if fc.MaxRetries == nil || *fc.MaxRetries != 1 {
		t.Errorf("MaxRetries = %v, want 1", fc.MaxRetries)
	}
	if fc.CacheDir != "/var/cache/urlinfer" {
		t.Errorf("CacheDir = %v", fc.CacheDir)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
lang = "en"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".urlinfer") {
		t.Errorf("DefaultConfigPath() = %v, should contain .urlinfer", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}

func assertConfigEqual(t *testing.T, got, want Config) {
	t.Helper()
	if strings.Join(got.Rules, ",") != strings.Join(want.Rules, ",") {
		t.Errorf("Rules = %v, want %v", got.Rules, want.Rules)
	}
	if got.Lang != want.Lang {
		t.Errorf("Lang = %v, want %v", got.Lang, want.Lang)
	}
	if strings.Join(got.Languages, ",") != strings.Join(want.Languages, ",") {
		t.Errorf("Languages = %v, want %v", got.Languages, want.Languages)
	}
	if got.APIEndpoint != want.APIEndpoint {
		t.Errorf("APIEndpoint = %v, want %v", got.APIEndpoint, want.APIEndpoint)
	}
	if got.UserAgent != want.UserAgent {
		t.Errorf("UserAgent = %v, want %v", got.UserAgent, want.UserAgent)
	}
	if got.RateInterval != want.RateInterval {
		t.Errorf("RateInterval = %v, want %v", got.RateInterval, want.RateInterval)
	}
	if got.HTTPTimeout != want.HTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", got.HTTPTimeout, want.HTTPTimeout)
	}
	if got.MaxRetries != want.MaxRetries {
		t.Errorf("MaxRetries = %v, want %v", got.MaxRetries, want.MaxRetries)
	}
	if got.CacheDir != want.CacheDir {
		t.Errorf("CacheDir = %v, want %v", got.CacheDir, want.CacheDir)
	}
	if got.LogLevel != want.LogLevel {
		t.Errorf("LogLevel = %v, want %v", got.LogLevel, want.LogLevel)
	}
}
