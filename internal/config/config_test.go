package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/csheth/ideascout/internal/ideas"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"IDEASCOUT_ENDPOINT", "IDEASCOUT_TIMEOUT", "IDEASCOUT_LOG_FILE", "IDEASCOUT_CONFIG", "IDEASCOUT_INDUSTRY", "IDEASCOUT_TECHNOLOGY_FOCUS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ideascout.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != ideas.DefaultEndpoint {
		t.Fatalf("unexpected endpoint: %s", cfg.Endpoint)
	}
	if cfg.Timeout != ideas.DefaultTimeout {
		t.Fatalf("unexpected timeout: %s", cfg.Timeout)
	}
	if cfg.LogFile != "" || cfg.Industry != "" || cfg.TechnologyFocus != "" {
		t.Fatalf("unexpected optional values: %#v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, strings.Join([]string{
		"endpoint: http://file.local/generate-ideas",
		"timeout: 45s",
		"industry: Finance",
		"technology_focus: Blockchain",
	}, "\n"))

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://file.local/generate-ideas" || cfg.Timeout != 45*time.Second {
		t.Fatalf("file values not applied: %#v", cfg)
	}
	if cfg.Industry != "Finance" || cfg.TechnologyFocus != "Blockchain" {
		t.Fatalf("file prefill not applied: %#v", cfg)
	}

	t.Setenv("IDEASCOUT_ENDPOINT", "http://env.local/generate-ideas")
	t.Setenv("IDEASCOUT_TIMEOUT", "30s")
	cfg, err = Load(path, Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://env.local/generate-ideas" || cfg.Timeout != 30*time.Second {
		t.Fatalf("env should beat file: %#v", cfg)
	}

	cfg, err = Load(path, Overrides{Endpoint: "http://flag.local/generate-ideas", Timeout: 10 * time.Second, Industry: "Education"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://flag.local/generate-ideas" || cfg.Timeout != 10*time.Second {
		t.Fatalf("flags should beat env: %#v", cfg)
	}
	if cfg.Industry != "Education" || cfg.TechnologyFocus != "Blockchain" {
		t.Fatalf("unexpected prefill: %#v", cfg)
	}
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "endpoint: http://envfile.local/generate-ideas\n")
	t.Setenv("IDEASCOUT_CONFIG", path)

	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://envfile.local/generate-ideas" {
		t.Fatalf("config path from env ignored: %#v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Overrides{}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Endpoint: "https://example.com/generate-ideas", Timeout: time.Second}, false},
		{"empty endpoint", Config{Timeout: time.Second}, true},
		{"bad scheme", Config{Endpoint: "ftp://example.com", Timeout: time.Second}, true},
		{"missing host", Config{Endpoint: "http:///generate-ideas", Timeout: time.Second}, true},
		{"zero timeout", Config{Endpoint: "https://example.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
