package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leadsmith/leadsmith/internal/message"
	"github.com/leadsmith/leadsmith/internal/tone"
)

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "unknown template",
			mutate: func(c *Config) { c.Generator.Template = "nope" },
			want:   "generator.template",
		},
		{
			name:   "tone level one",
			mutate: func(c *Config) { c.Generator.ToneLevel = 1 },
			want:   "generator.tone_level",
		},
		{
			name:   "zero max leads",
			mutate: func(c *Config) { c.Batch.MaxLeads = 0 },
			want:   "batch.max_leads",
		},
		{
			name:   "zero concurrency",
			mutate: func(c *Config) { c.Batch.Concurrency = 0 },
			want:   "batch.concurrency",
		},
		{
			name:   "negative pace",
			mutate: func(c *Config) { c.Batch.Pace = -time.Second },
			want:   "batch.pace",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			want:   "logging.level",
		},
		{
			name:   "bad log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			want:   "logging.format",
		},
		{
			name:   "telemetry without endpoint",
			mutate: func(c *Config) { c.Telemetry.Enabled = true },
			want:   "endpoint",
		},
		{
			name: "telemetry endpoint with scheme",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Endpoint = "http://collector:4318"
			},
			want: "without scheme",
		},
		{
			name: "events without path",
			mutate: func(c *Config) {
				c.Events.Enabled = true
				c.Events.Path = " "
			},
			want: "path",
		},
		{
			name: "events bad preview",
			mutate: func(c *Config) {
				c.Events.Enabled = true
				c.Events.Preview = "full"
			},
			want: "events.preview",
		},
		{
			name: "events negative max bytes",
			mutate: func(c *Config) {
				c.Events.Enabled = true
				c.Events.MaxBytes = -1
			},
			want: "events.max_bytes",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateSentinels(t *testing.T) {
	cfg := Default()
	cfg.Generator.Template = "nope"
	if err := Validate(cfg); !errors.Is(err, message.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	cfg = Default()
	cfg.Generator.ToneLevel = 1
	if err := Validate(cfg); !errors.Is(err, tone.ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if err := Validate(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Batch.MaxLeads != 200 || cfg.Batch.Pace != 500*time.Millisecond || cfg.Generator.Template != "company" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leadsmith.yaml")
	data := `
generator:
  template: max-company
  tone_level: 4
  seed: 42
batch:
  pace: 0s
  concurrency: 3
logging:
  format: json
events:
  enabled: true
  path: ""
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.Template != "max-company" || cfg.Generator.ToneLevel != 4 || cfg.Generator.Seed != 42 {
		t.Fatalf("generator not loaded: %+v", cfg.Generator)
	}
	if cfg.Batch.Pace != 0 {
		t.Fatalf("explicit zero pace should disable pacing, got %s", cfg.Batch.Pace)
	}
	if cfg.Batch.Concurrency != 3 || cfg.Batch.MaxLeads != 200 {
		t.Fatalf("batch not merged: %+v", cfg.Batch)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("logging not merged: %+v", cfg.Logging)
	}
	if cfg.Events.Path != "leadsmith-events.jsonl" {
		t.Fatalf("empty events path should fall back to default, got %q", cfg.Events.Path)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("batch: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("LEADSMITH_TEMPLATE=bob-followup\nLEADSMITH_MAX_LEADS=50\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvTone, "level3")
	t.Setenv(EnvPace, "250ms")
	t.Setenv(EnvEventsPath, filepath.Join(dir, "events.jsonl"))
	// Real environment wins over the dotenv file.
	t.Setenv(EnvMaxLeads, "20")
	t.Cleanup(func() { os.Unsetenv(EnvTemplate) })

	cfg := Default()
	if err := LoadEnv(cfg, envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.Generator.Template != "bob-followup" {
		t.Fatalf("template from dotenv not applied: %q", cfg.Generator.Template)
	}
	if cfg.Generator.ToneLevel != 3 || cfg.Batch.Pace != 250*time.Millisecond || cfg.Batch.MaxLeads != 20 {
		t.Fatalf("env overlay not applied: %+v", cfg)
	}
	if !cfg.Events.Enabled {
		t.Fatalf("events path should enable events")
	}
}

func TestLoadEnvBadValue(t *testing.T) {
	t.Setenv(EnvConcurrency, "many")
	if err := LoadEnv(Default(), filepath.Join(t.TempDir(), "none.env")); err == nil {
		t.Fatalf("expected parse error")
	}
}
