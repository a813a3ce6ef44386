package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/leadsmith/leadsmith/internal/batch"
)

// Config holds leadsmith configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Batch     BatchConfig     `yaml:"batch"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Events    EventsConfig    `yaml:"events"`
}

type GeneratorConfig struct {
	Template  string `yaml:"template"`   // template id, e.g. "company"
	ToneLevel int    `yaml:"tone_level"` // 0, 2, 3 or 4
	Seed      uint64 `yaml:"seed"`       // 0 seeds from the clock
}

type BatchConfig struct {
	MaxLeads    int           `yaml:"max_leads"`
	Concurrency int           `yaml:"concurrency"`
	Pace        time.Duration `yaml:"pace"` // delay between leads; 0 disables
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // console | json
}

type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // OTLP/HTTP host:port
	Service  string `yaml:"service"`
	Version  string `yaml:"version"`
}

type EventsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Path      string `yaml:"path"`
	QueueSize int    `yaml:"queue_size"`
	Workers   int    `yaml:"workers"`
	Preview   string `yaml:"preview"`   // none | redacted
	MaxBytes  int64  `yaml:"max_bytes"` // rotate the event file past this size; 0 disables
}

// Load reads configuration from a YAML file on top of the defaults.
// If the file doesn't exist, it returns the default config and no error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Template:  "company",
			ToneLevel: 0,
		},
		Batch: BatchConfig{
			MaxLeads:    batch.DefaultMaxLeads,
			Concurrency: batch.DefaultConcurrency,
			Pace:        batch.DefaultPace,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Telemetry: TelemetryConfig{
			Service: "leadsmith",
		},
		Events: EventsConfig{
			Path:      "leadsmith-events.jsonl",
			QueueSize: 256,
			Workers:   1,
			Preview:   "none",
		},
	}
}

func applyDefaults(cfg *Config) {
	def := Default()
	if strings.TrimSpace(cfg.Generator.Template) == "" {
		cfg.Generator.Template = def.Generator.Template
	}
	if cfg.Batch.MaxLeads == 0 {
		cfg.Batch.MaxLeads = def.Batch.MaxLeads
	}
	if cfg.Batch.Concurrency == 0 {
		cfg.Batch.Concurrency = def.Batch.Concurrency
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = def.Export.Dir
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
	if cfg.Telemetry.Service == "" {
		cfg.Telemetry.Service = def.Telemetry.Service
	}
	if cfg.Events.Path == "" {
		cfg.Events.Path = def.Events.Path
	}
	if cfg.Events.QueueSize == 0 {
		cfg.Events.QueueSize = def.Events.QueueSize
	}
	if cfg.Events.Workers == 0 {
		cfg.Events.Workers = def.Events.Workers
	}
	if cfg.Events.Preview == "" {
		cfg.Events.Preview = def.Events.Preview
	}
}

// Environment variables read by LoadEnv.
const (
	EnvTemplate    = "LEADSMITH_TEMPLATE"
	EnvTone        = "LEADSMITH_TONE"
	EnvSeed        = "LEADSMITH_SEED"
	EnvLogLevel    = "LEADSMITH_LOG_LEVEL"
	EnvLogFormat   = "LEADSMITH_LOG_FORMAT"
	EnvPace        = "LEADSMITH_BATCH_PACE"
	EnvConcurrency = "LEADSMITH_BATCH_CONCURRENCY"
	EnvMaxLeads    = "LEADSMITH_MAX_LEADS"
	EnvEventsPath  = "LEADSMITH_EVENTS_PATH"
)

// LoadEnv loads dotenv files (".env" when none are given; missing files are
// ignored) and overlays LEADSMITH_* variables onto cfg. Variables already
// set in the process environment win over dotenv values.
func LoadEnv(cfg *Config, files ...string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v, ok := lookup(EnvTemplate); ok {
		cfg.Generator.Template = v
	}
	if v, ok := lookup(EnvTone); ok {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(v), "level"))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTone, err)
		}
		cfg.Generator.ToneLevel = n
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Generator.Seed = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.Logging.Format = v
	}
	if v, ok := lookup(EnvPace); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPace, err)
		}
		cfg.Batch.Pace = d
	}
	if v, ok := lookup(EnvConcurrency); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConcurrency, err)
		}
		cfg.Batch.Concurrency = n
	}
	if v, ok := lookup(EnvMaxLeads); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxLeads, err)
		}
		cfg.Batch.MaxLeads = n
	}
	if v, ok := lookup(EnvEventsPath); ok {
		cfg.Events.Path = v
		cfg.Events.Enabled = true
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
