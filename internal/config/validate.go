package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leadsmith/leadsmith/internal/message"
	"github.com/leadsmith/leadsmith/internal/tone"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := validateGeneratorConfig(cfg.Generator); err != nil {
		return err
	}
	if err := validateBatchConfig(cfg.Batch); err != nil {
		return err
	}
	if err := validateLoggingConfig(cfg.Logging); err != nil {
		return err
	}
	if err := validateTelemetryConfig(cfg.Telemetry); err != nil {
		return err
	}
	if err := validateEventsConfig(cfg.Events); err != nil {
		return err
	}
	return nil
}

func validateGeneratorConfig(g GeneratorConfig) error {
	if _, err := message.Lookup(g.Template); err != nil {
		return fmt.Errorf("generator.template: %w", err)
	}
	if !tone.Level(g.ToneLevel).Valid() {
		return fmt.Errorf("generator.tone_level: %w: %d (use 0, 2, 3 or 4)", tone.ErrUnknownLevel, g.ToneLevel)
	}
	return nil
}

func validateBatchConfig(b BatchConfig) error {
	if b.MaxLeads < 1 {
		return fmt.Errorf("batch.max_leads must be positive, got %d", b.MaxLeads)
	}
	if b.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1, got %d", b.Concurrency)
	}
	if b.Pace < 0 {
		return fmt.Errorf("batch.pace must not be negative, got %s", b.Pace)
	}
	return nil
}

func validateLoggingConfig(l LoggingConfig) error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", l.Format)
	}
	return nil
}

func validateTelemetryConfig(t TelemetryConfig) error {
	if !t.Enabled {
		return nil
	}
	if strings.TrimSpace(t.Endpoint) == "" {
		return errors.New("telemetry enabled but endpoint is empty")
	}
	if strings.Contains(t.Endpoint, "://") {
		return fmt.Errorf("telemetry.endpoint must be host:port without scheme, got %q", t.Endpoint)
	}
	return nil
}

func validateEventsConfig(e EventsConfig) error {
	if !e.Enabled {
		return nil
	}
	if strings.TrimSpace(e.Path) == "" {
		return errors.New("events enabled but path is empty")
	}
	if e.QueueSize < 1 || e.Workers < 1 {
		return fmt.Errorf("events.queue_size and events.workers must be positive, got %d and %d", e.QueueSize, e.Workers)
	}
	if e.MaxBytes < 0 {
		return fmt.Errorf("events.max_bytes must not be negative, got %d", e.MaxBytes)
	}
	switch e.Preview {
	case "none", "redacted":
	default:
		return fmt.Errorf("events.preview must be none or redacted, got %q", e.Preview)
	}
	return nil
}
