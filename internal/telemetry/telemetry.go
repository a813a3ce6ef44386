package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const instrumentationName = "leadsmith"

// Config controls telemetry setup.
type Config struct {
	Enabled  bool
	Endpoint string
	Service  string
	Version  string
}

// Provider wires tracer/meter providers and exposes helpers.
type Provider struct {
	Enabled bool
	tracer  trace.Tracer
	meter   metric.Meter

	draftsCounter         metric.Int64Counter
	draftDuration         metric.Float64Histogram
	ruleHitsCounter       metric.Int64Counter
	batchLeadsCounter     metric.Int64Counter
	shutdownTraceProvider func(context.Context) error
	shutdownMeterProvider func(context.Context) error
}

// Noop returns a disabled provider.
func Noop() *Provider {
	p := &Provider{
		tracer: tracenoop.NewTracerProvider().Tracer(""),
		meter:  noop.NewMeterProvider().Meter(""),
	}
	p.initInstruments()
	return p
}

// NewProvider configures OTLP/HTTP exporters and providers. When disabled,
// returns a no-op provider.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (*Provider, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !cfg.Enabled {
		return Noop(), nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("telemetry enabled", zap.String("endpoint", cfg.Endpoint), zap.String("protocol", "otlp/http"))

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String("service.name", cfg.Service),
			attribute.String("service.version", cfg.Version),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	metricExp, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpoint(cfg.Endpoint), otlpmetrichttp.WithInsecure())
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)))
	otel.SetMeterProvider(mp)

	p := &Provider{
		Enabled:               true,
		tracer:                tp.Tracer(instrumentationName),
		meter:                 mp.Meter(instrumentationName),
		shutdownTraceProvider: tp.Shutdown,
		shutdownMeterProvider: mp.Shutdown,
	}
	p.initInstruments()
	return p, nil
}

func (p *Provider) initInstruments() {
	// Instruments are best-effort; a failed registration leaves a nil
	// instrument which the record helpers skip.
	p.draftsCounter, _ = p.meter.Int64Counter("leadsmith_drafts_total")
	p.draftDuration, _ = p.meter.Float64Histogram("leadsmith_draft_duration_ms")
	p.ruleHitsCounter, _ = p.meter.Int64Counter("leadsmith_rule_hits_total")
	p.batchLeadsCounter, _ = p.meter.Int64Counter("leadsmith_batch_leads_total")
}

// Tracer returns the tracer.
func (p *Provider) Tracer() trace.Tracer {
	if p == nil {
		return tracenoop.NewTracerProvider().Tracer("")
	}
	return p.tracer
}

// Meter returns the meter.
func (p *Provider) Meter() metric.Meter {
	if p == nil {
		return noop.NewMeterProvider().Meter("")
	}
	return p.meter
}

// Shutdown flushes providers.
func (p *Provider) Shutdown(ctx context.Context) {
	if p == nil {
		return
	}
	if p.shutdownTraceProvider != nil {
		_ = p.shutdownTraceProvider(ctx)
	}
	if p.shutdownMeterProvider != nil {
		_ = p.shutdownMeterProvider(ctx)
	}
}

// DraftMetrics are the labels and timings of one generated draft.
type DraftMetrics struct {
	Template string
	Tone     string
	Outcome  string
	BTWRule  string
	PSRule   string
	Duration float64 // milliseconds
}

// RecordDraft emits counters/histograms with safe labels.
func (p *Provider) RecordDraft(ctx context.Context, m DraftMetrics) {
	if p == nil {
		return
	}
	labels := metric.WithAttributes(SafeAttributes(map[string]any{
		"leadsmith.template": m.Template,
		"leadsmith.tone":     m.Tone,
		"leadsmith.outcome":  m.Outcome,
	})...)
	if p.draftsCounter != nil {
		p.draftsCounter.Add(ctx, 1, labels)
	}
	if p.draftDuration != nil {
		p.draftDuration.Record(ctx, m.Duration, labels)
	}
	if p.ruleHitsCounter == nil {
		return
	}
	for section, rule := range map[string]string{"btw": m.BTWRule, "ps": m.PSRule} {
		if rule == "" {
			continue
		}
		p.ruleHitsCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("leadsmith.section", section),
			attribute.String("leadsmith.rule", rule),
		))
	}
}

// RecordBatch counts leads processed by a batch run.
func (p *Provider) RecordBatch(ctx context.Context, template string, leads, failed int) {
	if p == nil || p.batchLeadsCounter == nil {
		return
	}
	p.batchLeadsCounter.Add(ctx, int64(leads-failed), metric.WithAttributes(
		attribute.String("leadsmith.template", template),
		attribute.String("leadsmith.outcome", "rendered"),
	))
	if failed > 0 {
		p.batchLeadsCounter.Add(ctx, int64(failed), metric.WithAttributes(
			attribute.String("leadsmith.template", template),
			attribute.String("leadsmith.outcome", "failed"),
		))
	}
}
