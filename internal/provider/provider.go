package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/leadsmith/leadsmith/internal/lead"
	"github.com/leadsmith/leadsmith/internal/message"
	"github.com/leadsmith/leadsmith/internal/tone"
)

// Request asks for one draft.
type Request struct {
	ID       string
	Lead     lead.Lead
	Template string
	Tone     tone.Level
}

// Response carries the rendered draft.
type Response struct {
	RequestID string
	Provider  string
	Draft     message.Draft
}

// Provider is the interface for anything that can draft a message for a lead.
type Provider interface {
	Name() string
	Draft(ctx context.Context, req *Request) (*Response, error)
}

// templateProvider drafts messages locally with the rule tables. It never
// fails for a well-formed request.
type templateProvider struct {
	asm    *message.Assembler
	tracer trace.Tracer
}

// NewTemplate returns the deterministic provider backed by asm. A nil
// tracer disables spans.
func NewTemplate(asm *message.Assembler, tracer trace.Tracer) Provider {
	if asm == nil {
		asm = message.NewAssembler(nil)
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &templateProvider{asm: asm, tracer: tracer}
}

func (p *templateProvider) Name() string { return "template" }

func (p *templateProvider) Draft(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("provider: nil request")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := p.tracer.Start(ctx, "leadsmith.draft")
	defer span.End()

	d := p.asm.Compose(req.Lead, req.Template, req.Tone)
	span.SetAttributes(
		attribute.String("leadsmith.template", d.Template.ID),
		attribute.String("leadsmith.tone", d.Level.String()),
		attribute.String("leadsmith.btw_rule", d.BTW.RuleID),
		attribute.String("leadsmith.ps_rule", d.PS.RuleID),
	)
	return &Response{RequestID: ensureID(req.ID), Provider: p.Name(), Draft: d}, nil
}

func ensureID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
