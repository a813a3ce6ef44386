package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/leadsmith/leadsmith/internal/lead"
	"github.com/leadsmith/leadsmith/internal/message"
	"github.com/leadsmith/leadsmith/internal/tone"
	"github.com/leadsmith/leadsmith/internal/trait"
)

func TestTemplateProviderDrafts(t *testing.T) {
	p := NewTemplate(message.NewAssembler(trait.NewPhraser(trait.FirstVariant())), nil)
	resp, err := p.Draft(context.Background(), &Request{
		Lead:     lead.Lead{Name: "Henry", FirstTrait: "stylish jacket"},
		Template: "max-company",
		Tone:     tone.Light,
	})
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if resp.RequestID == "" || resp.Provider != "template" {
		t.Fatalf("unexpected response meta: %+v", resp)
	}
	if !strings.HasPrefix(resp.Draft.Text, "Hey Henry, Max here btw,") {
		t.Fatalf("unexpected text: %s", resp.Draft.Text)
	}
	if !strings.Contains(resp.Draft.Text, "fashion game strong lah") {
		t.Fatalf("expected localized BTW: %s", resp.Draft.Text)
	}
	if resp.Draft.BTW.RuleID != "btw_jacket" {
		t.Fatalf("unexpected rule %s", resp.Draft.BTW.RuleID)
	}
}

func TestTemplateProviderHonoursContext(t *testing.T) {
	p := NewTemplate(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Draft(ctx, &Request{Lead: lead.Lead{Name: "A"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := p.Draft(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil request")
	}
}

func TestFakeProvider(t *testing.T) {
	boom := errors.New("boom")
	f := &FakeProvider{ResponseText: "hi", Error: boom, FailOn: "Bad"}

	resp, err := f.Draft(context.Background(), &Request{ID: "r1", Lead: lead.Lead{Name: "Good"}})
	if err != nil || resp.Draft.Text != "hi" || resp.RequestID != "r1" {
		t.Fatalf("unexpected result: %+v, %v", resp, err)
	}
	if _, err := f.Draft(context.Background(), &Request{Lead: lead.Lead{Name: "Bad"}}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if f.Calls() != 2 {
		t.Fatalf("expected 2 calls, got %d", f.Calls())
	}
}
