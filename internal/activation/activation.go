package activation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leadsmith/leadsmith/internal/redact"
)

// Outcome is the result of one generation call.
type Outcome string

const (
	OutcomeRendered Outcome = "rendered"
	OutcomeFailed   Outcome = "failed"
)

const (
	ModeSingle = "single"
	ModeBatch  = "batch"
)

// Preview levels control how much of the draft an event carries.
const (
	PreviewNone     = "none"
	PreviewRedacted = "redacted"
)

// Meta describes how a draft was requested.
type Meta struct {
	Template string `json:"template"`
	Tone     string `json:"tone"`
	Provider string `json:"provider"`
	Mode     string `json:"mode"`
}

// RuleHit records which table row produced a phrase.
type RuleHit struct {
	Section  string `json:"section"`
	RuleID   string `json:"rule_id"`
	Category string `json:"category"`
}

// Preview is a redacted excerpt of the draft.
type Preview struct {
	Message string `json:"message"`
}

// Timing holds durations in milliseconds.
type Timing struct {
	Total float64 `json:"total"`
}

// Event is the audit record for one generation call. It never carries the
// lead's name or raw traits.
type Event struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	RunID     string    `json:"run_id,omitempty"`
	Index     int       `json:"index,omitempty"`
	Meta      Meta      `json:"meta"`
	Outcome   Outcome   `json:"outcome"`
	Error     string    `json:"error,omitempty"`
	Rules     []RuleHit `json:"rules,omitempty"`
	Preview   *Preview  `json:"preview,omitempty"`
	TimingMs  Timing    `json:"timing_ms"`
}

// BuildParams collects inputs needed to assemble an event.
type BuildParams struct {
	RequestID    string
	RunID        string
	Index        int
	Template     string
	Tone         string
	Provider     string
	Mode         string
	Rules        []RuleHit
	Message      string
	Err          error
	Duration     time.Duration
	PreviewLevel string
}

// BuildEvent assembles an event from a finished generation call.
func BuildEvent(p BuildParams) *Event {
	mode := strings.TrimSpace(strings.ToLower(p.Mode))
	if mode == "" {
		mode = ModeSingle
	}
	ev := &Event{
		Version:   "1",
		Timestamp: time.Now().UTC(),
		RequestID: ensureRequestID(p.RequestID),
		RunID:     p.RunID,
		Index:     p.Index,
		Meta: Meta{
			Template: p.Template,
			Tone:     p.Tone,
			Provider: p.Provider,
			Mode:     mode,
		},
		Outcome:  OutcomeRendered,
		Rules:    cloneRules(p.Rules),
		TimingMs: Timing{Total: durationMillis(p.Duration)},
	}
	if p.Err != nil {
		ev.Outcome = OutcomeFailed
		ev.Error = redact.String(p.Err.Error())
	}
	if p.PreviewLevel == PreviewRedacted && p.Message != "" {
		ev.Preview = &Preview{Message: truncate(redact.String(p.Message), 280)}
	}
	return ev
}

// LogEvent writes the event as one debug line.
func LogEvent(logger *zap.Logger, ev *Event) {
	if logger == nil || ev == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Warn("activation: failed to marshal event", zap.Error(err))
		return
	}
	logger.Debug("activation", zap.ByteString("event", data))
}

func ensureRequestID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func cloneRules(in []RuleHit) []RuleHit {
	if len(in) == 0 {
		return nil
	}
	out := make([]RuleHit, len(in))
	copy(out, in)
	return out
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
