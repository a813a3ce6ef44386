// Package batch drafts messages for many leads with pacing, bounded
// parallelism and per-lead error capture.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leadsmith/leadsmith/internal/activation"
	"github.com/leadsmith/leadsmith/internal/lead"
	"github.com/leadsmith/leadsmith/internal/provider"
	"github.com/leadsmith/leadsmith/internal/redact"
	"github.com/leadsmith/leadsmith/internal/telemetry"
	"github.com/leadsmith/leadsmith/internal/tone"
)

const (
	DefaultMaxLeads    = 200
	DefaultConcurrency = 1
	DefaultPace        = 500 * time.Millisecond
)

var (
	ErrNoLeads      = errors.New("batch: no leads to process")
	ErrTooManyLeads = errors.New("batch: too many leads")
)

// Options configures a Runner. Zero values fall back to the defaults above,
// except Pace where zero disables pacing.
type Options struct {
	MaxLeads     int
	Concurrency  int
	Pace         time.Duration
	PreviewLevel string // activation.PreviewNone | activation.PreviewRedacted

	Logger    *zap.Logger
	Telemetry *telemetry.Provider
	Emitter   *activation.Emitter
}

// Item is the outcome for one lead. Err is set when the draft failed or the
// run was cancelled before the lead was dispatched.
type Item struct {
	Index     int
	RequestID string
	Lead      lead.Lead
	Message   string
	Err       error
}

// Failed reports whether the lead has no usable message.
func (it Item) Failed() bool { return it.Err != nil }

// Result holds every item of a run in input order.
type Result struct {
	RunID  string
	Items  []Item
	Failed int
}

// Messages returns the successful items only.
func (r *Result) Messages() []Item {
	out := make([]Item, 0, len(r.Items))
	for _, it := range r.Items {
		if !it.Failed() {
			out = append(out, it)
		}
	}
	return out
}

// Progress is called after each lead completes with the number done so far.
type Progress func(done, total int)

// Runner drafts a batch of leads through a provider.
type Runner struct {
	provider provider.Provider
	opts     Options
	logger   *zap.Logger
}

// NewRunner returns a Runner that drafts through p.
func NewRunner(p provider.Provider, opts Options) *Runner {
	if opts.MaxLeads <= 0 {
		opts.MaxLeads = DefaultMaxLeads
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Pace < 0 {
		opts.Pace = 0
	}
	if opts.PreviewLevel == "" {
		opts.PreviewLevel = activation.PreviewNone
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{provider: p, opts: opts, logger: logger}
}

// Run drafts a message for every lead. Leads are dispatched in order, at
// most Concurrency at a time, with Pace between dispatches. A failing lead
// does not stop the run. When ctx is cancelled no further leads are
// dispatched, the remaining items carry ctx.Err() and Run returns it.
func (r *Runner) Run(ctx context.Context, leads []lead.Lead, templateID string, level tone.Level, progress Progress) (*Result, error) {
	if len(leads) == 0 {
		return nil, ErrNoLeads
	}
	if len(leads) > r.opts.MaxLeads {
		return nil, fmt.Errorf("%w: %d leads, limit is %d", ErrTooManyLeads, len(leads), r.opts.MaxLeads)
	}

	res := &Result{RunID: uuid.NewString(), Items: make([]Item, len(leads))}
	for i, l := range leads {
		res.Items[i] = Item{Index: i, Lead: l}
	}
	r.logger.Info("batch started",
		zap.String("run_id", res.RunID),
		zap.Int("leads", len(leads)),
		zap.String("template", templateID),
		zap.Stringer("tone", level),
		zap.Duration("pace", r.opts.Pace),
		zap.Int("concurrency", r.opts.Concurrency))

	var (
		mu   sync.Mutex
		done int
	)
	finish := func() {
		if progress == nil {
			return
		}
		mu.Lock()
		done++
		n := done
		mu.Unlock()
		progress(n, len(leads))
	}

	var g errgroup.Group
	g.SetLimit(r.opts.Concurrency)

	dispatched := 0
	var runErr error
dispatch:
	for i := range leads {
		if i > 0 && r.opts.Pace > 0 {
			timer := time.NewTimer(r.opts.Pace)
			select {
			case <-ctx.Done():
				timer.Stop()
				runErr = ctx.Err()
				break dispatch
			case <-timer.C:
			}
		}
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		item := &res.Items[i]
		g.Go(func() error {
			r.draft(ctx, res.RunID, item, templateID, level)
			finish()
			return nil
		})
		dispatched++
	}
	_ = g.Wait()

	for i := dispatched; i < len(res.Items); i++ {
		res.Items[i].Err = runErr
	}
	for _, it := range res.Items {
		if it.Failed() {
			res.Failed++
		}
	}
	r.opts.Telemetry.RecordBatch(ctx, templateID, len(leads), res.Failed)
	r.logger.Info("batch finished",
		zap.String("run_id", res.RunID),
		zap.Int("dispatched", dispatched),
		zap.Int("failed", res.Failed))
	return res, runErr
}

func (r *Runner) draft(ctx context.Context, runID string, item *Item, templateID string, level tone.Level) {
	start := time.Now()
	req := &provider.Request{
		ID:       uuid.NewString(),
		Lead:     item.Lead,
		Template: templateID,
		Tone:     level,
	}
	item.RequestID = req.ID

	resp, err := r.provider.Draft(ctx, req)
	if err == nil && (resp == nil || resp.Draft.Text == "") {
		err = errors.New("provider returned an empty draft")
	}
	elapsed := time.Since(start)

	var rules []activation.RuleHit
	var btwRule, psRule string
	if err != nil {
		item.Err = fmt.Errorf("lead %d: %w", item.Index+1, err)
		r.logger.Warn("draft failed",
			zap.Int("index", item.Index),
			zap.String("lead", redact.Name(item.Lead.Name)),
			redact.Field("first_trait", item.Lead.FirstTrait),
			zap.Error(err))
	} else {
		item.Message = resp.Draft.Text
		btwRule, psRule = resp.Draft.BTW.RuleID, resp.Draft.PS.RuleID
		rules = []activation.RuleHit{
			{Section: "btw", RuleID: btwRule, Category: string(resp.Draft.BTW.Category)},
			{Section: "ps", RuleID: psRule, Category: string(resp.Draft.PS.Category)},
		}
		r.logger.Debug("draft rendered",
			zap.Int("index", item.Index),
			zap.String("btw_rule", btwRule),
			zap.String("ps_rule", psRule),
			zap.Duration("took", elapsed))
	}

	outcome := activation.OutcomeRendered
	if err != nil {
		outcome = activation.OutcomeFailed
	}
	r.opts.Telemetry.RecordDraft(ctx, telemetry.DraftMetrics{
		Template: templateID,
		Tone:     level.String(),
		Outcome:  string(outcome),
		BTWRule:  btwRule,
		PSRule:   psRule,
		Duration: float64(elapsed) / float64(time.Millisecond),
	})
	if r.opts.Emitter == nil {
		return
	}
	ev := activation.BuildEvent(activation.BuildParams{
		RequestID:    req.ID,
		RunID:        runID,
		Index:        item.Index,
		Template:     templateID,
		Tone:         level.String(),
		Provider:     r.provider.Name(),
		Mode:         activation.ModeBatch,
		Rules:        rules,
		Message:      item.Message,
		Err:          err,
		Duration:     elapsed,
		PreviewLevel: r.opts.PreviewLevel,
	})
	activation.LogEvent(r.logger, ev)
	r.opts.Emitter.Emit(ctx, ev)
}
