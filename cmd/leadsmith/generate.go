package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadsmith/leadsmith/internal/activation"
	"github.com/leadsmith/leadsmith/internal/export"
	"github.com/leadsmith/leadsmith/internal/lead"
	"github.com/leadsmith/leadsmith/internal/provider"
	"github.com/leadsmith/leadsmith/internal/redact"
	"github.com/leadsmith/leadsmith/internal/telemetry"
)

var (
	leadName    string
	firstTrait  string
	secondTrait string
	rawLead     string
	pretty      bool
	copyOutput  bool
)

// generateCmd drafts one message
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft a message for a single lead",
	Long: `Drafts one outreach message. Give the lead either with --name/--first/--second
or pasted as --raw "Name\ntrait / trait".

Examples:
  leadsmith generate --name Henry --first "works at (ig/mindmusclesg)" --second "travels with family"
  leadsmith generate --raw "Ava
into bouldering / wears a denim jacket" --tone 4 --pretty`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&leadName, "name", "n", "", "Lead name (default \"there\")")
	generateCmd.Flags().StringVar(&firstTrait, "first", "", "First trait, used for the compliment")
	generateCmd.Flags().StringVar(&secondTrait, "second", "", "Second trait, used for the PS question")
	generateCmd.Flags().StringVar(&rawLead, "raw", "", "Pasted lead: name on line 1, traits split by / on line 2")
	generateCmd.Flags().BoolVar(&pretty, "pretty", false, "Render the draft in a box")
	generateCmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the draft to the clipboard")
}

func singleLead() (lead.Lead, error) {
	if rawLead != "" {
		return lead.ParseSingle(rawLead)
	}
	if leadName == "" && firstTrait == "" && secondTrait == "" {
		return lead.Lead{}, errors.New("give --name/--first/--second or --raw")
	}
	return lead.Lead{Name: leadName, FirstTrait: firstTrait, SecondTrait: secondTrait}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	l, err := singleLead()
	if err != nil {
		return err
	}
	tmpl, level, err := generationSettings()
	if err != nil {
		return err
	}

	ctx := cmdContext(cmd)
	p := newProvider()
	start := time.Now()
	resp, err := p.Draft(ctx, &provider.Request{Lead: l, Template: tmpl.ID, Tone: level})
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("draft failed: %w", err)
	}
	d := resp.Draft

	tel.RecordDraft(ctx, telemetry.DraftMetrics{
		Template: tmpl.ID,
		Tone:     level.String(),
		Outcome:  string(activation.OutcomeRendered),
		BTWRule:  d.BTW.RuleID,
		PSRule:   d.PS.RuleID,
		Duration: float64(elapsed) / float64(time.Millisecond),
	})
	ev := activation.BuildEvent(activation.BuildParams{
		RequestID: resp.RequestID,
		Template:  tmpl.ID,
		Tone:      level.String(),
		Provider:  resp.Provider,
		Mode:      activation.ModeSingle,
		Rules: []activation.RuleHit{
			{Section: "btw", RuleID: d.BTW.RuleID, Category: string(d.BTW.Category)},
			{Section: "ps", RuleID: d.PS.RuleID, Category: string(d.PS.Category)},
		},
		Message:      d.Text,
		Duration:     elapsed,
		PreviewLevel: cfg.Events.Preview,
	})
	activation.LogEvent(logger, ev)
	em, err := newEmitter()
	if err != nil {
		return err
	}
	if em != nil {
		em.Emit(ctx, ev)
		em.Close(context.Background())
	}
	logger.Info("Draft rendered",
		zap.String("lead", redact.Name(l.Name)),
		redact.Field("first_trait", l.FirstTrait),
		redact.Field("second_trait", l.Second()),
		zap.String("template", tmpl.ID),
		zap.Stringer("tone", level),
		zap.String("btw_rule", d.BTW.RuleID),
		zap.String("ps_rule", d.PS.RuleID))

	out := cmd.OutOrStdout()
	if pretty {
		fmt.Fprintln(out, renderPretty(l.DisplayName(), tmpl, level, d.Text))
	} else {
		fmt.Fprintln(out, d.Text)
	}

	if copyOutput {
		if err := export.Copy(d.Text); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}
	return nil
}
