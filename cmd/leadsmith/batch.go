package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadsmith/leadsmith/internal/activation"
	"github.com/leadsmith/leadsmith/internal/batch"
	"github.com/leadsmith/leadsmith/internal/export"
	"github.com/leadsmith/leadsmith/internal/lead"
)

var (
	batchOut         string
	batchCopy        bool
	batchConcurrency int
	batchPace        time.Duration
	batchMaxLeads    int
	batchQuiet       bool
)

// batchCmd drafts messages for many leads
var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Draft messages for a list of leads",
	Long: `Reads leads from a file (or stdin) and drafts one message per lead.

Leads are blocks separated by a blank line: the name on the first line and
the traits split by / on the second. Tab-separated rows (name, trait, trait)
are accepted too.

Examples:
  leadsmith batch leads.txt
  leadsmith batch leads.txt --tone 3 --out auto
  pbpaste | leadsmith batch - --pace 0 --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Write the export to a file; \"auto\" uses batch-messages-DATE.txt in the export dir")
	batchCmd.Flags().BoolVar(&batchCopy, "copy", false, "Copy all messages to the clipboard")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Leads drafted in parallel (default from config)")
	batchCmd.Flags().DurationVar(&batchPace, "pace", 0, "Delay between leads (default from config; 0s disables)")
	batchCmd.Flags().IntVar(&batchMaxLeads, "max-leads", 0, "Maximum leads per run (default from config)")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "Hide progress")
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func batchOptions(cmd *cobra.Command) batch.Options {
	opts := batch.Options{
		MaxLeads:     cfg.Batch.MaxLeads,
		Concurrency:  cfg.Batch.Concurrency,
		Pace:         cfg.Batch.Pace,
		PreviewLevel: cfg.Events.Preview,
		Logger:       logger,
		Telemetry:    tel,
	}
	if cmd.Flags().Changed("concurrency") {
		opts.Concurrency = batchConcurrency
	}
	if cmd.Flags().Changed("pace") {
		opts.Pace = batchPace
	}
	if cmd.Flags().Changed("max-leads") {
		opts.MaxLeads = batchMaxLeads
	}
	return opts
}

// newEmitter opens the JSONL event sink when events are enabled.
func newEmitter() (*activation.Emitter, error) {
	path := cfg.Events.Path
	enabled := cfg.Events.Enabled
	if eventsPath != "" {
		path, enabled = eventsPath, true
	}
	if !enabled {
		return nil, nil
	}
	sink, err := activation.NewRotatingFileSink(path, cfg.Events.MaxBytes)
	if err != nil {
		return nil, err
	}
	return activation.NewEmitter(activation.EmitterConfig{
		QueueSize: cfg.Events.QueueSize,
		Workers:   cfg.Events.Workers,
		Logger:    logger,
	}, []activation.Sink{sink}), nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	leads, err := lead.Parse(input)
	if err != nil {
		return err
	}
	tmpl, level, err := generationSettings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := batchOptions(cmd)
	em, err := newEmitter()
	if err != nil {
		return err
	}
	if em != nil {
		opts.Emitter = em
		defer em.Close(context.Background())
	}

	stderr := cmd.ErrOrStderr()
	progress := func(done, total int) {
		if !batchQuiet {
			fmt.Fprintf(stderr, "\rProcessing %d/%d...", done, total)
		}
	}

	runner := batch.NewRunner(newProvider(), opts)
	res, runErr := runner.Run(ctx, leads, tmpl.ID, level, progress)
	if res == nil {
		return runErr
	}
	if !batchQuiet {
		fmt.Fprintln(stderr)
	}
	for _, it := range res.Items {
		if it.Failed() {
			fmt.Fprintf(stderr, "Error: %s: %v\n", it.Lead.DisplayName(), it.Err)
		}
	}

	entries := export.FromResult(res)
	if err := writeBatchOutput(cmd, entries); err != nil {
		return err
	}
	if batchCopy && len(entries) > 0 {
		if err := export.CopyAll(entries); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Copied %d messages to clipboard.\n", len(entries))
	}

	logger.Info("Batch complete",
		zap.String("run_id", res.RunID),
		zap.Int("leads", len(res.Items)),
		zap.Int("failed", res.Failed))
	if runErr != nil {
		return fmt.Errorf("batch interrupted: %w", runErr)
	}
	if res.Failed > 0 {
		fmt.Fprintf(stderr, "%d of %d leads failed.\n", res.Failed, len(res.Items))
	}
	return nil
}

func writeBatchOutput(cmd *cobra.Command, entries []export.Entry) error {
	if len(entries) == 0 {
		return export.ErrNothingToExport
	}
	switch strings.TrimSpace(batchOut) {
	case "":
		return export.Write(cmd.OutOrStdout(), entries)
	case "auto":
		path, err := export.Save(cfg.Export.Dir, time.Now(), entries)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d messages to %s\n", len(entries), path)
		return nil
	default:
		f, err := os.Create(batchOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", batchOut, err)
		}
		if err := export.Write(f, entries); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d messages to %s\n", len(entries), batchOut)
		return nil
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
