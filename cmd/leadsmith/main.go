// Command leadsmith drafts personalised outreach messages from lead traits.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadsmith/leadsmith/internal/config"
	"github.com/leadsmith/leadsmith/internal/logging"
	"github.com/leadsmith/leadsmith/internal/message"
	"github.com/leadsmith/leadsmith/internal/provider"
	"github.com/leadsmith/leadsmith/internal/telemetry"
	"github.com/leadsmith/leadsmith/internal/tone"
	"github.com/leadsmith/leadsmith/internal/trait"
)

var (
	// Global flags
	verbose    bool
	configPath string
	envFiles   []string

	// Shared generation flags
	templateID string
	toneFlag   string
	seed       uint64
	eventsPath string

	cfg    *config.Config
	logger *zap.Logger
	tel    *telemetry.Provider
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "leadsmith",
	Short: "Draft personalised outreach messages from lead traits",
	Long: `leadsmith turns a lead's name and two observed traits into a ready-to-send
outreach draft: a compliment on the first trait, a fixed services pitch and
a PS question about the second trait, optionally in a Singlish register.

Examples:
  leadsmith generate --name Henry --first "works at (ig/mindmusclesg)" --second "travels with family"
  leadsmith batch leads.txt --tone 4 --out auto
  leadsmith classify "wears a jacket" "married with 2 kids"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := config.LoadEnv(loaded, envFiles...); err != nil {
			return fmt.Errorf("failed to load environment: %w", err)
		}
		if err := config.Validate(loaded); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}

		tel = telemetry.Noop()
		if cfg.Telemetry.Enabled {
			p, err := telemetry.NewProvider(cmd.Context(), telemetry.Config{
				Enabled:  true,
				Endpoint: cfg.Telemetry.Endpoint,
				Service:  cfg.Telemetry.Service,
				Version:  cfg.Telemetry.Version,
			}, logger)
			if err != nil {
				logger.Warn("Telemetry disabled", zap.Error(err))
			} else {
				tel = p
			}
		}
		logger.Debug("Config loaded",
			zap.String("path", configPath),
			zap.String("template", cfg.Generator.Template),
			zap.Int("tone_level", cfg.Generator.ToneLevel))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if tel != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			tel.Shutdown(ctx)
			cancel()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "leadsmith.yaml", "Config file (missing file means defaults)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Dotenv files to load (default .env)")

	for _, c := range []*cobra.Command{generateCmd, batchCmd} {
		c.Flags().StringVarP(&templateID, "template", "t", "", "Template id (see 'leadsmith templates')")
		c.Flags().StringVar(&toneFlag, "tone", "", "Tone level: 0, 2, 3 or 4")
		c.Flags().Uint64Var(&seed, "seed", 0, "Seed for phrase variants (0 uses config or the clock)")
		c.Flags().StringVar(&eventsPath, "events", "", "Append generation events to this JSONL file")
	}

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(templatesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generationSettings resolves template and tone from flags over config.
func generationSettings() (message.Template, tone.Level, error) {
	id := cfg.Generator.Template
	if templateID != "" {
		id = templateID
	}
	tmpl, err := message.Lookup(id)
	if err != nil {
		return message.Template{}, 0, err
	}

	level := tone.Level(cfg.Generator.ToneLevel)
	if toneFlag != "" {
		level, err = tone.ParseLevel(toneFlag)
		if err != nil {
			return message.Template{}, 0, err
		}
	}
	return tmpl, level, nil
}

// newProvider builds the template provider with the configured selector.
func newProvider() provider.Provider {
	s := cfg.Generator.Seed
	if seed != 0 {
		s = seed
	}
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	asm := message.NewAssembler(trait.NewPhraser(trait.Seeded(s)))
	return provider.NewTemplate(asm, tel.Tracer())
}
