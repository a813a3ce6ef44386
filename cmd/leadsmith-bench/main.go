// Command leadsmith-bench measures draft latency over the rule table examples.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/leadsmith/leadsmith/internal/config"
	"github.com/leadsmith/leadsmith/internal/lead"
	"github.com/leadsmith/leadsmith/internal/logging"
	"github.com/leadsmith/leadsmith/internal/message"
	"github.com/leadsmith/leadsmith/internal/tone"
	"github.com/leadsmith/leadsmith/internal/trait"
)

func main() {
	cfgPath := flag.String("config", "", "path to config yaml (optional)")
	n := flag.Int("n", 2000, "number of iterations")
	level := flag.String("tone", "4", "tone level: 0, 2, 3 or 4")
	seed := flag.Uint64("seed", 1, "variant seed")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	lvl, err := tone.ParseLevel(*level)
	if err != nil {
		logger.Fatal("parse tone", zap.Error(err))
	}
	tmpl, err := message.Lookup(cfg.Generator.Template)
	if err != nil {
		logger.Fatal("lookup template", zap.Error(err))
	}

	leads := syntheticLeads()
	asm := message.NewAssembler(trait.NewPhraser(trait.Seeded(*seed)))

	// Warmup
	for _, l := range leads {
		if asm.Render(l, tmpl.ID, lvl) == "" {
			logger.Fatal("warmup produced an empty draft", zap.String("first", l.FirstTrait))
		}
	}

	if *n <= 0 {
		*n = 1
	}

	durations := make([]time.Duration, 0, *n)
	for i := 0; i < *n; i++ {
		l := leads[i%len(leads)]
		start := time.Now()
		if asm.Render(l, tmpl.ID, lvl) == "" {
			logger.Fatal("empty draft", zap.String("first", l.FirstTrait))
		}
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}

	avg := float64(total.Microseconds()) / 1000.0 / float64(len(durations))
	p50 := float64(durations[len(durations)/2].Microseconds()) / 1000.0
	p95 := float64(durations[int(float64(len(durations))*0.95)].Microseconds()) / 1000.0

	fmt.Printf("bench: n=%d avg_ms=%.3f p50_ms=%.3f p95_ms=%.3f leads=%d template=%s tone=%s\n",
		len(durations),
		avg,
		p50,
		p95,
		len(leads),
		tmpl.ID,
		lvl,
	)
}

// syntheticLeads pairs every compliment example with a question example so
// each rule in both tables is exercised.
func syntheticLeads() []lead.Lead {
	first := trait.FirstRules()
	second := trait.SecondRules()
	size := len(first)
	if len(second) > size {
		size = len(second)
	}
	out := make([]lead.Lead, size)
	for i := range out {
		out[i] = lead.Lead{
			Name:        fmt.Sprintf("Lead%d", i+1),
			FirstTrait:  first[i%len(first)].Example,
			SecondTrait: second[i%len(second)].Example,
		}
	}
	return out
}
