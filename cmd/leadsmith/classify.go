package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leadsmith/leadsmith/internal/trait"
)

var listRules bool

// classifyCmd shows which rules a trait hits
var classifyCmd = &cobra.Command{
	Use:   "classify [trait]...",
	Short: "Show the rule, category and phrases a trait maps to",
	Long: `Runs each trait through the compliment and question tables and prints the
matching rule ids, categories and phrases. With --rules, lists every rule.

Examples:
  leadsmith classify "works at (ig/mindmusclesg)" "wears a puffer jacket"
  leadsmith classify --rules`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&listRules, "rules", false, "List every rule with its example trait")
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if listRules {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SECTION\tRULE\tCATEGORY\tEXAMPLE")
		for _, r := range trait.FirstRules() {
			fmt.Fprintf(w, "btw\t%s\t%s\t%s\n", r.ID, r.Category, r.Example)
		}
		for _, r := range trait.SecondRules() {
			fmt.Fprintf(w, "ps\t%s\t%s\t%s\n", r.ID, r.Category, r.Example)
		}
		return w.Flush()
	}
	if len(args) == 0 {
		return fmt.Errorf("give at least one trait, or --rules")
	}

	p := trait.NewPhraser(trait.FirstVariant())
	for i, raw := range args {
		if i > 0 {
			fmt.Fprintln(out)
		}
		t := trait.Parse(raw)
		btw := p.FirstTrait(raw)
		ps := p.SecondTrait(raw)
		fmt.Fprintf(out, "trait:     %s\n", raw)
		fmt.Fprintf(out, "normal:    %s\n", t.Text)
		if t.HasHandle() {
			fmt.Fprintf(out, "handle:    %s\n", t.Handle)
		}
		fmt.Fprintf(out, "btw rule:  %s (%s)\n", btw.RuleID, btw.Category)
		fmt.Fprintf(out, "btw:       %s\n", btw.Text)
		fmt.Fprintf(out, "ps rule:   %s (%s)\n", ps.RuleID, ps.Category)
		for _, v := range p.SecondTraitVariants(raw) {
			fmt.Fprintf(out, "ps:        %s?\n", v)
		}
	}
	return nil
}
