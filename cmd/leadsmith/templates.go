package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leadsmith/leadsmith/internal/message"
)

// templatesCmd lists the message templates
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List message templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSENDER\tSHAPE\tDESCRIPTION")
	for _, t := range message.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Sender, t.Shape, t.Description)
	}
	return w.Flush()
}
