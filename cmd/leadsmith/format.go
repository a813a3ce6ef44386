package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leadsmith/leadsmith/internal/lead"
)

// formatCmd rewrites pasted lead rows as batch blocks
var formatCmd = &cobra.Command{
	Use:   "format [file|-]",
	Short: "Convert tab-separated lead rows to the batch format",
	Long: `Reads rows of "name<TAB>trait<TAB>trait" (as copied from a spreadsheet) and
prints them as blank-line separated blocks ready for 'leadsmith batch'.

Example:
  pbpaste | leadsmith format - > leads.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := lead.Format(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
