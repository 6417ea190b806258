package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bethropolis/spacer/internal/spacing"
)

var explainRemoved string

var explainCmd = &cobra.Command{
	Use:   "explain BEFORE AFTER",
	Short: "Show how two fragments would be joined, and why",
	Example: `  spacer explain "this is " ", I want"
  spacer explain "is" "I" --removed " text "`,
	Args: cobra.ExactArgs(2),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainRemoved, "removed", "", "Text deleted between the fragments")
}

func runExplain(cmd *cobra.Command, args []string) error {
	rules := currentConfig().RuleSet()

	var removed *string
	if explainRemoved != "" {
		removed = &explainRemoved
	}
	d := spacing.Normalize(args[0], args[1], removed, nil, rules)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "before\t%q\n", d.TrimmedBefore)
	fmt.Fprintf(w, "after\t%q\n", d.TrimmedAfter)
	fmt.Fprintf(w, "space\t%t\n", d.NeedsSpace)
	fmt.Fprintf(w, "reason\t%s\n", d.Reason)
	if d.Reason != spacing.ReasonEmptySide {
		b := rules.Join(d.TrimmedBefore, d.TrimmedAfter)
		fmt.Fprintf(w, "boundary\t%q|%q (%s, %s)\n", b.Left, b.Right, b.LeftVerdict, b.RightVerdict)
	}
	fmt.Fprintf(w, "result\t%q\n", d.Joined())
	return nil
}
