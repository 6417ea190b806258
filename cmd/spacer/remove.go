package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bethropolis/spacer/internal/engine"
	"github.com/bethropolis/spacer/internal/types"
)

var (
	removeFrom string
	removeTo   string
)

var removeCmd = &cobra.Command{
	Use:   "remove FILE",
	Short: "Remove a span and re-space the text around it",
	Long: `Remove the text between --from and --to (end exclusive) and join what
is left according to the spacing rules. A span over several lines leaves a
single line behind.`,
	Example: `  spacer remove notes.txt --from 1:8 --to 1:12
  spacer remove notes.txt --from 3:0 --to 4:$`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeFrom, "from", "", "Start position LINE:COL")
	removeCmd.Flags().StringVar(&removeTo, "to", "", "End position LINE:COL (COL may be $)")
	removeCmd.MarkFlagRequired("from")
	removeCmd.MarkFlagRequired("to")
}

func runRemove(cmd *cobra.Command, args []string) error {
	start, err := parsePosition(removeFrom, false)
	if err != nil {
		return err
	}
	end, err := parsePosition(removeTo, true)
	if err != nil {
		return err
	}
	span := types.TextSpan{Start: start, End: end}

	return runEdit(cmd, args[0], func(ctx context.Context, e *engine.Engine) engine.Result {
		return e.Remove(ctx, span)
	})
}
