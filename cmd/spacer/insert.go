package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/bethropolis/spacer/internal/engine"
)

var (
	insertAt        string
	insertText      string
	insertClipboard bool

	readClipboard = clipboard.ReadAll
)

var insertCmd = &cobra.Command{
	Use:   "insert FILE",
	Short: "Insert text and re-space both of its edges",
	Example: `  spacer insert notes.txt --at 1:8 --text "text"
  spacer insert notes.txt --at 2:0 --clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: runInsert,
}

func init() {
	insertCmd.Flags().StringVar(&insertAt, "at", "", "Insert position LINE:COL")
	insertCmd.Flags().StringVar(&insertText, "text", "", "Text to insert")
	insertCmd.Flags().BoolVar(&insertClipboard, "clipboard", false, "Insert the system clipboard contents")
	insertCmd.MarkFlagRequired("at")
	insertCmd.MarkFlagsMutuallyExclusive("text", "clipboard")
}

func runInsert(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(insertAt, false)
	if err != nil {
		return err
	}

	text := insertText
	if insertClipboard {
		if text, err = readClipboard(); err != nil {
			return fmt.Errorf("reading clipboard: %w", err)
		}
	} else if !cmd.Flags().Changed("text") && text == "" {
		return errors.New("nothing to insert: pass --text or --clipboard")
	}

	return runEdit(cmd, args[0], func(ctx context.Context, e *engine.Engine) engine.Result {
		return e.Insert(ctx, pos, text)
	})
}
