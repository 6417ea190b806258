package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/spacer/internal/buffer"
	"github.com/bethropolis/spacer/internal/engine"
	"github.com/bethropolis/spacer/internal/event"
	"github.com/bethropolis/spacer/internal/logger"
	"github.com/bethropolis/spacer/internal/types"
)

// parsePosition parses LINE:COL. With allowEOL, COL may be "$".
func parsePosition(s string, allowEOL bool) (types.TextPosition, error) {
	lineStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return types.TextPosition{}, fmt.Errorf("invalid position %q: want LINE:COL", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return types.TextPosition{}, fmt.Errorf("invalid line in position %q: %w", s, err)
	}
	col := types.EndOfLine
	if colStr != "$" {
		if col, err = strconv.Atoi(colStr); err != nil {
			return types.TextPosition{}, fmt.Errorf("invalid column in position %q: %w", s, err)
		}
	}
	pos := types.TextPosition{Line: line, Col: col}
	if err := pos.Validate(allowEOL); err != nil {
		return types.TextPosition{}, fmt.Errorf("position %q: %w", s, err)
	}
	return pos, nil
}

// operation runs one engine call.
type operation func(ctx context.Context, e *engine.Engine) engine.Result

// runEdit loads path, applies op, reports the change and writes the file
// back unless this is a dry run.
func runEdit(cmd *cobra.Command, path string, op operation) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	buf := buffer.NewSliceBuffer()
	if err := buf.Load(path); err != nil {
		return err
	}

	events := event.NewManager()
	rep := newReporter(cmd.OutOrStdout(), colorMode)
	events.Subscribe(event.TypeLinesReplaced, rep.linesReplaced)

	eng := engine.New(buf, currentConfig().RuleSet(), engine.WithEventManager(events))
	if res := op(commandContext(cmd), eng); !res.Success {
		return res.Err
	}

	if !buf.IsModified() {
		rep.unchanged(path)
		return nil
	}
	if dryRun {
		logger.Infof("dry run, not writing %s", path)
		return nil
	}
	if err := buf.Save(path); err != nil {
		return err
	}
	logger.Debugf("wrote %s", path)
	return nil
}
