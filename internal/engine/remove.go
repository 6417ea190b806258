package engine

import (
	"context"

	"github.com/bethropolis/spacer/internal/extract"
	"github.com/bethropolis/spacer/internal/logger"
	"github.com/bethropolis/spacer/internal/spacing"
	"github.com/bethropolis/spacer/internal/types"
)

// Remove deletes the text covered by span and re-spaces what remains, so
// the surrounding words end up separated by exactly the spacing the rules
// call for. A multi-line span collapses into a single line.
//
// An empty span succeeds without touching the buffer.
func (e *Engine) Remove(ctx context.Context, span types.TextSpan) Result {
	return e.finish("remove", e.remove(ctx, span))
}

// RemoveAt is Remove over plain integers: it reports success and, on
// failure, the error text. endCol may be types.EndOfLine.
func (e *Engine) RemoveAt(ctx context.Context, startLine, startCol, endLine, endCol int) (bool, string) {
	r := e.Remove(ctx, types.TextSpan{
		Start: types.TextPosition{Line: startLine, Col: startCol},
		End:   types.TextPosition{Line: endLine, Col: endCol},
	})
	return r.Success, r.ErrorString()
}

func (e *Engine) remove(ctx context.Context, span types.TextSpan) *types.Error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	if err := asError(span.Validate()); err != nil {
		return err
	}
	if err := checkContext(ctx, "remove"); err != nil {
		return err
	}

	snap, rerr := e.read(span.Start.Line, span.End.Line)
	if rerr != nil {
		return rerr
	}

	// Address the span inside the fetched window, where line 1 is span.Start.Line.
	local, err := extract.Resolve(snap.lines, span.Shift(1-span.Start.Line))
	if err != nil {
		return asError(err)
	}
	if local.IsEmpty() {
		logger.DebugTagf(logTag, "remove %s: empty span, nothing to do", span)
		return nil
	}

	removed, err := extract.Extract(snap.lines, local)
	if err != nil {
		return asError(err)
	}
	if err := e.checkSize("removed text", removed); err != nil {
		return err
	}
	before, err := extract.LinePrefix(snap.lines[0], local.Start.Col)
	if err != nil {
		return asError(err)
	}
	after, err := extract.LineSuffix(snap.lines[len(snap.lines)-1], local.End.Col)
	if err != nil {
		return asError(err)
	}
	if err := checkContext(ctx, "remove"); err != nil {
		return err
	}

	d := spacing.Normalize(before, after, &removed, nil, e.rules)
	line := e.withIndent(before, d.Joined())
	logger.DebugTagf(logTag, "remove %s: %q | %q -> %q (%s)", span, d.TrimmedBefore, d.TrimmedAfter, line, d.Reason)

	return e.write(ctx, "remove", snap, []string{line})
}

// asError narrows an error from the extractor or validation to *types.Error.
func asError(err error) *types.Error {
	if err == nil {
		return nil
	}
	if te, ok := err.(*types.Error); ok {
		return te
	}
	return types.WrapError(types.InvalidRange, "unexpected error", err)
}
