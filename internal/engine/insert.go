package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/bethropolis/spacer/internal/extract"
	"github.com/bethropolis/spacer/internal/logger"
	"github.com/bethropolis/spacer/internal/spacing"
	"github.com/bethropolis/spacer/internal/textutil"
	"github.com/bethropolis/spacer/internal/types"
)

// Insert places text at pos and re-spaces both of its edges. Surrounding
// whitespace on text is dropped; the rules decide the separators.
//
// Empty or blank text succeeds without touching the buffer.
func (e *Engine) Insert(ctx context.Context, pos types.TextPosition, text string) Result {
	return e.finish("insert", e.insert(ctx, pos, text))
}

// InsertAt is Insert over plain integers: it reports success and, on
// failure, the error text.
func (e *Engine) InsertAt(ctx context.Context, line, col int, text string) (bool, string) {
	r := e.Insert(ctx, types.TextPosition{Line: line, Col: col}, text)
	return r.Success, r.ErrorString()
}

func (e *Engine) insert(ctx context.Context, pos types.TextPosition, text string) *types.Error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	if err := asError(pos.Validate(false)); err != nil {
		return err
	}
	if err := checkContext(ctx, "insert"); err != nil {
		return err
	}

	snap, rerr := e.read(pos.Line, pos.Line)
	if rerr != nil {
		return rerr
	}
	current := snap.lines[0]
	if n := textutil.RuneLen(current); pos.Col > n {
		return types.NewError(types.OutOfBounds,
			fmt.Sprintf("column %d out of bounds on line %d (0-%d)", pos.Col, pos.Line, n))
	}

	fragment := strings.TrimSpace(text)
	if fragment == "" {
		logger.DebugTagf(logTag, "insert at %s: blank text, nothing to do", pos)
		return nil
	}
	if err := e.checkSize("inserted text", text); err != nil {
		return err
	}

	before, err := extract.LinePrefix(current, pos.Col)
	if err != nil {
		return asError(err)
	}
	after, err := extract.LineSuffix(current, pos.Col)
	if err != nil {
		return asError(err)
	}
	if err := checkContext(ctx, "insert"); err != nil {
		return err
	}

	d := spacing.Normalize(before, after, nil, &text, e.rules)
	assembled := e.place(d, fragment)
	result := e.withIndent(before, assembled)
	logger.DebugTagf(logTag, "insert at %s: %q | %q | %q -> %q", pos, d.TrimmedBefore, fragment, d.TrimmedAfter, result)

	return e.write(ctx, "insert", snap, strings.Split(result, "\n"))
}

// place joins fragment between the normalized sides, deciding each of its
// two boundaries on its own. In the middle of a line, a boundary between
// two punctuation characters never gets a space, whatever the always_*
// rules say.
func (e *Engine) place(d spacing.Decision, fragment string) string {
	middle := d.TrimmedBefore != "" && d.TrimmedAfter != ""

	var b strings.Builder
	if d.TrimmedBefore != "" {
		b.WriteString(d.TrimmedBefore)
		if e.separate(d.TrimmedBefore, fragment, middle) {
			b.WriteByte(' ')
		}
	}
	b.WriteString(fragment)
	if d.TrimmedAfter != "" {
		if e.separate(fragment, d.TrimmedAfter, middle) {
			b.WriteByte(' ')
		}
		b.WriteString(d.TrimmedAfter)
	}
	return b.String()
}

// separate reports whether a space goes between left and right.
func (e *Engine) separate(left, right string, middle bool) bool {
	b := e.rules.Join(left, right)
	if middle && e.rules.IsPunct(b.Left) && e.rules.IsPunct(b.Right) {
		return false
	}
	return b.NeedsSpace
}
