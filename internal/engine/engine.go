// Package engine exposes the Remove and Insert operations: it reads the
// lines around an edit from a buffer, decides the spacing, and writes the
// re-spaced lines back.
package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/bethropolis/spacer/internal/buffer"
	"github.com/bethropolis/spacer/internal/event"
	"github.com/bethropolis/spacer/internal/logger"
	"github.com/bethropolis/spacer/internal/spacing"
	"github.com/bethropolis/spacer/internal/textutil"
	"github.com/bethropolis/spacer/internal/types"
)

const logTag = "engine"

// Engine runs spacing operations against one buffer. It keeps no state
// between calls and is safe for concurrent use as long as the buffer is.
type Engine struct {
	buf    buffer.Buffer
	rules  spacing.RuleSet
	events *event.Manager
}

// Option configures an Engine.
type Option func(*Engine)

// WithEventManager makes the engine dispatch change and failure events.
func WithEventManager(m *event.Manager) Option {
	return func(e *Engine) {
		e.events = m
	}
}

// New creates an engine over buf using rules for every operation.
func New(buf buffer.Buffer, rules spacing.RuleSet, opts ...Option) *Engine {
	e := &Engine{buf: buf, rules: rules}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the rule set the engine was built with.
func (e *Engine) Rules() spacing.RuleSet {
	return e.rules
}

// Result is the outcome of Remove or Insert.
type Result struct {
	Success bool
	Err     *types.Error
}

// ErrorString returns the error text, or "" on success.
func (r Result) ErrorString() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// finish turns an operation error into a Result, logging and dispatching
// the failure.
func (e *Engine) finish(op string, err *types.Error) Result {
	if err == nil {
		return Result{Success: true}
	}
	logger.WarnTagf(logTag, "%s failed: %v", op, err)
	if e.events != nil {
		e.events.Dispatch(event.TypeOperationFailed, event.OperationFailedData{Op: op, Err: err})
	}
	return Result{Err: err}
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.rules.Timeout > 0 {
		return context.WithTimeout(ctx, e.rules.Timeout)
	}
	return context.WithCancel(ctx)
}

func checkContext(ctx context.Context, op string) *types.Error {
	if err := ctx.Err(); err != nil {
		return types.WrapError(types.OperationTimedOut, op+" abandoned", err)
	}
	return nil
}

func (e *Engine) checkSize(what string, s string) *types.Error {
	limit := e.rules.MaxOperationSize
	if limit <= 0 {
		return nil
	}
	if n := textutil.RuneLen(s); n > limit {
		return types.NewError(types.OperationTooLarge,
			fmt.Sprintf("%s is %d runes, limit is %d", what, n, limit))
	}
	return nil
}

// snapshot is what the engine read from the buffer before deciding.
type snapshot struct {
	first, last int
	lines       []string
	version     uint64
	versioned   bool
}

// read fetches lines first..last, remembering the buffer version when the
// buffer can report one.
func (e *Engine) read(first, last int) (snapshot, *types.Error) {
	s := snapshot{first: first, last: last}
	if count := e.buf.LineCount(); last > count {
		return s, types.NewError(types.OutOfBounds,
			fmt.Sprintf("line %d out of bounds (1-%d)", last, count))
	}
	if vb, ok := e.buf.(buffer.Versioned); ok {
		s.version, s.versioned = vb.Version(), true
	}
	lines, err := e.buf.GetLines(first, last)
	if err != nil {
		return s, types.WrapError(types.OutOfBounds, fmt.Sprintf("reading lines %d-%d", first, last), err)
	}
	if len(lines) != last-first+1 {
		return s, types.NewError(types.ConcurrentModification,
			fmt.Sprintf("asked for %d lines, got %d", last-first+1, len(lines)))
	}
	s.lines = lines
	return s, nil
}

// write replaces the snapshot's lines with replacement and announces it.
func (e *Engine) write(ctx context.Context, op string, s snapshot, replacement []string) *types.Error {
	if err := checkContext(ctx, op); err != nil {
		return err
	}
	if slices.Equal(s.lines, replacement) {
		logger.DebugTagf(logTag, "%s left lines %d-%d unchanged", op, s.first, s.last)
		return nil
	}

	var err error
	if vb, ok := e.buf.(buffer.Versioned); ok && s.versioned {
		err = vb.SetLinesAt(s.version, s.first, s.last, replacement)
	} else {
		err = e.buf.SetLines(s.first, s.last, replacement)
	}
	if err != nil {
		return writeError(s, err)
	}

	logger.DebugTagf(logTag, "%s replaced lines %d-%d with %q", op, s.first, s.last, replacement)
	if e.events != nil {
		e.events.Dispatch(event.TypeLinesReplaced, event.LinesReplacedData{
			Op:    op,
			First: s.first,
			Last:  s.last,
			Old:   s.lines,
			New:   replacement,
		})
	}
	return nil
}

func writeError(s snapshot, err error) *types.Error {
	detail := fmt.Sprintf("writing lines %d-%d", s.first, s.last)
	switch {
	case errors.Is(err, buffer.ErrReadOnly):
		return types.WrapError(types.BufferReadOnly, detail, err)
	case errors.Is(err, buffer.ErrConcurrentModification), errors.Is(err, buffer.ErrLineOutOfRange):
		// Lines that were readable a moment ago vanished: someone else wrote.
		return types.WrapError(types.ConcurrentModification, detail, err)
	default:
		return types.WrapError(types.BufferWriteError, detail, err)
	}
}

// indentOf returns the leading whitespace of s.
func indentOf(s string) string {
	return s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
}

// withIndent re-attaches the original indentation when the rules ask for it.
func (e *Engine) withIndent(linePrefix, assembled string) string {
	if !e.rules.PreserveIndent {
		return assembled
	}
	return indentOf(linePrefix) + assembled
}
