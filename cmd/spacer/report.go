package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/bethropolis/spacer/internal/event"
)

// styles holds the color formatters for change output.
type styles struct {
	heading *color.Color
	removed *color.Color
	added   *color.Color
	note    *color.Color
}

// newStyles creates color formatters; enabled=false strips all color.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		removed: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		note:    color.New(color.FgHiBlack),
	}
	if !enabled {
		s.heading.DisableColor()
		s.removed.DisableColor()
		s.added.DisableColor()
		s.note.DisableColor()
	}
	return s
}

// colorEnabled resolves --color. auto means stdout is a terminal and
// NO_COLOR is unset.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

// reporter prints the lines an operation replaced as a small diff.
type reporter struct {
	out io.Writer
	s   *styles
}

func newReporter(out io.Writer, mode string) *reporter {
	return &reporter{out: out, s: newStyles(colorEnabled(mode))}
}

// linesReplaced is an event.Handler for event.TypeLinesReplaced.
func (r *reporter) linesReplaced(e event.Event) bool {
	data, ok := e.Data.(event.LinesReplacedData)
	if !ok {
		return false
	}
	if data.First == data.Last {
		r.s.heading.Fprintf(r.out, "%s: line %d\n", data.Op, data.First)
	} else {
		r.s.heading.Fprintf(r.out, "%s: lines %d-%d\n", data.Op, data.First, data.Last)
	}
	for _, line := range data.Old {
		r.s.removed.Fprintf(r.out, "- %s\n", line)
	}
	for _, line := range data.New {
		r.s.added.Fprintf(r.out, "+ %s\n", line)
	}
	return false
}

func (r *reporter) unchanged(path string) {
	r.s.note.Fprintf(r.out, "%s: no change\n", path)
}
