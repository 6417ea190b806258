// internal/types/position.go
package types

import "fmt"

// EndOfLine is the column sentinel meaning "the end of that line".
// Only valid on the end position of a span.
const EndOfLine = -1

// TextPosition is a position within the buffer.
// Line is 1-based, Col is the 0-based rune index within the line.
type TextPosition struct {
	Line int
	Col  int // Rune index
}

// String renders the position as line:col.
func (p TextPosition) String() string {
	if p.Col == EndOfLine {
		return fmt.Sprintf("%d:$", p.Line)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Validate checks the structural invariants (line >= 1, col >= 0).
// allowEOL permits the EndOfLine sentinel as column.
func (p TextPosition) Validate(allowEOL bool) error {
	if p.Line < 1 {
		return NewError(InvalidRange, fmt.Sprintf("line %d must be >= 1", p.Line))
	}
	if p.Col < 0 && !(allowEOL && p.Col == EndOfLine) {
		return NewError(InvalidRange, fmt.Sprintf("column %d must be >= 0", p.Col))
	}
	return nil
}

// ComparePositions orders two positions in document order.
// Both columns must already be resolved (no EndOfLine sentinel).
func ComparePositions(a, b TextPosition) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

// TextSpan is a range between two positions: half-open on columns,
// inclusive on the lines it traverses.
type TextSpan struct {
	Start TextPosition
	End   TextPosition
}

func (s TextSpan) String() string {
	return fmt.Sprintf("[%s, %s)", s.Start, s.End)
}

// IsEmpty reports whether the span covers no text.
func (s TextSpan) IsEmpty() bool {
	return s.Start == s.End
}

// LineCount returns the number of lines the span touches.
func (s TextSpan) LineCount() int {
	return s.End.Line - s.Start.Line + 1
}

// Shift moves both ends of the span by delta lines.
// Used to address a span inside a window of fetched lines.
func (s TextSpan) Shift(delta int) TextSpan {
	s.Start.Line += delta
	s.End.Line += delta
	return s
}

// Validate checks both positions and that Start <= End in document order.
// An EndOfLine end column is accepted here; callers resolve it against
// the actual line length before comparing columns on the same line.
func (s TextSpan) Validate() error {
	if err := s.Start.Validate(false); err != nil {
		return err
	}
	if err := s.End.Validate(true); err != nil {
		return err
	}
	if s.Start.Line > s.End.Line {
		return NewError(InvalidRange, fmt.Sprintf("span %s: start line after end line", s))
	}
	if s.Start.Line == s.End.Line && s.End.Col != EndOfLine && s.Start.Col > s.End.Col {
		return NewError(InvalidRange, fmt.Sprintf("span %s: start column after end column", s))
	}
	return nil
}
