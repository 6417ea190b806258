// Package extract pulls exact substrings out of a window of buffer lines.
package extract

import (
	"fmt"
	"strings"

	"github.com/bethropolis/spacer/internal/textutil"
	"github.com/bethropolis/spacer/internal/types"
)

// Resolve validates span against source (source[0] is line 1) and replaces
// an EndOfLine end column with the end line's rune length.
func Resolve(source []string, span types.TextSpan) (types.TextSpan, error) {
	if err := span.Validate(); err != nil {
		return span, err
	}
	for _, line := range []int{span.Start.Line, span.End.Line} {
		if line > len(source) {
			return span, types.NewError(types.OutOfBounds,
				fmt.Sprintf("line %d out of bounds (1-%d)", line, len(source)))
		}
	}

	if span.End.Col == types.EndOfLine {
		span.End.Col = textutil.RuneLen(source[span.End.Line-1])
	}
	for _, pos := range []types.TextPosition{span.Start, span.End} {
		if n := textutil.RuneLen(source[pos.Line-1]); pos.Col > n {
			return span, types.NewError(types.OutOfBounds,
				fmt.Sprintf("column %d out of bounds on line %d (0-%d)", pos.Col, pos.Line, n))
		}
	}
	if types.ComparePositions(span.Start, span.End) > 0 {
		return span, types.NewError(types.InvalidRange, fmt.Sprintf("span %s: start after end", span))
	}
	return span, nil
}

// Extract returns the text covered by span.
// Multi-line spans keep their internal newlines verbatim.
func Extract(source []string, span types.TextSpan) (string, error) {
	span, err := Resolve(source, span)
	if err != nil {
		return "", err
	}

	first := source[span.Start.Line-1]
	if span.Start.Line == span.End.Line {
		start := textutil.RuneIndexToByteOffset(first, span.Start.Col)
		end := textutil.RuneIndexToByteOffset(first, span.End.Col)
		return first[start:end], nil
	}

	var content strings.Builder
	_, head, _ := textutil.SplitAt(first, span.Start.Col)
	content.WriteString(head)
	for line := span.Start.Line + 1; line < span.End.Line; line++ {
		content.WriteByte('\n')
		content.WriteString(source[line-1])
	}
	tail, _, _ := textutil.SplitAt(source[span.End.Line-1], span.End.Col)
	content.WriteByte('\n')
	content.WriteString(tail)
	return content.String(), nil
}

// LinePrefix returns line[:col] (rune column).
func LinePrefix(line string, col int) (string, error) {
	prefix, _, ok := textutil.SplitAt(line, col)
	if !ok {
		return "", types.NewError(types.OutOfBounds,
			fmt.Sprintf("column %d out of bounds (0-%d)", col, textutil.RuneLen(line)))
	}
	return prefix, nil
}

// LineSuffix returns line[col:] (rune column). EndOfLine yields "".
func LineSuffix(line string, col int) (string, error) {
	if col == types.EndOfLine {
		return "", nil
	}
	_, suffix, ok := textutil.SplitAt(line, col)
	if !ok {
		return "", types.NewError(types.OutOfBounds,
			fmt.Sprintf("column %d out of bounds (0-%d)", col, textutil.RuneLen(line)))
	}
	return suffix, nil
}
