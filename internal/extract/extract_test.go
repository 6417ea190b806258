package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/spacer/internal/types"
)

func span(sl, sc, el, ec int) types.TextSpan {
	return types.TextSpan{
		Start: types.TextPosition{Line: sl, Col: sc},
		End:   types.TextPosition{Line: el, Col: ec},
	}
}

func TestExtract(t *testing.T) {
	source := []string{
		"this is text I want to change",
		"second line",
		"",
		"fourth 日本語 line",
	}

	tests := []struct {
		desc string
		span types.TextSpan
		want string
	}{
		{"single word", span(1, 8, 1, 12), "text"},
		{"empty span", span(1, 3, 1, 3), ""},
		{"whole line via sentinel", span(2, 0, 2, types.EndOfLine), "second line"},
		{"two lines", span(1, 23, 2, 6), "change\nsecond"},
		{"middle lines verbatim", span(1, 23, 4, 6), "change\nsecond line\n\nfourth"},
		{"rune columns", span(4, 7, 4, 10), "日本語"},
		{"empty line", span(3, 0, 3, 0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Extract(source, tt.span)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Errors(t *testing.T) {
	source := []string{"abc", "de"}

	tests := []struct {
		desc    string
		span    types.TextSpan
		wantErr error
	}{
		{"line past end", span(1, 0, 3, 0), types.ErrOutOfBounds},
		{"column past end", span(2, 0, 2, 3), types.ErrOutOfBounds},
		{"start column past end", span(1, 4, 2, 0), types.ErrOutOfBounds},
		{"reversed", span(2, 0, 1, 1), types.ErrInvalidRange},
		{"reversed after resolving sentinel", span(1, 3, 1, types.EndOfLine), nil},
		{"zero line", span(0, 0, 1, 0), types.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := Extract(source, tt.span)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_EndOfLine(t *testing.T) {
	resolved, err := Resolve([]string{"héllo"}, span(1, 1, 1, types.EndOfLine))
	require.NoError(t, err)
	assert.Equal(t, 5, resolved.End.Col)
}

func TestLinePrefixSuffix(t *testing.T) {
	prefix, err := LinePrefix("hello! how", 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", prefix)

	suffix, err := LineSuffix("hello! how", 5)
	require.NoError(t, err)
	assert.Equal(t, "! how", suffix)

	suffix, err = LineSuffix("hello", types.EndOfLine)
	require.NoError(t, err)
	assert.Empty(t, suffix)

	_, err = LinePrefix("abc", 9)
	assert.ErrorIs(t, err, types.ErrOutOfBounds)
}
