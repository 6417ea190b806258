package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSpan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		span    TextSpan
		wantErr error
	}{
		{"single line", TextSpan{TextPosition{1, 2}, TextPosition{1, 5}}, nil},
		{"empty span", TextSpan{TextPosition{3, 4}, TextPosition{3, 4}}, nil},
		{"multi line", TextSpan{TextPosition{1, 9}, TextPosition{2, 0}}, nil},
		{"end of line sentinel", TextSpan{TextPosition{1, 9}, TextPosition{1, EndOfLine}}, nil},
		{"zero line", TextSpan{TextPosition{0, 0}, TextPosition{1, 0}}, ErrInvalidRange},
		{"negative start column", TextSpan{TextPosition{1, -1}, TextPosition{1, 2}}, ErrInvalidRange},
		{"negative end column", TextSpan{TextPosition{1, 0}, TextPosition{1, -2}}, ErrInvalidRange},
		{"start after end line", TextSpan{TextPosition{2, 0}, TextPosition{1, 0}}, ErrInvalidRange},
		{"start after end column", TextSpan{TextPosition{1, 5}, TextPosition{1, 2}}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.span.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComparePositions(t *testing.T) {
	assert.Equal(t, -1, ComparePositions(TextPosition{1, 4}, TextPosition{2, 0}))
	assert.Equal(t, 1, ComparePositions(TextPosition{2, 0}, TextPosition{1, 40}))
	assert.Equal(t, -1, ComparePositions(TextPosition{1, 3}, TextPosition{1, 4}))
	assert.Equal(t, 0, ComparePositions(TextPosition{5, 5}, TextPosition{5, 5}))
}

func TestTextSpan_ShiftAndString(t *testing.T) {
	s := TextSpan{TextPosition{4, 1}, TextPosition{6, EndOfLine}}
	shifted := s.Shift(-3)
	assert.Equal(t, TextSpan{TextPosition{1, 1}, TextPosition{3, EndOfLine}}, shifted)
	assert.Equal(t, 3, shifted.LineCount())
	assert.Equal(t, "[4:1, 6:$)", s.String())
}

func TestError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(BufferWriteError, "writing lines 1-2", cause)

	var wrapped error = fmt.Errorf("remove: %w", err)
	assert.True(t, errors.Is(wrapped, ErrBufferWriteError))
	assert.False(t, errors.Is(wrapped, ErrOutOfBounds))
	assert.True(t, errors.Is(wrapped, cause))

	var target *Error
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, BufferWriteError, target.Kind)
	assert.Equal(t, "BufferWriteError: writing lines 1-2: disk full", err.Error())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
