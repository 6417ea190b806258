package buffer

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceBuffer_GetLines(t *testing.T) {
	sb := NewSliceBufferFromString("one\ntwo\nthree")
	assert.Equal(t, 3, sb.LineCount())

	lines, err := sb.GetLines(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "three"}, lines)

	_, err = sb.GetLines(0, 1)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	_, err = sb.GetLines(3, 4)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	_, err = sb.GetLines(3, 2)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestSliceBuffer_SetLines(t *testing.T) {
	sb := NewSliceBufferFromString("one\ntwo\nthree\nfour")
	v := sb.Version()

	require.NoError(t, sb.SetLines(2, 3, []string{"merged"}))
	assert.Equal(t, "one\nmerged\nfour", sb.String())
	assert.True(t, sb.IsModified())
	assert.Equal(t, v+1, sb.Version())

	require.NoError(t, sb.SetLines(1, 1, []string{"a", "b"}))
	assert.Equal(t, "a\nb\nmerged\nfour", sb.String())

	require.NoError(t, sb.SetLines(1, 4, nil))
	assert.Equal(t, 1, sb.LineCount(), "buffer keeps one empty line")
	assert.Equal(t, "", sb.String())
}

func TestSliceBuffer_ReadOnly(t *testing.T) {
	sb := NewSliceBufferFromString("keep me")
	sb.SetReadOnly(true)

	err := sb.SetLines(1, 1, []string{"changed"})
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.Equal(t, "keep me", sb.String())
	assert.False(t, sb.IsModified())

	sb.SetReadOnly(false)
	assert.NoError(t, sb.SetLines(1, 1, []string{"changed"}))
}

func TestSliceBuffer_SetLinesAt(t *testing.T) {
	sb := NewSliceBufferFromString("a b c")
	v := sb.Version()

	require.NoError(t, sb.SetLines(1, 1, []string{"x"}))

	err := sb.SetLinesAt(v, 1, 1, []string{"stale"})
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Equal(t, "x", sb.String())

	require.NoError(t, sb.SetLinesAt(sb.Version(), 1, 1, []string{"fresh"}))
	assert.Equal(t, "fresh", sb.String())
}

func TestSliceBuffer_LoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("first line\nsecond line\n"), 0644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	assert.Equal(t, 2, sb.LineCount())
	assert.Equal(t, path, sb.FilePath())
	assert.False(t, sb.IsModified())

	require.NoError(t, sb.SetLines(2, 2, []string{"edited"}))
	require.NoError(t, sb.Save(""))
	assert.False(t, sb.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first line\nedited\n", string(data))
}

func TestSliceBuffer_CRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\r\nline\r\n"), 0644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	lines, err := sb.GetLines(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"line one", "line"}, lines)

	require.NoError(t, sb.SetLines(2, 2, []string{"line x"}))
	require.NoError(t, sb.Save(""))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\r\nline x\r\n", string(data))

	fromString := NewSliceBufferFromString("a\r\nb\r")
	lines, err = fromString.GetLines(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
	assert.Equal(t, "a\r\nb", fromString.String())
}

func TestSliceBuffer_SetLinesUnchanged(t *testing.T) {
	sb := NewSliceBufferFromString("one\ntwo")
	v := sb.Version()

	require.NoError(t, sb.SetLines(2, 2, []string{"two"}))
	assert.False(t, sb.IsModified())
	assert.Equal(t, v, sb.Version())

	require.NoError(t, sb.SetLinesAt(v, 1, 2, []string{"one", "two"}))
	assert.False(t, sb.IsModified())

	require.NoError(t, sb.SetLines(1, 2, []string{"one two"}))
	assert.True(t, sb.IsModified())
	assert.Equal(t, v+1, sb.Version())
}

func TestSliceBuffer_LoadMissingFile(t *testing.T) {
	sb := NewSliceBuffer()
	path := filepath.Join(t.TempDir(), "new.txt")
	require.NoError(t, sb.Load(path))
	assert.Equal(t, 1, sb.LineCount())
	assert.Equal(t, path, sb.FilePath())

	assert.Error(t, NewSliceBuffer().Save(""), "no path to save to")
}

func TestSliceBuffer_ConcurrentAccess(t *testing.T) {
	sb := NewSliceBufferFromString("a\nb\nc")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = sb.SetLines(2, 2, []string{"b"})
		}()
		go func() {
			defer wg.Done()
			lines, err := sb.GetLines(1, 3)
			assert.NoError(t, err)
			assert.Len(t, lines, 3)
		}()
	}
	wg.Wait()
	assert.Equal(t, "a\nb\nc", sb.String())
}
