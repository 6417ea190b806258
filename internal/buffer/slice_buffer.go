// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
)

// SliceBuffer keeps the document as a slice of lines.
type SliceBuffer struct {
	mu       sync.RWMutex
	lines    [][]byte
	filePath string
	modified bool // Track if buffer has unsaved changes
	readOnly bool
	version  uint64 // Bumped on every successful write
	crlf     bool   // Lines end with "\r\n" on disk
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		// Start with a single empty line, common for new files
		lines: [][]byte{[]byte("")},
	}
}

// NewSliceBufferFromString creates a buffer holding text, split on '\n'.
func NewSliceBufferFromString(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.lines, sb.crlf = splitLines([]byte(text))
	return sb
}

// splitLines splits on '\n' and strips a trailing '\r' from each line, as
// bufio.ScanLines does. crlf reports whether the first line break was "\r\n".
func splitLines(content []byte) (lines [][]byte, crlf bool) {
	parts := bytes.Split(content, []byte("\n"))
	lines = make([][]byte, len(parts))
	for i, p := range parts {
		if bytes.HasSuffix(p, []byte("\r")) {
			p = p[:len(p)-1]
			if i == 0 && len(parts) > 1 {
				crlf = true
			}
		}
		lineCopy := make([]byte, len(p))
		copy(lineCopy, p)
		lines[i] = lineCopy
	}
	return lines, crlf
}

func (sb *SliceBuffer) lineEnding() []byte {
	if sb.crlf {
		return []byte("\r\n")
	}
	return []byte("\n")
}

// Load reads a file into the buffer. Replaces existing content.
// A missing file yields an empty buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.crlf = false
			sb.filePath = filePath
			sb.modified = false // New buffer isn't modified yet
			sb.version++
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	// ScanLines drops the '\r' of "\r\n"; the first line break decides
	// which ending Save writes back.
	crlf, first := false, true
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		if first && advance > 0 {
			first = false
			crlf = advance >= 2 && data[advance-2] == '\r' && data[advance-1] == '\n'
		}
		return advance, token, err
	})
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.crlf = crlf
	sb.filePath = filePath
	sb.modified = false
	sb.version++
	return nil
}

// Save writes the buffer content to filePath, or to the loaded path when
// filePath is empty.
func (sb *SliceBuffer) Save(filePath string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	path := sb.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	content := append(sb.bytesLocked(), sb.lineEnding()...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// Bytes returns the whole document, lines joined with the buffer's line
// ending.
func (sb *SliceBuffer) Bytes() []byte {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.bytesLocked()
}

func (sb *SliceBuffer) bytesLocked() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.Write(sb.lineEnding())
		}
	}
	return buffer.Bytes()
}

// String returns the document as text.
func (sb *SliceBuffer) String() string {
	return string(sb.Bytes())
}

func (sb *SliceBuffer) FilePath() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.filePath
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.modified
}

// SetReadOnly toggles write protection. Writes to a read-only buffer fail
// with ErrReadOnly.
func (sb *SliceBuffer) SetReadOnly(readOnly bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.readOnly = readOnly
}

// LineCount implements Buffer.
func (sb *SliceBuffer) LineCount() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return len(sb.lines)
}

// Version implements Versioned.
func (sb *SliceBuffer) Version() uint64 {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.version
}

// GetLines implements Buffer.
func (sb *SliceBuffer) GetLines(first, last int) ([]string, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	if err := sb.checkRange(first, last); err != nil {
		return nil, err
	}
	out := make([]string, 0, last-first+1)
	for _, line := range sb.lines[first-1 : last] {
		out = append(out, string(line))
	}
	return out, nil
}

// SetLines implements Buffer. Writing back identical lines changes nothing:
// the buffer stays unmodified and keeps its version.
func (sb *SliceBuffer) SetLines(first, last int, replacement []string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.setLinesLocked(first, last, replacement)
}

// SetLinesAt implements Versioned.
func (sb *SliceBuffer) SetLinesAt(version uint64, first, last int, replacement []string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.version != version {
		return fmt.Errorf("%w: at version %d, expected %d", ErrConcurrentModification, sb.version, version)
	}
	return sb.setLinesLocked(first, last, replacement)
}

func (sb *SliceBuffer) setLinesLocked(first, last int, replacement []string) error {
	if sb.readOnly {
		return ErrReadOnly
	}
	if err := sb.checkRange(first, last); err != nil {
		return err
	}
	if sameLines(sb.lines[first-1:last], replacement) {
		return nil
	}

	newLines := make([][]byte, 0, len(sb.lines)-(last-first+1)+len(replacement))
	newLines = append(newLines, sb.lines[:first-1]...)
	for _, line := range replacement {
		newLines = append(newLines, []byte(line))
	}
	newLines = append(newLines, sb.lines[last:]...)

	// Ensure buffer always has at least one line (convention)
	if len(newLines) == 0 {
		newLines = [][]byte{[]byte("")}
	}

	sb.lines = newLines
	sb.modified = true
	sb.version++
	return nil
}

// sameLines reports whether replacement would leave lines unchanged.
func sameLines(lines [][]byte, replacement []string) bool {
	if len(lines) != len(replacement) {
		return false
	}
	for i, line := range lines {
		if string(line) != replacement[i] {
			return false
		}
	}
	return true
}

func (sb *SliceBuffer) checkRange(first, last int) error {
	if first < 1 || last > len(sb.lines) || first > last {
		return fmt.Errorf("%w: lines %d-%d (1-%d)", ErrLineOutOfRange, first, last, len(sb.lines))
	}
	return nil
}

// Ensure SliceBuffer satisfies the Buffer and Versioned interfaces
var (
	_ Buffer    = (*SliceBuffer)(nil)
	_ Versioned = (*SliceBuffer)(nil)
)
