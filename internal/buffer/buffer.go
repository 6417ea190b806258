// internal/buffer/buffer.go
package buffer

import "errors"

// Errors a Buffer implementation reports from SetLines.
var (
	ErrReadOnly               = errors.New("buffer is read-only")
	ErrConcurrentModification = errors.New("buffer changed since it was read")
	ErrLineOutOfRange         = errors.New("line out of range")
)

// Buffer is the line store the spacing engine reads from and writes back to.
// Lines are 1-based; ranges are inclusive on both ends.
type Buffer interface {
	LineCount() int
	// GetLines returns copies of lines first..last.
	GetLines(first, last int) ([]string, error)
	// SetLines replaces lines first..last with replacement, atomically with
	// respect to concurrent readers.
	SetLines(first, last int, replacement []string) error
}

// Versioned is implemented by buffers that can detect writes racing with
// an earlier read. The engine prefers SetLinesAt when it is available.
type Versioned interface {
	Version() uint64
	// SetLinesAt behaves like SetLines but fails with
	// ErrConcurrentModification when the buffer is no longer at version.
	SetLinesAt(version uint64, first, last int, replacement []string) error
}
