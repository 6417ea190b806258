package types

import "fmt"

// ErrorKind classifies a failed spacing operation.
type ErrorKind int

const (
	InvalidRange ErrorKind = iota + 1
	OutOfBounds
	BufferReadOnly
	ConcurrentModification
	OperationTooLarge
	OperationTimedOut
	BufferWriteError
)

var kindNames = map[ErrorKind]string{
	InvalidRange:           "InvalidRange",
	OutOfBounds:            "OutOfBounds",
	BufferReadOnly:         "BufferReadOnly",
	ConcurrentModification: "ConcurrentModification",
	OperationTooLarge:      "OperationTooLarge",
	OperationTimedOut:      "OperationTimedOut",
	BufferWriteError:       "BufferWriteError",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error value returned by the extractor and the engine.
// Kind is stable; Detail is meant for humans.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error // Underlying cause, if any
}

// NewError builds an *Error without a cause.
func NewError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// WrapError builds an *Error around a collaborator failure.
func WrapError(kind ErrorKind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrOutOfBounds)
// works regardless of the detail text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidRange           = &Error{Kind: InvalidRange}
	ErrOutOfBounds            = &Error{Kind: OutOfBounds}
	ErrBufferReadOnly         = &Error{Kind: BufferReadOnly}
	ErrConcurrentModification = &Error{Kind: ConcurrentModification}
	ErrOperationTooLarge      = &Error{Kind: OperationTooLarge}
	ErrOperationTimedOut      = &Error{Kind: OperationTimedOut}
	ErrBufferWriteError       = &Error{Kind: BufferWriteError}
)
