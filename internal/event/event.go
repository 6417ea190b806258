// internal/event/event.go
package event

import "github.com/bethropolis/spacer/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeLinesReplaced   // A spacing operation wrote replacement lines
	TypeOperationFailed // A spacing operation returned an error
)

func (t Type) String() string {
	switch t {
	case TypeLinesReplaced:
		return "lines-replaced"
	case TypeOperationFailed:
		return "operation-failed"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// LinesReplacedData describes a successful write-back.
// First and Last are the 1-based lines that were replaced by New.
type LinesReplacedData struct {
	Op    string // "remove" or "insert"
	First int
	Last  int
	Old   []string
	New   []string
}

// OperationFailedData carries the error of a failed operation.
type OperationFailedData struct {
	Op  string
	Err *types.Error
}
