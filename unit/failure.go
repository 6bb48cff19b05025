package unit

import "fmt"

// Location placeholders for failures with no usable source position, such as
// translated panics and signals.
const (
	UnknownFile = "unknown file"
	UnknownLine = -1
)

// FailureRecord describes one failed check or translated fault. It is
// immutable once constructed: reporters receive it by value and may retain
// or discard it as they see fit.
type FailureRecord struct {
	// Condition is the human-readable predicate text, including the runtime
	// values of the operands and any note the test attached.
	Condition string
	// TestName is the name of the case that was running.
	TestName string
	// File and Line locate the failing check. UnknownFile/UnknownLine when
	// the failure came from a panic or a signal.
	File string
	Line int
}

// NewFailure builds a failure record.
func NewFailure(condition, testName, file string, line int) FailureRecord {
	return FailureRecord{Condition: condition, TestName: testName, File: file, Line: line}
}

// String renders the record in the console trace format.
func (f FailureRecord) String() string {
	return fmt.Sprintf("%s(%d): Failure: \"%s\"", f.File, f.Line, f.Condition)
}
