package errutil

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Kind identifies which scoring-log rule a line violated.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidLine
	KindBadNumber
	KindDuplicateNames
	KindNoRoster
	KindMultipleWinners
	KindMultipleBlame
	KindMaximumFaanExceeded
	KindBlameWithoutWinner
	KindWinnerWithFalseBlame
	KindRedundantDiscardGuarantee
	KindBadChronology
)

var kindDesc = [...]string{
	KindUnknown:                   "unknown",
	KindInvalidLine:               "invalid line",
	KindBadNumber:                 "bad number",
	KindDuplicateNames:            "duplicate player names",
	KindNoRoster:                  "no player names declared",
	KindMultipleWinners:           "multiple winners",
	KindMultipleBlame:             "multiple players blamed",
	KindMaximumFaanExceeded:       "maximum faan exceeded",
	KindBlameWithoutWinner:        "blame without winner",
	KindWinnerWithFalseBlame:      "winner with false-win blame",
	KindRedundantDiscardGuarantee: "redundant discard-guarantee",
	KindBadChronology:             "bad chronology",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindDesc) {
		return kindDesc[k]
	}
	return kindDesc[KindUnknown]
}

// LineError reports the first rule violated by a scores file, carrying the
// 1-based number of the offending line. The whole parse aborts on the first
// LineError; no partial result is produced.
type LineError struct {
	Line    int
	Kind    Kind
	Message string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// NewLineError builds a LineError with a formatted message.
func NewLineError(line int, kind Kind, format string, args ...interface{}) *LineError {
	return &LineError{
		Line:    line,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsLineError unwraps err as a *LineError if it is one.
func AsLineError(err error) (*LineError, bool) {
	le, ok := err.(*LineError)
	return le, ok
}
