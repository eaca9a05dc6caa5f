package duedate

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	KindEmptyInput ErrorKind = iota + 1
	KindUnrecognizedFormat
	KindInvalidWeekday
	KindInvalidTimeFormat
	KindInvalidDateFormat
	KindInvalidDateOrTime
	KindInvalidDuration
	KindUnsupportedUnit
	KindPastDueDate
	KindMalformedCandidate
)

var kindCodes = map[ErrorKind]string{
	KindEmptyInput:         "empty_input",
	KindUnrecognizedFormat: "unrecognized_format",
	KindInvalidWeekday:     "invalid_weekday",
	KindInvalidTimeFormat:  "invalid_time_format",
	KindInvalidDateFormat:  "invalid_date_format",
	KindInvalidDateOrTime:  "invalid_date_or_time",
	KindInvalidDuration:    "invalid_duration",
	KindUnsupportedUnit:    "unsupported_unit",
	KindPastDueDate:        "past_due_date",
	KindMalformedCandidate: "malformed_candidate",
}

// Code returns a stable snake_case identifier for machine-readable output.
func (k ErrorKind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return "unknown"
}

func (k ErrorKind) String() string {
	return k.Code()
}

// Error is returned for every parse failure. Token holds the offending
// token when one exists (the unit name for KindUnsupportedUnit).
type Error struct {
	Kind   ErrorKind
	Input  string
	Token  string
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "empty due date"
	case KindUnrecognizedFormat:
		return fmt.Sprintf("unrecognized due date format: %q", e.Input)
	case KindInvalidWeekday:
		return fmt.Sprintf("invalid weekday %q", e.Token)
	case KindInvalidTimeFormat:
		return fmt.Sprintf("invalid time format %q (use HH:MM)", e.Token)
	case KindInvalidDateFormat:
		return fmt.Sprintf("invalid date format %q (use YYYY-MM-DD)", e.Token)
	case KindInvalidDateOrTime:
		return fmt.Sprintf("invalid date or time format %q", e.Token)
	case KindInvalidDuration:
		if e.Detail != "" {
			return fmt.Sprintf("invalid duration %q: %s", e.Token, e.Detail)
		}
		return fmt.Sprintf("invalid duration %q", e.Token)
	case KindUnsupportedUnit:
		return fmt.Sprintf("unsupported time unit %q", e.Token)
	case KindPastDueDate:
		return fmt.Sprintf("due date %s is in the past", e.Token)
	case KindMalformedCandidate:
		if e.Detail != "" {
			return fmt.Sprintf("failed to parse due date %q: %s", e.Token, e.Detail)
		}
		return fmt.Sprintf("failed to parse due date %q", e.Token)
	}
	return "due date error"
}

// Is reports whether target is an *Error of the same kind, so the package
// sentinels work with errors.Is regardless of token or input.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrEmptyInput         = &Error{Kind: KindEmptyInput}
	ErrUnrecognizedFormat = &Error{Kind: KindUnrecognizedFormat}
	ErrInvalidWeekday     = &Error{Kind: KindInvalidWeekday}
	ErrInvalidTimeFormat  = &Error{Kind: KindInvalidTimeFormat}
	ErrInvalidDateFormat  = &Error{Kind: KindInvalidDateFormat}
	ErrInvalidDateOrTime  = &Error{Kind: KindInvalidDateOrTime}
	ErrInvalidDuration    = &Error{Kind: KindInvalidDuration}
	ErrUnsupportedUnit    = &Error{Kind: KindUnsupportedUnit}
	ErrPastDueDate        = &Error{Kind: KindPastDueDate}
	ErrMalformedCandidate = &Error{Kind: KindMalformedCandidate}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, token string) *Error {
	return &Error{Kind: kind, Token: token}
}
