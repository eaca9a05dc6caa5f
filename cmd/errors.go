package cmd

import (
	"errors"

	"github.com/marcus/due/internal/output"
)

// errOverdue signals `overdue --exit-code` without printing anything extra.
var errOverdue = errors.New("due date is overdue")

// reportedError marks an error that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// fail prints err in the active output mode and returns it marked as
// reported. fallback is the JSON code used when err is not a parse error.
func fail(fallback string, err error) error {
	if jsonOutput() {
		output.JSONError(output.ErrorCode(err, fallback), err.Error())
	} else {
		output.Error("%v", err)
	}
	return &reportedError{err: err}
}

// silent returns err marked as reported without printing it.
func silent(err error) error {
	return &reportedError{err: err}
}
