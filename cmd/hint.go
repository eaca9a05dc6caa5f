package cmd

import (
	"errors"
	"strings"
	"unicode"

	"github.com/marcus/due/internal/duedate"
	"github.com/marcus/due/internal/output"
	"github.com/marcus/due/internal/suggest"
)

// suggestions proposes grammar words for misspelled tokens in a failed
// expression.
func suggestions(err error) []string {
	var perr *duedate.Error
	if !errors.As(err, &perr) {
		return nil
	}
	switch perr.Kind {
	case duedate.KindEmptyInput, duedate.KindPastDueDate, duedate.KindMalformedCandidate:
		return nil
	}

	words := duedate.Words()
	known := make(map[string]bool, len(words))
	for _, w := range words {
		known[w] = true
	}

	var out []string
	for _, tok := range strings.Fields(strings.ToLower(perr.Input)) {
		if known[tok] || !isWord(tok) {
			continue
		}
		out = append(out, suggest.Closest(tok, words, 1)...)
	}
	return out
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// failParse reports a parse error with "did you mean" hints.
func failParse(err error) error {
	hints := suggestions(err)
	if jsonOutput() {
		var details map[string]interface{}
		if len(hints) > 0 {
			details = map[string]interface{}{"suggestions": hints}
		}
		output.JSONErrorWithDetails(output.ErrorCode(err, output.ErrCodeInvalidInput), err.Error(), details)
	} else {
		output.Error("%v", err)
		if len(hints) > 0 {
			output.Info("Did you mean: %s?", strings.Join(hints, ", "))
		}
	}
	return &reportedError{err: err}
}
