package duedate

import (
	"strings"
	"time"
)

// DueDate is a normalized due date, either "YYYY-MM-DD" or
// "YYYY-MM-DD HH:MM" (24-hour, zero-padded).
type DueDate string

func (d DueDate) String() string {
	return string(d)
}

// HasTime reports whether d carries a time of day.
func (d DueDate) HasTime() bool {
	return strings.Contains(string(d), " ")
}

// Time parses d in loc. Date-only values resolve to midnight.
func (d DueDate) Time(loc *time.Location) (time.Time, error) {
	t, _, err := d.parse(loc)
	return t, err
}

// parse accepts exactly the two output shapes. The length check rejects
// unpadded hours, which time.Parse would otherwise allow. A date-time that
// does not exist in loc (a DST gap) is rejected rather than shifted.
func (d DueDate) parse(loc *time.Location) (t time.Time, hasTime bool, err error) {
	s := string(d)
	switch len(s) {
	case len(DateTimeLayout):
		if t, err = time.ParseInLocation(DateTimeLayout, s, loc); err == nil {
			if t.Format(DateTimeLayout) != s {
				return time.Time{}, false, &Error{Kind: KindMalformedCandidate, Token: s, Detail: "nonexistent local time"}
			}
			return t, true, nil
		}
	case len(DateLayout):
		if t, err = time.ParseInLocation(DateLayout, s, loc); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, newError(KindMalformedCandidate, s)
}

// before compares d against ref. Date-time values compare as instants in
// ref's location; date-only values compare calendar dates, so a date equal
// to ref's date is never before it.
func (d DueDate) before(ref time.Time) (bool, error) {
	t, hasTime, err := d.parse(ref.Location())
	if err != nil {
		return false, err
	}
	if hasTime {
		return t.Before(ref), nil
	}
	return t.Before(startOfDay(ref)), nil
}

// IsOverdue reports whether d has passed at now. Values that are not a
// valid due date are never overdue.
func (d DueDate) IsOverdue(now time.Time) bool {
	past, err := d.before(now)
	return err == nil && past
}

// Validate checks a stored due date: it must have one of the two output
// shapes and must not be earlier than now.
func Validate(candidate string, now time.Time) (DueDate, error) {
	return guard(candidate, now)
}

// guard rejects candidates strictly earlier than now.
func guard(candidate string, now time.Time) (DueDate, error) {
	d := DueDate(candidate)
	past, err := d.before(now)
	if err != nil {
		return "", err
	}
	if past {
		return "", newError(KindPastDueDate, candidate)
	}
	return d, nil
}
