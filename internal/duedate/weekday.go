package duedate

import (
	"time"
)

// Weekday counts days from Monday (Monday = 0 ... Sunday = 6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var weekdayLookup = map[string]Weekday{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "unknown"
	}
	return weekdayNames[d]
}

// WeekdayOf returns the weekday of t in t's location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// IsWeekday reports whether name is a known weekday name or abbreviation.
// name must already be lowercase.
func IsWeekday(name string) bool {
	_, ok := weekdayLookup[name]
	return ok
}

// ParseWeekday resolves a lowercase weekday name or abbreviation.
func ParseWeekday(name string) (Weekday, error) {
	d, ok := weekdayLookup[name]
	if !ok {
		return 0, newError(KindInvalidWeekday, name)
	}
	return d, nil
}

// Policy selects how a weekday name maps to a day offset.
type Policy int

const (
	// PolicyBare: "friday". Today's own name rolls to next week.
	PolicyBare Policy = iota
	// PolicyNext: "next friday". Always lands in the following week.
	PolicyNext
	// PolicyThis: "this friday". Today's own name is today; days already
	// gone this week clamp to today.
	PolicyThis
)

func (p Policy) String() string {
	switch p {
	case PolicyNext:
		return "next"
	case PolicyThis:
		return "this"
	default:
		return "bare"
	}
}

// Offset returns the number of days from the current weekday to target.
func (p Policy) Offset(current, target Weekday) int {
	raw := int(target) - int(current)
	switch p {
	case PolicyNext:
		return raw + 7
	case PolicyThis:
		if raw < 0 {
			return 0
		}
		return raw
	default:
		if raw <= 0 {
			return raw + 7
		}
		return raw
	}
}

// resolveWeekday returns the calendar date (midnight in now's location)
// selected by name under policy.
func resolveWeekday(name string, policy Policy, now time.Time) (time.Time, error) {
	target, err := ParseWeekday(name)
	if err != nil {
		return time.Time{}, err
	}
	offset := policy.Offset(WeekdayOf(now), target)
	return startOfDay(now).AddDate(0, 0, offset), nil
}

// weekdayDate handles "<weekday>", "next <weekday>" and "this <weekday>".
func weekdayDate(name string, policy Policy, now time.Time) (string, error) {
	day, err := resolveWeekday(name, policy, now)
	if err != nil {
		return "", err
	}
	return day.Format(DateLayout), nil
}

// weekdayDateTime handles the same shapes followed by an HH:MM token.
func weekdayDateTime(name, clock string, policy Policy, now time.Time) (string, error) {
	day, err := resolveWeekday(name, policy, now)
	if err != nil {
		return "", err
	}
	hour, minute, err := parseClock(clock)
	if err != nil {
		return "", newError(KindInvalidTimeFormat, clock)
	}
	return formatDateTime(day, hour, minute), nil
}
