package duedate

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Unit is a duration unit with a fixed length. Months and years are
// approximated as 30 and 365 days.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

const oneDay = 24 * time.Hour

var unitLengths = [...]time.Duration{
	Second: time.Second,
	Minute: time.Minute,
	Hour:   time.Hour,
	Day:    oneDay,
	Week:   7 * oneDay,
	Month:  30 * oneDay,
	Year:   365 * oneDay,
}

var unitNames = [...]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

var unitLookup = map[string]Unit{
	"second":  Second,
	"seconds": Second,
	"sec":     Second,
	"s":       Second,
	"minute":  Minute,
	"minutes": Minute,
	"min":     Minute,
	"m":       Minute,
	"hour":    Hour,
	"hours":   Hour,
	"hr":      Hour,
	"h":       Hour,
	"day":     Day,
	"days":    Day,
	"d":       Day,
	"week":    Week,
	"weeks":   Week,
	"w":       Week,
	"month":   Month,
	"months":  Month,
	"year":    Year,
	"years":   Year,
}

func (u Unit) String() string {
	if u < Second || u > Year {
		return "unknown"
	}
	return unitNames[u]
}

// Length returns the fixed length of one unit.
func (u Unit) Length() time.Duration {
	if u < Second || u > Year {
		return 0
	}
	return unitLengths[u]
}

// LookupUnit resolves a lowercase unit name or synonym.
func LookupUnit(name string) (Unit, bool) {
	u, ok := unitLookup[name]
	return u, ok
}

// maxOffsetSeconds bounds a single component so that sums cannot overflow
// int64 and every result still has to pass the year check in offset.
const maxOffsetSeconds int64 = 10000 * 366 * 24 * 60 * 60

// Duration is an amount of a unit, e.g. 3 hours.
type Duration struct {
	Amount int64
	Unit   Unit
}

// Seconds returns the total length of d in seconds.
func (d Duration) Seconds() int64 {
	return d.Amount * int64(d.Unit.Length()/time.Second)
}

func (d Duration) String() string {
	name := d.Unit.String()
	if d.Amount != 1 {
		name += "s"
	}
	return strconv.FormatInt(d.Amount, 10) + " " + name
}

// ParseDuration parses one "<number> <unit>" component. The amount is
// checked before the unit.
func ParseDuration(amount, unit string) (Duration, error) {
	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		detail := "not a number"
		if errors.Is(err, strconv.ErrRange) {
			detail = "too large"
		}
		return Duration{}, &Error{Kind: KindInvalidDuration, Token: amount, Detail: detail}
	}
	if n < 0 {
		return Duration{}, &Error{Kind: KindInvalidDuration, Token: amount, Detail: "cannot be negative"}
	}

	u, ok := LookupUnit(unit)
	if !ok {
		return Duration{}, newError(KindUnsupportedUnit, unit)
	}

	if n > maxOffsetSeconds/int64(u.Length()/time.Second) {
		return Duration{}, &Error{Kind: KindInvalidDuration, Token: amount, Detail: "too large"}
	}
	return Duration{Amount: n, Unit: u}, nil
}

// offset parses (amount, unit) pairs from tokens, sums them and adds the
// total to now once. The result always carries a time of day.
func offset(tokens []string, now time.Time) (string, error) {
	var total int64
	for i := 0; i+1 < len(tokens); i += 2 {
		d, err := ParseDuration(tokens[i], tokens[i+1])
		if err != nil {
			return "", err
		}
		total += d.Seconds()
	}

	due := time.Unix(now.Unix()+total, int64(now.Nanosecond())).In(now.Location())
	if due.Year() > 9999 {
		return "", &Error{
			Kind:   KindInvalidDuration,
			Token:  strings.Join(tokens, " "),
			Detail: "out of range",
		}
	}
	return due.Format(DateTimeLayout), nil
}
