package duedate

import (
	"fmt"
	"strings"
	"time"
)

// Output layouts. A due date is always one of these two shapes.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Input layouts are looser than the output ones: month, day and hour may
// be unpadded.
const (
	isoDateInput = "2006-1-2"
	clockInput   = "15:04"
	hourInput    = "15"
)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// formatDateTime writes the wall clock directly so that a time falling in a
// DST gap is kept as typed; the guard then rejects it.
func formatDateTime(day time.Time, hour, minute int) string {
	return fmt.Sprintf("%s %02d:%02d", day.Format(DateLayout), hour, minute)
}

func parseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateInput, s)
}

func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(clockInput, s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// parseTwelveHour accepts "3:30pm", "12:00am" and the hour-only "5pm".
func parseTwelveHour(s string) (hour, minute int, ok bool) {
	var pm bool
	switch {
	case strings.HasSuffix(s, "pm"):
		pm = true
	case strings.HasSuffix(s, "am"):
	default:
		return 0, 0, false
	}

	clock := strings.TrimSpace(s[:len(s)-2])
	hour, minute, err := parseClock(clock)
	if err != nil {
		t, herr := time.Parse(hourInput, clock)
		if herr != nil {
			return 0, 0, false
		}
		hour, minute = t.Hour(), 0
	}

	if pm && hour < 12 {
		hour += 12
	} else if !pm && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}

// dateOrTime normalizes a single token. Attempts run in priority order:
// full ISO date, month-day in the reference year, 24-hour clock today,
// 12-hour clock today.
func dateOrTime(token string, now time.Time) (string, error) {
	if d, err := parseISODate(token); err == nil {
		return d.Format(DateLayout), nil
	}

	if d, err := parseISODate(fmt.Sprintf("%d-%s", now.Year(), token)); err == nil {
		return d.Format(DateLayout), nil
	}

	today := startOfDay(now)
	if hour, minute, err := parseClock(token); err == nil {
		return formatDateTime(today, hour, minute), nil
	}

	if hour, minute, ok := parseTwelveHour(token); ok {
		return formatDateTime(today, hour, minute), nil
	}

	return "", newError(KindInvalidDateOrTime, token)
}

// dateTime normalizes "<YYYY-MM-DD> <HH:MM>". Both halves must be strict
// ISO / 24-hour.
func dateTime(dateToken, clockToken string) (string, error) {
	d, err := parseISODate(dateToken)
	if err != nil {
		return "", newError(KindInvalidDateFormat, dateToken)
	}
	hour, minute, err := parseClock(clockToken)
	if err != nil {
		return "", newError(KindInvalidTimeFormat, clockToken)
	}
	return formatDateTime(d, hour, minute), nil
}
