// Package duedate parses natural-language due-date expressions such as
// "tomorrow", "next friday 15:30", "in 2 days 3 hours", "03-15" or "5pm"
// into a normalized due date, rejecting results in the past.
//
// Parsing is a pure function of the input and a caller-supplied reference
// instant; the package holds no mutable state and is safe for concurrent
// use.
package duedate

import (
	"strings"
	"time"
)

// Result describes a successful parse.
type Result struct {
	Input string  `json:"input"`
	Shape string  `json:"shape"`
	Due   DueDate `json:"due"`
}

// Parse parses input relative to the current local time. time.Now is
// sampled once and used for both normalization and the past-date check.
func Parse(input string) (DueDate, error) {
	return ParseFrom(input, time.Now())
}

// ParseFrom parses input relative to now. The result is never earlier than
// now.
func ParseFrom(input string, now time.Time) (DueDate, error) {
	res, err := Explain(input, now)
	if err != nil {
		return "", err
	}
	return res.Due, nil
}

// Explain parses input like ParseFrom and also reports which grammar shape
// matched.
func Explain(input string, now time.Time) (Result, error) {
	normalized := strings.TrimSpace(strings.ToLower(input))
	if normalized == "" {
		return Result{}, &Error{Kind: KindEmptyInput, Input: input}
	}

	tokens := strings.Fields(normalized)
	for _, s := range shapes {
		if !s.match(tokens) {
			continue
		}
		raw, err := s.resolve(tokens, now)
		if err == nil {
			var due DueDate
			due, err = guard(raw, now)
			if err == nil {
				return Result{Input: input, Shape: s.name, Due: due}, nil
			}
		}
		return Result{}, withInput(err, input)
	}
	return Result{}, &Error{Kind: KindUnrecognizedFormat, Input: input}
}

func withInput(err error, input string) error {
	if e, ok := err.(*Error); ok && e.Input == "" {
		e.Input = input
	}
	return err
}

// shape is one grammar production: a token-count/content predicate and the
// resolver that produces a raw candidate for the guard.
type shape struct {
	name    string
	pattern string
	example string
	match   func(tok []string) bool
	resolve func(tok []string, now time.Time) (string, error)
}

// ShapeInfo documents a grammar shape.
type ShapeInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Example string `json:"example"`
}

// Shapes lists the recognized grammar shapes in match order.
func Shapes() []ShapeInfo {
	out := make([]ShapeInfo, len(shapes))
	for i, s := range shapes {
		out[i] = ShapeInfo{Name: s.name, Pattern: s.pattern, Example: s.example}
	}
	return out
}

// shapes is tried top to bottom and the first match wins. Order matters:
// weekday names are claimed before the generic date-or-time token, and
// "<weekday> <time>" / "<date> <time>" before "<num> <unit>".
var shapes = []shape{
	{
		name: "now", pattern: "now", example: "now",
		match: func(t []string) bool { return is(t, "now") },
		resolve: func(_ []string, now time.Time) (string, error) {
			return now.Format(DateTimeLayout), nil
		},
	},
	{
		name: "today", pattern: "today", example: "today",
		match:   func(t []string) bool { return is(t, "today") },
		resolve: daysFromToday(0),
	},
	{
		name: "tomorrow", pattern: "tomorrow | tmr", example: "tmr",
		match:   func(t []string) bool { return is(t, "tomorrow") || is(t, "tmr") },
		resolve: daysFromToday(1),
	},
	{
		name: "yesterday", pattern: "yesterday", example: "yesterday",
		match:   func(t []string) bool { return is(t, "yesterday") },
		resolve: daysFromToday(-1),
	},
	{
		name: "weekday", pattern: "<weekday>", example: "friday",
		match: func(t []string) bool { return len(t) == 1 && IsWeekday(t[0]) },
		resolve: func(t []string, now time.Time) (string, error) {
			return weekdayDate(t[0], PolicyBare, now)
		},
	},
	{
		name: "next-weekday", pattern: "next <weekday>", example: "next fri",
		match: func(t []string) bool { return len(t) == 2 && t[0] == "next" && IsWeekday(t[1]) },
		resolve: func(t []string, now time.Time) (string, error) {
			return weekdayDate(t[1], PolicyNext, now)
		},
	},
	{
		name: "this-weekday", pattern: "this <weekday>", example: "this friday",
		match: func(t []string) bool { return len(t) == 2 && t[0] == "this" && IsWeekday(t[1]) },
		resolve: func(t []string, now time.Time) (string, error) {
			return weekdayDate(t[1], PolicyThis, now)
		},
	},
	{
		name: "week", pattern: "week | next week", example: "next week",
		match:   func(t []string) bool { return is(t, "week") || is(t, "next", "week") },
		resolve: daysFromToday(7),
	},
	{
		name: "month", pattern: "month | next month", example: "next month",
		match:   func(t []string) bool { return is(t, "month") || is(t, "next", "month") },
		resolve: daysFromToday(30),
	},
	{
		name: "year", pattern: "year | next year", example: "next year",
		match:   func(t []string) bool { return is(t, "year") || is(t, "next", "year") },
		resolve: daysFromToday(365),
	},
	{
		name: "in-offset", pattern: "in <num> <unit>", example: "in 2 hours",
		match: func(t []string) bool { return len(t) == 3 && t[0] == "in" },
		resolve: func(t []string, now time.Time) (string, error) {
			return offset(t[1:], now)
		},
	},
	{
		name: "in-compound-offset", pattern: "in <num> <unit> <num> <unit>", example: "in 1 day 3 hours",
		match: func(t []string) bool { return len(t) == 5 && t[0] == "in" },
		resolve: func(t []string, now time.Time) (string, error) {
			return offset(t[1:], now)
		},
	},
	{
		name: "weekday-time", pattern: "<weekday> <HH:MM>", example: "friday 15:30",
		match: func(t []string) bool { return len(t) == 2 && IsWeekday(t[0]) },
		resolve: func(t []string, now time.Time) (string, error) {
			return weekdayDateTime(t[0], t[1], PolicyBare, now)
		},
	},
	{
		name: "date-time", pattern: "<YYYY-MM-DD> <HH:MM>", example: "2099-01-01 09:00",
		match: func(t []string) bool {
			return len(t) == 2 && strings.Contains(t[0], "-") && strings.Contains(t[1], ":")
		},
		resolve: func(t []string, _ time.Time) (string, error) {
			return dateTime(t[0], t[1])
		},
	},
	{
		name: "offset", pattern: "<num> <unit>", example: "3 days",
		match: func(t []string) bool { return len(t) == 2 },
		resolve: func(t []string, now time.Time) (string, error) {
			return offset(t, now)
		},
	},
	{
		name: "compound-offset", pattern: "<num> <unit> <num> <unit>", example: "1 day 3 hours",
		match: func(t []string) bool { return len(t) == 4 },
		resolve: func(t []string, now time.Time) (string, error) {
			return offset(t, now)
		},
	},
	{
		name: "date-or-time", pattern: "<YYYY-MM-DD> | <MM-DD> | <HH:MM> | <HH:MM>am/pm", example: "03-15",
		match: func(t []string) bool { return len(t) == 1 },
		resolve: func(t []string, now time.Time) (string, error) {
			return dateOrTime(t[0], now)
		},
	},
	{
		name: "next-weekday-time", pattern: "next <weekday> <HH:MM>", example: "next friday 15:30",
		match: func(t []string) bool { return len(t) == 3 && t[0] == "next" && IsWeekday(t[1]) },
		resolve: func(t []string, now time.Time) (string, error) {
			return weekdayDateTime(t[1], t[2], PolicyNext, now)
		},
	},
	{
		name: "this-weekday-time", pattern: "this <weekday> <HH:MM>", example: "this fri 09:00",
		match: func(t []string) bool { return len(t) == 3 && t[0] == "this" && IsWeekday(t[1]) },
		resolve: func(t []string, now time.Time) (string, error) {
			return weekdayDateTime(t[1], t[2], PolicyThis, now)
		},
	},
}

// is reports whether tokens equal words exactly.
func is(tokens []string, words ...string) bool {
	if len(tokens) != len(words) {
		return false
	}
	for i, w := range words {
		if tokens[i] != w {
			return false
		}
	}
	return true
}

func daysFromToday(n int) func([]string, time.Time) (string, error) {
	return func(_ []string, now time.Time) (string, error) {
		return startOfDay(now).AddDate(0, 0, n).Format(DateLayout), nil
	}
}
