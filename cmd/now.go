package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// nowLayouts are the accepted --now formats. All but RFC3339 are read in
// the local zone.
var nowLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// nowValue is a pflag.Value holding the pinned reference instant.
type nowValue struct {
	t   time.Time
	set bool
}

var _ pflag.Value = (*nowValue)(nil)

func (v *nowValue) String() string {
	if !v.set {
		return ""
	}
	return v.t.Format(time.RFC3339)
}

// Set parses s; an empty string clears the value.
func (v *nowValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*v = nowValue{}
		return nil
	}
	t, err := parseNow(s)
	if err != nil {
		return err
	}
	v.t, v.set = t, true
	return nil
}

func (v *nowValue) Type() string {
	return "time"
}

func parseNow(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range nowLayouts[1:] {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid reference time %q (use RFC3339 or YYYY-MM-DD HH:MM)", s)
}

// clock returns the reference instant source for interactive commands:
// pinned when --now is set, live otherwise.
func clock() func() time.Time {
	if nowFlag.set {
		t := nowFlag.t
		return func() time.Time { return t }
	}
	return time.Now
}
