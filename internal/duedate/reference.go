package duedate

import (
	"fmt"
	"sort"
	"strings"
)

// Reference renders the recognized grammar as markdown.
func Reference() string {
	var sb strings.Builder

	sb.WriteString("# Due date formats\n\n")
	sb.WriteString("Input is case-insensitive and split on whitespace. ")
	sb.WriteString("Shapes are tried in order; the first match wins. ")
	sb.WriteString("Results earlier than now are rejected.\n\n")

	sb.WriteString("| # | Shape | Pattern | Example |\n")
	sb.WriteString("|---|-------|---------|---------|\n")
	for i, s := range Shapes() {
		fmt.Fprintf(&sb, "| %d | %s | `%s` | `%s` |\n", i+1, s.Name, escapePipes(s.Pattern), s.Example)
	}

	sb.WriteString("\n## Weekdays\n\n")
	for d := Monday; d <= Sunday; d++ {
		fmt.Fprintf(&sb, "- **%s**: %s\n", d, strings.Join(aliases(weekdayLookup, d, d.String()), ", "))
	}
	sb.WriteString("\n`friday` is the next Friday after today, `next friday` is always in the ")
	sb.WriteString("following week, `this friday` is today if today is Friday.\n")

	sb.WriteString("\n## Units\n\n")
	for u := Second; u <= Year; u++ {
		fmt.Fprintf(&sb, "- **%s**: %s\n", u, strings.Join(aliases(unitLookup, u, u.String()), ", "))
	}
	sb.WriteString("\nA month is 30 days and a year is 365 days. Offsets always include the time of day.\n")

	sb.WriteString("\n## Output\n\n")
	fmt.Fprintf(&sb, "- date: `%s`\n", "YYYY-MM-DD")
	fmt.Fprintf(&sb, "- date and time: `%s`\n", "YYYY-MM-DD HH:MM")

	return sb.String()
}

// keywords are the fixed words of the grammar, excluding weekday and unit
// names.
var keywords = []string{"now", "today", "tomorrow", "tmr", "yesterday", "next", "this", "week", "month", "year", "in"}

// Words lists every word the grammar recognizes: keywords, weekday names
// and unit names with their synonyms. Sorted, no duplicates.
func Words() []string {
	seen := make(map[string]bool)
	for _, w := range keywords {
		seen[w] = true
	}
	for w := range weekdayLookup {
		seen[w] = true
	}
	for w := range unitLookup {
		seen[w] = true
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// aliases lists the names other than canonical that map to v.
func aliases[K comparable](lookup map[string]K, v K, canonical string) []string {
	var out []string
	for name, got := range lookup {
		if got == v && name != canonical {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
