package filter

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

// dayNames maps the accepted spellings of a teaching day to its token.
var dayNames = map[string]schedule.Day{
	"t2": schedule.Monday, "2": schedule.Monday, "mon": schedule.Monday, "monday": schedule.Monday,
	"t3": schedule.Tuesday, "3": schedule.Tuesday, "tue": schedule.Tuesday, "tuesday": schedule.Tuesday,
	"t4": schedule.Wednesday, "4": schedule.Wednesday, "wed": schedule.Wednesday, "wednesday": schedule.Wednesday,
	"t5": schedule.Thursday, "5": schedule.Thursday, "thu": schedule.Thursday, "thursday": schedule.Thursday,
	"t6": schedule.Friday, "6": schedule.Friday, "fri": schedule.Friday, "friday": schedule.Friday,
	"t7": schedule.Saturday, "7": schedule.Saturday, "sat": schedule.Saturday, "saturday": schedule.Saturday,
}

// ParseDays parses a comma-separated day list such as "T2,T5", "2,5" or
// "mon,thu" into day tokens. Duplicates are dropped; order is kept.
func ParseDays(input string) ([]schedule.Day, error) {
	days := make([]schedule.Day, 0)
	seen := make(map[schedule.Day]bool)

	for _, part := range strings.Split(input, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		d, ok := dayNames[name]
		if !ok {
			return nil, fmt.Errorf("invalid day %q: use T2..T7, 2..7 or mon..sat", strings.TrimSpace(part))
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	return days, nil
}

// ParseList splits a comma-separated flag value, trimming and dropping empty
// entries.
func ParseList(input string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
