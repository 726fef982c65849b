package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// CancelMarker separates the meeting times from the cancelled weeks.
const CancelMarker = "Tuần hủy:"

// Day is a day token in the upstream convention ("T2" is Monday).
type Day string

const (
	Monday    Day = "T2"
	Tuesday   Day = "T3"
	Wednesday Day = "T4"
	Thursday  Day = "T5"
	Friday    Day = "T6"
	Saturday  Day = "T7"
)

// Days lists every valid day token in week order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Valid reports whether d belongs to the T2..T7 alphabet.
func (d Day) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// Weekday converts the token to a time.Weekday.
func (d Day) Weekday() time.Weekday {
	if !d.Valid() {
		return time.Sunday
	}
	return time.Weekday(d[1] - '1')
}

// Offset returns the number of days after Monday.
func (d Day) Offset() int {
	return int(d.Weekday()) - int(time.Monday)
}

// TimeRange is a start/end pair as written upstream, e.g. "07:00".
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Schedule is the parsed content of a study-hours cell.
type Schedule struct {
	Times       map[Day]TimeRange `json:"times"`
	CancelWeeks map[Day][]int     `json:"cancelWeeks"`
}

var (
	timePattern   = regexp.MustCompile(`(T[2-7]):\s*([\d:]+)\s*-\s*([\d:]+)`)
	cancelPattern = regexp.MustCompile(`(T[2-7]):\s*Hủy\s*([\d,\s]+)`)
	leadingDigits = regexp.MustCompile(`^\d+`)
)

// Parse extracts weekly meeting times and cancelled weeks from raw.
//
// A day that appears more than once keeps its last occurrence. Week lists
// keep the written order, duplicates included.
func Parse(raw string) Schedule {
	result := Schedule{
		Times:       make(map[Day]TimeRange),
		CancelWeeks: make(map[Day][]int),
	}

	parts := strings.Split(norm.NFC.String(raw), CancelMarker)

	for _, m := range timePattern.FindAllStringSubmatch(parts[0], -1) {
		result.Times[Day(m[1])] = TimeRange{Start: m[2], End: m[3]}
	}

	if len(parts) < 2 {
		return result
	}

	for _, m := range cancelPattern.FindAllStringSubmatch(parts[1], -1) {
		result.CancelWeeks[Day(m[1])] = parseWeeks(m[2])
	}

	return result
}

// parseWeeks reads a comma-separated week list. Each token contributes its
// leading integer; tokens without one are dropped.
func parseWeeks(list string) []int {
	weeks := make([]int, 0)
	for _, token := range strings.Split(list, ",") {
		digits := leadingDigits.FindString(strings.TrimSpace(token))
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n <= 0 {
			continue
		}
		weeks = append(weeks, n)
	}
	return weeks
}

// IsCancelled reports whether week is listed as cancelled for day.
func (s Schedule) IsCancelled(day Day, week int) bool {
	for _, w := range s.CancelWeeks[day] {
		if w == week {
			return true
		}
	}
	return false
}
