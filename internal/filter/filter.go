// Package filter narrows a course's class list by meeting day, class type,
// lecturer, location and free slots.
//
// Example usage:
//
//	// Monday or Thursday lab sections that still have seats
//	f := filter.NewFilter()
//	f.Days = []schedule.Day{schedule.Monday, schedule.Thursday}
//	f.ClassTypes = []string{"LAB"}
//	f.WithSlots = true
//
//	classes := f.Apply(detail.Classes)
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

// Filter represents class filtering criteria
type Filter struct {
	// Meeting days; a class matches if it meets on at least one of them
	Days []schedule.Day `json:"days,omitempty"`

	// Class type filtering (case-insensitive exact match, e.g. LEC, LAB)
	ClassTypes []string `json:"class_types,omitempty"`

	// Lecturer filtering (case-insensitive substring match)
	Lecturers []string `json:"lecturers,omitempty"`

	// Location filtering against rooms and campus (case-insensitive substring match)
	Locations []string `json:"locations,omitempty"`

	// Only classes whose remaining-slot count is a positive number
	WithSlots bool `json:"with_slots,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all classes until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Days:       []schedule.Day{},
		ClassTypes: []string{},
		Lecturers:  []string{},
		Locations:  []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Days) == 0 &&
		len(f.ClassTypes) == 0 &&
		len(f.Lecturers) == 0 &&
		len(f.Locations) == 0 &&
		!f.WithSlots
}

// Matches checks if a class matches all active filter criteria.
// An empty filter matches all classes.
//
// Matching logic:
//   - Days: the class must meet on at least one listed day
//   - ClassTypes: the class type must equal one of the types
//   - Lecturers: the lecturer must contain one of the names
//   - Locations: rooms or location must contain one of the values
//   - WithSlots: remaining slots must parse as a number above zero
func (f *Filter) Matches(c *course.ClassSchedule) bool {
	if f.IsEmpty() {
		return true
	}

	if len(f.Days) > 0 {
		matched := false
		for _, d := range f.Days {
			if _, ok := c.Schedule[d]; ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.ClassTypes) > 0 {
		matched := false
		for _, t := range f.ClassTypes {
			if strings.EqualFold(c.ClassType, t) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Lecturers) > 0 && !containsAny(c.Lecturer, f.Lecturers) {
		return false
	}

	if len(f.Locations) > 0 && !containsAny(c.Rooms+" "+c.Location, f.Locations) {
		return false
	}

	if f.WithSlots {
		n, err := strconv.Atoi(strings.TrimSpace(c.RemainingSlots))
		if err != nil || n <= 0 {
			return false
		}
	}

	return true
}

// Apply returns the classes that match. If the filter is empty, returns the
// original list unchanged.
func (f *Filter) Apply(classes []course.ClassSchedule) []course.ClassSchedule {
	if f.IsEmpty() {
		return classes
	}

	filtered := make([]course.ClassSchedule, 0, len(classes))
	for i := range classes {
		if f.Matches(&classes[i]) {
			filtered = append(filtered, classes[i])
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "Days: T2, T5 | Types: LAB | With free slots"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Days) > 0 {
		days := make([]string, len(f.Days))
		for i, d := range f.Days {
			days[i] = string(d)
		}
		parts = append(parts, fmt.Sprintf("Days: %s", strings.Join(days, ", ")))
	}

	if len(f.ClassTypes) > 0 {
		parts = append(parts, fmt.Sprintf("Types: %s", strings.Join(f.ClassTypes, ", ")))
	}

	if len(f.Lecturers) > 0 {
		parts = append(parts, fmt.Sprintf("Lecturers: %s", strings.Join(f.Lecturers, ", ")))
	}

	if len(f.Locations) > 0 {
		parts = append(parts, fmt.Sprintf("Locations: %s", strings.Join(f.Locations, ", ")))
	}

	if f.WithSlots {
		parts = append(parts, "With free slots")
	}

	return strings.Join(parts, " | ")
}

func containsAny(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
