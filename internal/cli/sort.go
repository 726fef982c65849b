package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
)

// SortOrder represents the available sorting options for search results
type SortOrder string

const (
	SortNone   SortOrder = "none"
	SortByCode SortOrder = "code"
	SortByName SortOrder = "name"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	switch o {
	case SortNone, SortByCode, SortByName:
		return true
	}
	return false
}

// sortResults sorts search results in place. SortNone keeps upstream order,
// which is what the calendar lookup relies on.
func sortResults(results []course.SearchResult, order SortOrder) {
	switch order {
	case SortByCode:
		sort.SliceStable(results, func(i, j int) bool {
			return compareCodes(results[i].Code, results[j].Code)
		})
	case SortByName:
		sort.SliceStable(results, func(i, j int) bool {
			ni, nj := strings.ToLower(results[i].Name), strings.ToLower(results[j].Name)
			if ni != nj {
				return ni < nj
			}
			// If names are equal, sort by code
			return compareCodes(results[i].Code, results[j].Code)
		})
	}
}

// compareCodes orders "CS 211" before "CS 2110": prefix first, then the
// numeric part by length and value.
func compareCodes(a, b string) bool {
	pa, na, _ := strings.Cut(strings.ToUpper(a), " ")
	pb, nb, _ := strings.Cut(strings.ToUpper(b), " ")
	if pa != pb {
		return pa < pb
	}
	if len(na) != len(nb) {
		return len(na) < len(nb)
	}
	return na < nb
}
