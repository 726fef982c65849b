package cli

import (
	"testing"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
)

func codes(results []course.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Code
	}
	return out
}

func TestSortResults(t *testing.T) {
	base := []course.SearchResult{
		{Code: "CS 2110", Name: "Beta"},
		{Code: "ENG 116", Name: "alpha"},
		{Code: "CS 211", Name: "Beta"},
	}

	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortNone, []string{"CS 2110", "ENG 116", "CS 211"}},
		{SortByCode, []string{"CS 211", "CS 2110", "ENG 116"}},
		{SortByName, []string{"ENG 116", "CS 211", "CS 2110"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			results := append([]course.SearchResult(nil), base...)
			sortResults(results, tt.order)

			got := codes(results)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("sortResults(%s) = %v, want %v", tt.order, got, tt.want)
				}
			}
		})
	}
}

func TestSortOrder_Valid(t *testing.T) {
	for _, o := range []SortOrder{SortNone, SortByCode, SortByName} {
		if !o.Valid() {
			t.Errorf("%s should be valid", o)
		}
	}
	if SortOrder("date").Valid() {
		t.Error("date should not be valid")
	}
}
