package service

import "github.com/pfrederiksen/dtu-calendar/internal/course"

// ResultPicker chooses which search hit a course code refers to.
type ResultPicker interface {
	Pick(code string, results []course.SearchResult) (course.SearchResult, bool)
}

// FirstResult takes the first hit regardless of code. Upstream ranks exact
// code matches first for the queries this service issues.
type FirstResult struct{}

func (FirstResult) Pick(_ string, results []course.SearchResult) (course.SearchResult, bool) {
	if len(results) == 0 {
		return course.SearchResult{}, false
	}
	return results[0], true
}
