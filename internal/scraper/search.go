package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
)

// searchHeaderRows is the number of leading <tr> elements on the search
// results page that hold headings rather than courses. Skipped by position.
const searchHeaderRows = 2

var parentDirPrefix = regexp.MustCompile(`^(\.\./)+`)

// ParseSearchResults extracts one result per course row. Rows whose link has
// no query string get nil identifiers.
func ParseSearchResults(doc *goquery.Document) []course.SearchResult {
	results := make([]course.SearchResult, 0)

	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i < searchHeaderRows {
			return
		}

		cells := row.Find("td")
		href, _ := cells.Eq(0).Find("a").Attr("href")
		courseID, semesterID := linkIDs(href)

		results = append(results, course.SearchResult{
			Code:       cellText(cells, 0),
			Name:       cellText(cells, 1),
			CourseID:   courseID,
			SemesterID: semesterID,
		})
	})

	return results
}

// linkIDs reads courseid and timespan from a relative course link such as
// "../../CourseClassResult.aspx?courseid=12&timespan=80".
func linkIDs(href string) (courseID, semesterID *string) {
	cleaned := parentDirPrefix.ReplaceAllString(href, "")

	_, query, found := strings.Cut(cleaned, "?")
	if !found {
		return nil, nil
	}
	query, _, _ = strings.Cut(query, "?")

	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(query)
	return queryValue(values, "courseid"), queryValue(values, "timespan")
}

func queryValue(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}
