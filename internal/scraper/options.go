package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
)

// optionHeaderCount is the number of leading placeholder <option> elements
// ("-- Chọn --") in every dropdown page. They are skipped by position, so an
// upstream markup change that drops the placeholder would lose a real entry.
const optionHeaderCount = 1

type option struct {
	value string
	text  string
}

// parseOptions returns every <option> after the placeholder.
func parseOptions(doc *goquery.Document) []option {
	opts := make([]option, 0)
	doc.Find("option").Each(func(i int, sel *goquery.Selection) {
		if i < optionHeaderCount {
			return
		}
		text := strings.TrimSpace(sel.Text())
		value, ok := sel.Attr("value")
		if !ok {
			value = text
		}
		opts = append(opts, option{value: value, text: text})
	})
	return opts
}

// ParseAcademicYears extracts the academic year dropdown.
func ParseAcademicYears(doc *goquery.Document) []course.AcademicYear {
	opts := parseOptions(doc)
	years := make([]course.AcademicYear, 0, len(opts))
	for _, o := range opts {
		years = append(years, course.AcademicYear{AcademicYearID: o.value, Name: o.text})
	}
	return years
}

// ParseSemesters extracts the semester dropdown of one academic year.
func ParseSemesters(doc *goquery.Document) []course.Semester {
	opts := parseOptions(doc)
	semesters := make([]course.Semester, 0, len(opts))
	for _, o := range opts {
		semesters = append(semesters, course.Semester{SemesterID: o.value, Name: o.text})
	}
	return semesters
}

// ParseAcademicPrograms extracts the academic program dropdown.
func ParseAcademicPrograms(doc *goquery.Document) []course.AcademicProgram {
	opts := parseOptions(doc)
	programs := make([]course.AcademicProgram, 0, len(opts))
	for _, o := range opts {
		programs = append(programs, course.AcademicProgram{AcademicProgramID: o.value, Name: o.text})
	}
	return programs
}
