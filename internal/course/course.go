package course

import (
	"strings"

	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

// AcademicYear is one entry of the academic year dropdown.
type AcademicYear struct {
	AcademicYearID string `json:"academicYearId"`
	Name           string `json:"name"`
}

// Semester is one entry of the semester dropdown for an academic year.
type Semester struct {
	SemesterID string `json:"semesterId"`
	Name       string `json:"name"`
}

// AcademicProgram is one entry of the academic program dropdown.
type AcademicProgram struct {
	AcademicProgramID string `json:"academicProgramId"`
	Name              string `json:"name"`
}

// SearchResult is a row of the course search table.
// CourseID and SemesterID are nil when the row's link carries no query string.
type SearchResult struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	CourseID   *string `json:"courseId"`
	SemesterID *string `json:"semesterId"`
}

// Linked reports whether the result carries both identifiers needed to
// request its detail page.
func (r SearchResult) Linked() bool {
	return r.CourseID != nil && *r.CourseID != "" &&
		r.SemesterID != nil && *r.SemesterID != ""
}

// Info is the course summary table keyed by English names where known.
// Labels without a translation keep their Vietnamese text as the key.
type Info map[string]string

// Detail is a course detail page: its summary plus every class offered.
type Detail struct {
	Info    Info            `json:"info"`
	Classes []ClassSchedule `json:"class"`
}

// ClassSchedule is one class row of a course detail page.
type ClassSchedule struct {
	CourseCode         string                              `json:"courseCode"`
	RegistrationCode   string                              `json:"registrationCode"`
	ClassType          string                              `json:"classType"`
	RemainingSlots     string                              `json:"remainingSlots"`
	RegistrationPeriod *RegistrationPeriod                 `json:"registrationPeriod"`
	Weeks              string                              `json:"weeks"`
	Schedule           map[schedule.Day]schedule.TimeRange `json:"schedule"`
	CanceledWeeks      map[schedule.Day][]int              `json:"canceledWeeks"`
	Rooms              string                              `json:"rooms"`
	Location           string                              `json:"location"`
	Lecturer           string                              `json:"lecturer"`
	RegistrationStatus string                              `json:"registrationStatus"`
	DeploymentStatus   string                              `json:"deploymentStatus"`
	StudyPeriod        Period                              `json:"studyPeriod"`
}

// MatchesCode reports whether the class code contains code, ignoring case.
func (c ClassSchedule) MatchesCode(code string) bool {
	return strings.Contains(strings.ToLower(c.CourseCode), strings.ToLower(code))
}

// ParsedSchedule rebuilds the schedule value from the class fields.
func (c ClassSchedule) ParsedSchedule() schedule.Schedule {
	s := schedule.Schedule{
		Times:       c.Schedule,
		CancelWeeks: c.CanceledWeeks,
	}
	if s.Times == nil {
		s.Times = map[schedule.Day]schedule.TimeRange{}
	}
	if s.CancelWeeks == nil {
		s.CancelWeeks = map[schedule.Day][]int{}
	}
	return s
}

// BaseCode strips the trailing section token from a class code so the
// remainder can be used as a search keyword ("CS 246 A" becomes "CS 246").
// Codes without a space are returned unchanged.
func BaseCode(code string) string {
	idx := strings.LastIndex(code, " ")
	if idx < 0 {
		return code
	}
	return code[:idx]
}
