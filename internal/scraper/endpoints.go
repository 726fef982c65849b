package scraper

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://courses.duytan.edu.vn"

	academicYearPath    = "/Modules/academicprogram/ajax/LoadNamHoc.aspx"
	semesterPath        = "/Modules/academicprogram/ajax/LoadHocKy.aspx"
	academicProgramPath = "/Modules/academicprogram/ajax/LoadCourses.aspx"
	searchPath          = "/Modules/academicprogram/CourseResultSearch.aspx"
	classResultPath     = "/Modules/academicprogram/CourseClassResult.aspx"
)

// Endpoints builds upstream page URLs. Caller-supplied values are percent-encoded.
type Endpoints struct {
	BaseURL string
}

// NewEndpoints returns Endpoints rooted at baseURL, or DefaultBaseURL when empty.
func NewEndpoints(baseURL string) Endpoints {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Endpoints{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (e Endpoints) AcademicYears() string {
	return e.BaseURL + academicYearPath
}

func (e Endpoints) Semesters(academicYearID string) string {
	return fmt.Sprintf("%s%s?namhoc=%s", e.BaseURL, semesterPath, url.QueryEscape(academicYearID))
}

func (e Endpoints) AcademicPrograms() string {
	return e.BaseURL + academicProgramPath
}

// Search matches query anywhere in the course code or name. The wildcard
// stars and the scope value are part of the upstream query syntax.
func (e Endpoints) Search(query, semesterID string) string {
	return fmt.Sprintf("%s%s?keyword2=*%s*&scope=1~3~2&hocky=%s",
		e.BaseURL, searchPath, url.QueryEscape(query), url.QueryEscape(semesterID))
}

// CourseDetail passes the semester id as both semesterid and timespan.
func (e Endpoints) CourseDetail(courseID, semesterID string) string {
	sem := url.QueryEscape(semesterID)
	return fmt.Sprintf("%s%s?courseid=%s&semesterid=%s&timespan=%s",
		e.BaseURL, classResultPath, url.QueryEscape(courseID), sem, sem)
}
