package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
)

// Scraper fetches upstream pages and runs the matching extractor. It holds no
// per-request state and is safe for concurrent use.
type Scraper struct {
	fetcher   DocumentFetcher
	endpoints Endpoints
	now       func() time.Time
}

// New creates a Scraper that fetches through fetcher from pages under baseURL.
func New(fetcher DocumentFetcher, baseURL string) *Scraper {
	return &Scraper{
		fetcher:   fetcher,
		endpoints: NewEndpoints(baseURL),
		now:       time.Now,
	}
}

// Endpoints returns the URL builder in use.
func (s *Scraper) Endpoints() Endpoints {
	return s.endpoints
}

// AcademicYears lists the academic years offered by the registration site.
func (s *Scraper) AcademicYears(ctx context.Context) ([]course.AcademicYear, error) {
	doc, err := s.fetcher.Fetch(ctx, s.endpoints.AcademicYears())
	if err != nil {
		return nil, fmt.Errorf("fetching academic years: %w", err)
	}
	return ParseAcademicYears(doc), nil
}

// Semesters lists the semesters of one academic year.
func (s *Scraper) Semesters(ctx context.Context, academicYearID string) ([]course.Semester, error) {
	doc, err := s.fetcher.Fetch(ctx, s.endpoints.Semesters(academicYearID))
	if err != nil {
		return nil, fmt.Errorf("fetching semesters: %w", err)
	}
	return ParseSemesters(doc), nil
}

// AcademicPrograms lists the academic programs.
func (s *Scraper) AcademicPrograms(ctx context.Context) ([]course.AcademicProgram, error) {
	doc, err := s.fetcher.Fetch(ctx, s.endpoints.AcademicPrograms())
	if err != nil {
		return nil, fmt.Errorf("fetching academic programs: %w", err)
	}
	return ParseAcademicPrograms(doc), nil
}

// SearchCourses runs a keyword search within a semester.
func (s *Scraper) SearchCourses(ctx context.Context, query, semesterID string) ([]course.SearchResult, error) {
	doc, err := s.fetcher.Fetch(ctx, s.endpoints.Search(query, semesterID))
	if err != nil {
		return nil, fmt.Errorf("searching courses: %w", err)
	}
	return ParseSearchResults(doc), nil
}

// CourseDetail fetches a course's summary and class schedule.
func (s *Scraper) CourseDetail(ctx context.Context, courseID, semesterID string) (*course.Detail, error) {
	doc, err := s.fetcher.Fetch(ctx, s.endpoints.CourseDetail(courseID, semesterID))
	if err != nil {
		return nil, fmt.Errorf("fetching course detail: %w", err)
	}
	return ParseCourseDetail(doc, s.now()), nil
}
