package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pfrederiksen/dtu-calendar/internal/calendar"
	"github.com/pfrederiksen/dtu-calendar/internal/course"
)

// CourseSource is the upstream the service reads from. *scraper.Scraper
// implements it.
type CourseSource interface {
	AcademicYears(ctx context.Context) ([]course.AcademicYear, error)
	Semesters(ctx context.Context, academicYearID string) ([]course.Semester, error)
	AcademicPrograms(ctx context.Context) ([]course.AcademicProgram, error)
	SearchCourses(ctx context.Context, query, semesterID string) ([]course.SearchResult, error)
	CourseDetail(ctx context.Context, courseID, semesterID string) (*course.Detail, error)
}

// CourseService validates caller input and composes upstream lookups.
type CourseService struct {
	source CourseSource
	picker ResultPicker
	logger *zap.Logger
}

// NewCourseService creates a CourseService. A nil picker means FirstResult
// and a nil logger discards output.
func NewCourseService(source CourseSource, picker ResultPicker, logger *zap.Logger) *CourseService {
	if picker == nil {
		picker = FirstResult{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{source: source, picker: picker, logger: logger}
}

func (s *CourseService) AcademicYears(ctx context.Context) ([]course.AcademicYear, error) {
	return s.source.AcademicYears(ctx)
}

func (s *CourseService) Semesters(ctx context.Context, academicYearID string) ([]course.Semester, error) {
	if err := require("id", academicYearID); err != nil {
		return nil, err
	}
	return s.source.Semesters(ctx, academicYearID)
}

func (s *CourseService) AcademicPrograms(ctx context.Context) ([]course.AcademicProgram, error) {
	return s.source.AcademicPrograms(ctx)
}

func (s *CourseService) Search(ctx context.Context, query, semesterID string) ([]course.SearchResult, error) {
	if err := require("q", query, "semesterId", semesterID); err != nil {
		return nil, err
	}
	return s.source.SearchCourses(ctx, query, semesterID)
}

func (s *CourseService) CourseDetail(ctx context.Context, courseID, semesterID string) (*course.Detail, error) {
	if err := require("courseId", courseID, "semesterId", semesterID); err != nil {
		return nil, err
	}
	return s.source.CourseDetail(ctx, courseID, semesterID)
}

// CalendarByCourseCode resolves a class code such as "CS 211 A" to its
// schedule row. The section token is dropped for the search, the picked
// result's detail page is fetched, and the first class whose code contains
// the full code is returned.
func (s *CourseService) CalendarByCourseCode(ctx context.Context, code, semesterID string) (*course.ClassSchedule, error) {
	if err := require("courseCode", code, "semesterId", semesterID); err != nil {
		return nil, err
	}

	results, err := s.source.SearchCourses(ctx, course.BaseCode(code), semesterID)
	if err != nil {
		return nil, err
	}

	picked, ok := s.picker.Pick(code, results)
	if !ok {
		s.logger.Debug("no search results", zap.String("code", code), zap.String("semester_id", semesterID))
		return nil, fmt.Errorf("%w: no search results for %q", ErrNotFound, code)
	}
	if !picked.Linked() {
		s.logger.Debug("search result has no detail link", zap.String("code", code), zap.String("result", picked.Code))
		return nil, fmt.Errorf("%w: %q has no detail link", ErrNotFound, picked.Code)
	}

	detail, err := s.source.CourseDetail(ctx, *picked.CourseID, *picked.SemesterID)
	if err != nil {
		return nil, err
	}

	for i := range detail.Classes {
		if detail.Classes[i].MatchesCode(code) {
			return &detail.Classes[i], nil
		}
	}

	s.logger.Debug("no class matches code",
		zap.String("code", code),
		zap.Int("classes", len(detail.Classes)))
	return nil, fmt.Errorf("%w: no class matching %q", ErrNotFound, code)
}

// ExportCalendar renders the class matching code as an iCalendar feed.
// weekOne may be zero to start from the class's study period.
func (s *CourseService) ExportCalendar(ctx context.Context, code, semesterID string, weekOne time.Time) (string, error) {
	class, err := s.CalendarByCourseCode(ctx, code, semesterID)
	if err != nil {
		return "", err
	}

	out, err := calendar.Export(class, weekOne, calendar.Options{})
	if err != nil {
		return "", fmt.Errorf("exporting %s: %w", class.CourseCode, err)
	}
	return out, nil
}
