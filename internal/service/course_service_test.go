package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testrequire "github.com/stretchr/testify/require"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

type fakeSource struct {
	years    []course.AcademicYear
	results  []course.SearchResult
	detail   *course.Detail
	err      error
	calls    []string
	searchQ  string
	detailID string
}

func (f *fakeSource) AcademicYears(context.Context) ([]course.AcademicYear, error) {
	f.calls = append(f.calls, "years")
	return f.years, f.err
}

func (f *fakeSource) Semesters(_ context.Context, id string) ([]course.Semester, error) {
	f.calls = append(f.calls, "semesters")
	return []course.Semester{{SemesterID: id + "1"}}, f.err
}

func (f *fakeSource) AcademicPrograms(context.Context) ([]course.AcademicProgram, error) {
	f.calls = append(f.calls, "programs")
	return nil, f.err
}

func (f *fakeSource) SearchCourses(_ context.Context, q, _ string) ([]course.SearchResult, error) {
	f.calls = append(f.calls, "search")
	f.searchQ = q
	return f.results, f.err
}

func (f *fakeSource) CourseDetail(_ context.Context, courseID, _ string) (*course.Detail, error) {
	f.calls = append(f.calls, "detail")
	f.detailID = courseID
	if f.detail == nil {
		return &course.Detail{Info: course.Info{}, Classes: []course.ClassSchedule{}}, f.err
	}
	return f.detail, f.err
}

func strPtr(s string) *string { return &s }

func linkedResult(code string) course.SearchResult {
	return course.SearchResult{Code: code, CourseID: strPtr("55"), SemesterID: strPtr("90")}
}

func detailWith(codes ...string) *course.Detail {
	d := &course.Detail{Info: course.Info{}}
	for _, c := range codes {
		d.Classes = append(d.Classes, course.ClassSchedule{
			CourseCode: c,
			Weeks:      "1--2",
			Schedule: map[schedule.Day]schedule.TimeRange{
				schedule.Tuesday: {Start: "09:15", End: "11:15"},
			},
			StudyPeriod: course.Period{Start: "2026-01-05", End: "2026-01-06"},
		})
	}
	return d
}

func TestCourseService_ValidationBeforeFetch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		call  func(*CourseService) error
		field string
	}{
		{"semesters", func(s *CourseService) error { _, err := s.Semesters(ctx, ""); return err }, "id"},
		{"search query", func(s *CourseService) error { _, err := s.Search(ctx, "", "90"); return err }, "q"},
		{"search semester", func(s *CourseService) error { _, err := s.Search(ctx, "CS", ""); return err }, "semesterId"},
		{"detail course", func(s *CourseService) error { _, err := s.CourseDetail(ctx, "", "90"); return err }, "courseId"},
		{"detail semester", func(s *CourseService) error { _, err := s.CourseDetail(ctx, "1", ""); return err }, "semesterId"},
		{"calendar code", func(s *CourseService) error { _, err := s.CalendarByCourseCode(ctx, "", "90"); return err }, "courseCode"},
		{"calendar semester", func(s *CourseService) error { _, err := s.CalendarByCourseCode(ctx, "CS 211 A", ""); return err }, "semesterId"},
		{"export", func(s *CourseService) error { _, err := s.ExportCalendar(ctx, "", "", time.Time{}); return err }, "courseCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{}
			err := tt.call(NewCourseService(src, nil, nil))

			testrequire.ErrorIs(t, err, ErrInvalidArgument)
			var ve *ValidationError
			testrequire.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, src.calls, "no upstream call expected")
		})
	}
}

func TestCourseService_PassThrough(t *testing.T) {
	src := &fakeSource{years: []course.AcademicYear{{AcademicYearID: "89"}}}
	svc := NewCourseService(src, nil, nil)

	years, err := svc.AcademicYears(context.Background())
	testrequire.NoError(t, err)
	assert.Equal(t, src.years, years)

	semesters, err := svc.Semesters(context.Background(), "89")
	testrequire.NoError(t, err)
	assert.Equal(t, "891", semesters[0].SemesterID)

	upstream := errors.New("boom")
	src.err = upstream
	_, err = svc.AcademicPrograms(context.Background())
	assert.ErrorIs(t, err, upstream)
}

func TestCourseService_CalendarByCourseCode(t *testing.T) {
	src := &fakeSource{
		results: []course.SearchResult{linkedResult("CS 211"), linkedResult("CS 2110")},
		detail:  detailWith("CS 211 A", "CS 211 B"),
	}
	svc := NewCourseService(src, FirstResult{}, nil)

	class, err := svc.CalendarByCourseCode(context.Background(), "cs 211 b", "90")

	testrequire.NoError(t, err)
	assert.Equal(t, "CS 211 B", class.CourseCode)
	assert.Equal(t, "cs 211", src.searchQ)
	assert.Equal(t, "55", src.detailID)
	assert.Equal(t, []string{"search", "detail"}, src.calls)
}

func TestCourseService_CalendarByCourseCode_NotFound(t *testing.T) {
	tests := []struct {
		name      string
		src       *fakeSource
		wantCalls []string
	}{
		{
			name:      "empty search",
			src:       &fakeSource{results: []course.SearchResult{}},
			wantCalls: []string{"search"},
		},
		{
			name:      "unlinked first result",
			src:       &fakeSource{results: []course.SearchResult{{Code: "CS 211"}, linkedResult("CS 211")}},
			wantCalls: []string{"search"},
		},
		{
			name: "no matching class",
			src: &fakeSource{
				results: []course.SearchResult{linkedResult("CS 211")},
				detail:  detailWith("CS 211 A"),
			},
			wantCalls: []string{"search", "detail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCourseService(tt.src, nil, nil)

			class, err := svc.CalendarByCourseCode(context.Background(), "CS 211 C", "90")

			assert.Nil(t, class)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, tt.wantCalls, tt.src.calls)
		})
	}
}

func TestCourseService_CalendarByCourseCode_UpstreamError(t *testing.T) {
	upstream := errors.New("timeout")
	svc := NewCourseService(&fakeSource{err: upstream}, nil, nil)

	_, err := svc.CalendarByCourseCode(context.Background(), "CS 211 A", "90")

	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCourseService_ExportCalendar(t *testing.T) {
	src := &fakeSource{
		results: []course.SearchResult{linkedResult("CS 211")},
		detail:  detailWith("CS 211 A"),
	}
	svc := NewCourseService(src, nil, nil)

	out, err := svc.ExportCalendar(context.Background(), "CS 211 A", "90", time.Time{})

	testrequire.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Equal(t, 2, countEvents(out))
}

func countEvents(out string) int {
	return strings.Count(out, "BEGIN:VEVENT")
}

func TestFirstResult(t *testing.T) {
	_, ok := FirstResult{}.Pick("x", nil)
	assert.False(t, ok)

	got, ok := FirstResult{}.Pick("x", []course.SearchResult{{Code: "A"}, {Code: "B"}})
	assert.True(t, ok)
	assert.Equal(t, "A", got.Code)
}
