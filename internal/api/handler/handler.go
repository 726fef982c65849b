package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pfrederiksen/dtu-calendar/internal/api/middleware"
	"github.com/pfrederiksen/dtu-calendar/internal/api/response"
	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/logger"
	"github.com/pfrederiksen/dtu-calendar/internal/service"
)

// CourseLookup is the subset of *service.CourseService the handlers call.
type CourseLookup interface {
	AcademicYears(ctx context.Context) ([]course.AcademicYear, error)
	Semesters(ctx context.Context, academicYearID string) ([]course.Semester, error)
	AcademicPrograms(ctx context.Context) ([]course.AcademicProgram, error)
	Search(ctx context.Context, query, semesterID string) ([]course.SearchResult, error)
	CourseDetail(ctx context.Context, courseID, semesterID string) (*course.Detail, error)
	CalendarByCourseCode(ctx context.Context, code, semesterID string) (*course.ClassSchedule, error)
	ExportCalendar(ctx context.Context, code, semesterID string, weekOne time.Time) (string, error)
}

const (
	msgSemesterOK        = "Get semester successfully"
	msgAcademicYearOK    = "Get academic year successfully"
	msgAcademicProgramOK = "Get academic program successfully"
	msgSubjectsOK        = "Subjects found successfully"

	msgMissingID             = "Missing id"
	msgMissingQuery          = "Missing query or semester"
	msgMissingCourseDetail   = "Missing courseId or semesterId"
	msgMissingCourseCalendar = "Missing courseCode or semesterId"
	msgInvalidStart          = "Invalid start date"
	msgCourseNotFound        = "Course not found"

	msgSemesterFailed        = "Failed to get semester"
	msgAcademicYearFailed    = "Failed to get academic year"
	msgAcademicProgramFailed = "Failed to get academic program"
	msgSearchFailed          = "Failed to search subjects"
	msgExportFailed          = "Failed to export calendar"
)

// CourseHandler serves the scraping routes.
type CourseHandler struct {
	courses CourseLookup
	logger  *zap.Logger
}

func NewCourseHandler(courses CourseLookup, log *zap.Logger) *CourseHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CourseHandler{courses: courses, logger: log}
}

// GetSemester GET /semester?id=
func (h *CourseHandler) GetSemester(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, msgMissingID)
		return
	}

	semesters, err := h.courses.Semesters(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, msgMissingID, msgSemesterFailed)
		return
	}
	response.OK(c, msgSemesterOK, semesters)
}

// GetAcademicYear GET /academicYear
func (h *CourseHandler) GetAcademicYear(c *gin.Context) {
	years, err := h.courses.AcademicYears(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", msgAcademicYearFailed)
		return
	}
	response.OK(c, msgAcademicYearOK, years)
}

// GetAcademicProgram GET /academicProgram
func (h *CourseHandler) GetAcademicProgram(c *gin.Context) {
	programs, err := h.courses.AcademicPrograms(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", msgAcademicProgramFailed)
		return
	}
	response.OK(c, msgAcademicProgramOK, programs)
}

// SearchCourses GET /search?q=&semesterId=
func (h *CourseHandler) SearchCourses(c *gin.Context) {
	query, semesterID := c.Query("q"), c.Query("semesterId")
	if query == "" || semesterID == "" {
		response.BadRequest(c, msgMissingQuery)
		return
	}

	results, err := h.courses.Search(c.Request.Context(), query, semesterID)
	if err != nil {
		h.fail(c, err, msgMissingQuery, msgSearchFailed)
		return
	}
	response.OK(c, msgSubjectsOK, results)
}

// ListCourseDetail GET /listCourseDetail?courseId=&semesterId=
func (h *CourseHandler) ListCourseDetail(c *gin.Context) {
	courseID, semesterID := c.Query("courseId"), c.Query("semesterId")
	if courseID == "" || semesterID == "" {
		response.BadRequest(c, msgMissingCourseDetail)
		return
	}

	detail, err := h.courses.CourseDetail(c.Request.Context(), courseID, semesterID)
	if err != nil {
		h.fail(c, err, msgMissingCourseDetail, msgSearchFailed)
		return
	}
	response.OK(c, msgSubjectsOK, detail)
}

// GetCalendar GET /calendar/:courseCode?semesterId=
func (h *CourseHandler) GetCalendar(c *gin.Context) {
	code, semesterID := c.Param("courseCode"), c.Query("semesterId")
	if code == "" || semesterID == "" {
		response.BadRequest(c, msgMissingCourseCalendar)
		return
	}

	class, err := h.courses.CalendarByCourseCode(c.Request.Context(), code, semesterID)
	if err != nil {
		h.fail(c, err, msgMissingCourseCalendar, msgSearchFailed)
		return
	}
	response.OK(c, msgSubjectsOK, class)
}

// ExportCalendar GET /calendar/:courseCode/ics?semesterId=&start=YYYY-MM-DD
func (h *CourseHandler) ExportCalendar(c *gin.Context) {
	code, semesterID := c.Param("courseCode"), c.Query("semesterId")
	if code == "" || semesterID == "" {
		response.BadRequest(c, msgMissingCourseCalendar)
		return
	}

	var weekOne time.Time
	if start := c.Query("start"); start != "" {
		t, err := time.Parse(course.DateLayout, start)
		if err != nil {
			response.BadRequest(c, msgInvalidStart)
			return
		}
		weekOne = t
	}

	out, err := h.courses.ExportCalendar(c.Request.Context(), code, semesterID, weekOne)
	if err != nil {
		h.fail(c, err, msgMissingCourseCalendar, msgExportFailed)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+icsFilename(code)+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
}

// fail maps a service error onto the envelope. The cause is only logged.
func (h *CourseHandler) fail(c *gin.Context, err error, badRequestMsg, internalMsg string) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, service.ErrInvalidArgument) && badRequestMsg != "":
		response.BadRequest(c, badRequestMsg)
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, msgCourseNotFound)
	default:
		h.logger.Error(internalMsg,
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)))
		response.InternalError(c, internalMsg)
	}
}

func icsFilename(code string) string {
	name := make([]rune, 0, len(code))
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			name = append(name, r)
		case r == ' ' || r == '_':
			name = append(name, '_')
		}
	}
	if len(name) == 0 {
		return "calendar.ics"
	}
	return string(name) + ".ics"
}

// MetricsHandler serves the metrics snapshot.
func MetricsHandler(metrics *logger.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.Snapshot())
	}
}
