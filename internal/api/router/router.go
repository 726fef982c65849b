package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pfrederiksen/dtu-calendar/internal/api/handler"
	"github.com/pfrederiksen/dtu-calendar/internal/api/middleware"
	"github.com/pfrederiksen/dtu-calendar/internal/config"
	"github.com/pfrederiksen/dtu-calendar/internal/logger"
)

// Setup builds the gin engine with the global middleware and every route.
func Setup(cfg *config.Config, h *handler.CourseHandler, metrics *logger.Metrics, log *zap.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log, metrics))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/debug/metrics", handler.MetricsHandler(metrics))

	v1 := r.Group("/api/v1")
	{
		scraping := v1.Group("/courses/scraping")
		{
			scraping.GET("/semester", h.GetSemester)
			scraping.GET("/academicYear", h.GetAcademicYear)
			scraping.GET("/academicProgram", h.GetAcademicProgram)
			scraping.GET("/search", h.SearchCourses)
			scraping.GET("/listCourseDetail", h.ListCourseDetail)
			scraping.GET("/calendar/:courseCode", h.GetCalendar)
			scraping.GET("/calendar/:courseCode/ics", h.ExportCalendar)
		}
	}

	return r
}
