package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// ExamHandlers serves the calendar views of the exam routine on top of the
// generic collection surface.
type ExamHandlers struct {
	examService *services.ExamService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewExamHandlers creates exam routine handlers with injected dependencies.
func NewExamHandlers(examService *services.ExamService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ExamHandlers {
	return &ExamHandlers{
		examService: examService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetRoutine handles GET /api/v1/content/exam-routines/routine with
// optional class, month and year query filters applied conjunctively.
func (h *ExamHandlers) GetRoutine(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_exam_routine_request", content.BucketExamRoutines)
	defer marker.Complete()

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	entries, err := h.examService.Filter(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// GetMonthGrid handles GET /api/v1/content/exam-routines/calendar - one
// calendar month partitioned into day summaries with independent exam and
// holiday flags.
func (h *ExamHandlers) GetMonthGrid(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_exam_calendar_request", content.BucketExamRoutines)
	defer marker.Complete()

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	if filter.Month == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month and year query parameters are required"})
		return
	}

	grid, err := h.examService.MonthGrid(c.Request.Context(), filter.Year, filter.Month, filter.Class)
	if err != nil {
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"days":  grid,
		"count": len(grid),
	})
}

func (h *ExamHandlers) parseFilter(c *gin.Context) (services.RoutineFilter, bool) {
	filter := services.RoutineFilter{Class: c.Query("class")}

	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return filter, false
		}
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year is required with month"})
			return filter, false
		}
		filter.Month = month
		filter.Year = year
	}
	return filter, true
}
