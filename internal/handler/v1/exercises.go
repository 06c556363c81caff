package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type ExerciseHandler struct {
	exerciseSvc *service.ExerciseService
	collector   *metrics.Collector
}

func NewExerciseHandler(exerciseSvc *service.ExerciseService, collector *metrics.Collector) *ExerciseHandler {
	return &ExerciseHandler{exerciseSvc: exerciseSvc, collector: collector}
}

type createExerciseRequest struct {
	Type         string    `json:"type" binding:"required"`
	DurationMins int       `json:"duration_mins" binding:"required"`
	DistanceKM   *float64  `json:"distance_km"`
	Calories     *float64  `json:"calories"`
	Date         time.Time `json:"date" binding:"required"`
	Notes        string    `json:"notes"`
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	var req createExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	l, err := h.exerciseSvc.LogWorkout(c.Request.Context(), &exercise.CreateLogCommand{
		UserID:       callerID(c),
		Type:         req.Type,
		DurationMins: req.DurationMins,
		DistanceKM:   req.DistanceKM,
		Calories:     req.Calories,
		Date:         req.Date,
		Notes:        req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.WorkoutsLoggedTotal.Inc()
	respondCreated(c, l)
}

func (h *ExerciseHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	l, err := h.exerciseSvc.Get(c.Request.Context(), id, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, l)
}

type updateExerciseRequest struct {
	Type         *string    `json:"type"`
	DurationMins *int       `json:"duration_mins"`
	DistanceKM   *float64   `json:"distance_km"`
	Calories     *float64   `json:"calories"`
	Date         *time.Time `json:"date"`
	Notes        *string    `json:"notes"`
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	l, err := h.exerciseSvc.Update(c.Request.Context(), id, callerID(c), &exercise.UpdateLogCommand{
		Type:         req.Type,
		DurationMins: req.DurationMins,
		DistanceKM:   req.DistanceKM,
		Calories:     req.Calories,
		Date:         req.Date,
		Notes:        req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, l)
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseSvc.Delete(c.Request.Context(), id, callerID(c), c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExerciseHandler) List(c *gin.Context) {
	q := &exercise.ListLogsQuery{
		UserID:   callerID(c),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}
	if raw := c.Query("type"); raw != "" {
		q.Type = &raw
	}
	var ok bool
	if q.DateFrom, ok = parseQueryDate(c, "from"); !ok {
		return
	}
	if q.DateTo, ok = parseQueryDate(c, "to"); !ok {
		return
	}

	paged, err := h.exerciseSvc.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, pagedResponse[*exercise.Log]{
		Items:      paged.Logs,
		TotalCount: paged.TotalCount,
		Page:       paged.Page,
		PageSize:   paged.PageSize,
		TotalPages: paged.TotalPages,
	})
}
