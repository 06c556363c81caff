package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain/goal"
	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type GoalHandler struct {
	goalSvc   *service.GoalService
	collector *metrics.Collector
}

func NewGoalHandler(goalSvc *service.GoalService, collector *metrics.Collector) *GoalHandler {
	return &GoalHandler{goalSvc: goalSvc, collector: collector}
}

type createGoalRequest struct {
	Title        string     `json:"title" binding:"required"`
	Category     string     `json:"category" binding:"required"`
	Target       string     `json:"target"`
	CurrentValue string     `json:"current_value"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	TargetDate   *time.Time `json:"target_date"`
	Icon         string     `json:"icon"`
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req createGoalRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.goalSvc.Create(c.Request.Context(), &goal.CreateGoalCommand{
		UserID:       callerID(c),
		Title:        req.Title,
		Category:     req.Category,
		Target:       req.Target,
		CurrentValue: req.CurrentValue,
		StartDate:    req.StartDate,
		TargetDate:   req.TargetDate,
		Icon:         req.Icon,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, g)
}

func (h *GoalHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	g, err := h.goalSvc.Get(c.Request.Context(), id, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, g)
}

type updateGoalRequest struct {
	Title        *string    `json:"title"`
	Category     *string    `json:"category"`
	Target       *string    `json:"target"`
	CurrentValue *string    `json:"current_value"`
	TargetDate   *time.Time `json:"target_date"`
	Completed    *bool      `json:"completed"`
	Icon         *string    `json:"icon"`
}

func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateGoalRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.goalSvc.Update(c.Request.Context(), id, callerID(c), &goal.UpdateGoalCommand{
		Title:        req.Title,
		Category:     req.Category,
		Target:       req.Target,
		CurrentValue: req.CurrentValue,
		TargetDate:   req.TargetDate,
		Completed:    req.Completed,
		Icon:         req.Icon,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if req.Completed != nil && *req.Completed {
		h.collector.GoalsCompletedTotal.Inc()
	}
	respondOK(c, g)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.goalSvc.Delete(c.Request.Context(), id, callerID(c), c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) List(c *gin.Context) {
	q := &goal.ListGoalsQuery{
		UserID:   callerID(c),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}
	if raw := c.Query("category"); raw != "" {
		q.Category = &raw
	}
	if raw := c.Query("completed"); raw != "" {
		completed := raw == "true"
		q.Completed = &completed
	}

	paged, err := h.goalSvc.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, pagedResponse[*goal.Goal]{
		Items:      paged.Goals,
		TotalCount: paged.TotalCount,
		Page:       paged.Page,
		PageSize:   paged.PageSize,
		TotalPages: paged.TotalPages,
	})
}
