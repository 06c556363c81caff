package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain/meal"
	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type MealHandler struct {
	mealSvc   *service.MealService
	collector *metrics.Collector
}

func NewMealHandler(mealSvc *service.MealService, collector *metrics.Collector) *MealHandler {
	return &MealHandler{mealSvc: mealSvc, collector: collector}
}

type createMealRequest struct {
	Name     string    `json:"name" binding:"required"`
	Type     string    `json:"type" binding:"required"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Date     time.Time `json:"date" binding:"required"`
	Foods    []string  `json:"foods"`
	Notes    string    `json:"notes"`
}

func (h *MealHandler) Create(c *gin.Context) {
	var req createMealRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.mealSvc.LogMeal(c.Request.Context(), &meal.CreateMealCommand{
		UserID:   callerID(c),
		Name:     req.Name,
		Type:     meal.MealType(req.Type),
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Date:     req.Date,
		Foods:    req.Foods,
		Notes:    req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.MealsLoggedTotal.Inc()
	respondCreated(c, m)
}

func (h *MealHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	m, err := h.mealSvc.Get(c.Request.Context(), id, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

type updateMealRequest struct {
	Name     *string    `json:"name"`
	Type     *string    `json:"type"`
	Calories *float64   `json:"calories"`
	Protein  *float64   `json:"protein"`
	Carbs    *float64   `json:"carbs"`
	Fat      *float64   `json:"fat"`
	Date     *time.Time `json:"date"`
	Foods    *[]string  `json:"foods"`
	Notes    *string    `json:"notes"`
}

func (h *MealHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateMealRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := &meal.UpdateMealCommand{
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Date:     req.Date,
		Foods:    req.Foods,
		Notes:    req.Notes,
	}
	if req.Type != nil {
		t := meal.MealType(*req.Type)
		cmd.Type = &t
	}

	m, err := h.mealSvc.Update(c.Request.Context(), id, callerID(c), cmd, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

func (h *MealHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.mealSvc.Delete(c.Request.Context(), id, callerID(c), c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealHandler) List(c *gin.Context) {
	q := &meal.ListMealsQuery{
		UserID:   callerID(c),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}
	if raw := c.Query("type"); raw != "" {
		t := meal.MealType(raw)
		if !t.IsValid() {
			respondError(c, http.StatusBadRequest, "invalid type filter")
			return
		}
		q.Type = &t
	}
	var ok bool
	if q.DateFrom, ok = parseQueryDate(c, "from"); !ok {
		return
	}
	if q.DateTo, ok = parseQueryDate(c, "to"); !ok {
		return
	}

	paged, err := h.mealSvc.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, pagedResponse[*meal.Meal]{
		Items:      paged.Meals,
		TotalCount: paged.TotalCount,
		Page:       paged.Page,
		PageSize:   paged.PageSize,
		TotalPages: paged.TotalPages,
	})
}
