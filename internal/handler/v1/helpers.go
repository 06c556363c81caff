package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain/appointment"
	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
	"github.com/helioslabs/vitaltrack/internal/domain/goal"
	"github.com/helioslabs/vitaltrack/internal/domain/meal"
	"github.com/helioslabs/vitaltrack/internal/domain/medication"
	"github.com/helioslabs/vitaltrack/internal/domain/metric"
	"github.com/helioslabs/vitaltrack/internal/service"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	var parseErr *metric.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: parseErr.Error()})
		return
	}

	switch {
	case errors.Is(err, metric.ErrMetricNotFound),
		errors.Is(err, medication.ErrMedicationNotFound),
		errors.Is(err, medication.ErrLogNotFound),
		errors.Is(err, meal.ErrMealNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, goal.ErrGoalNotFound),
		errors.Is(err, exercise.ErrLogNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, metric.ErrInvalidType),
		errors.Is(err, meal.ErrInvalidMealType),
		errors.Is(err, medication.ErrInvalidDoseTime),
		errors.Is(err, medication.ErrInvalidDateRange),
		errors.Is(err, appointment.ErrInvalidStatusTransition),
		errors.Is(err, appointment.ErrInvalidDuration),
		errors.Is(err, goal.ErrTitleRequired),
		errors.Is(err, goal.ErrCategoryRequired),
		errors.Is(err, exercise.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountInactive):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})

	case errors.Is(err, service.ErrAccountLocked):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Error: "account temporarily locked",
			Code:  "ACCOUNT_LOCKED",
		})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}

	return true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return defaultVal
}

// parseQueryDate accepts RFC 3339 timestamps or bare dates.
func parseQueryDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + key + ": must be RFC 3339 or YYYY-MM-DD"})
	return nil, false
}

// callerID returns the authenticated user's ID set by the auth middleware.
func callerID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}
