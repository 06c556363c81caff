package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain"
	"github.com/helioslabs/vitaltrack/internal/service"
)

type UserHandler struct {
	userSvc *service.UserService
}

func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

type profileResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	HeightCM    float64    `json:"height_cm,omitempty"`

	TargetWeight      float64 `json:"target_weight"`
	TargetSteps       int     `json:"target_steps"`
	TargetWaterIntake float64 `json:"target_water_intake"`
	TargetSleep       float64 `json:"target_sleep"`

	CreatedAt time.Time `json:"created_at"`
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		DateOfBirth:       u.DateOfBirth,
		HeightCM:          u.HeightCM,
		TargetWeight:      u.TargetWeight,
		TargetSteps:       u.TargetSteps,
		TargetWaterIntake: u.TargetWaterIntake,
		TargetSleep:       u.TargetSleep,
		CreatedAt:         u.CreatedAt,
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.userSvc.GetProfile(c.Request.Context(), callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, toProfileResponse(u))
}

type updateTargetsRequest struct {
	TargetWeight      *float64 `json:"target_weight"`
	TargetSteps       *int     `json:"target_steps"`
	TargetWaterIntake *float64 `json:"target_water_intake"`
	TargetSleep       *float64 `json:"target_sleep"`
}

func (h *UserHandler) UpdateTargets(c *gin.Context) {
	var req updateTargetsRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.userSvc.UpdateTargets(c.Request.Context(), callerID(c), &service.TargetsUpdate{
		TargetWeight:      req.TargetWeight,
		TargetSteps:       req.TargetSteps,
		TargetWaterIntake: req.TargetWaterIntake,
		TargetSleep:       req.TargetSleep,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, toProfileResponse(u))
}
