package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain"
)

// TargetsUpdate carries partial updates to a user's goal targets. Nil fields
// are left untouched; a zero value clears the target.
type TargetsUpdate struct {
	TargetWeight      *float64
	TargetSteps       *int
	TargetWaterIntake *float64
	TargetSleep       *float64
}

type UserProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	UpdateTargets(ctx context.Context, id uint, t *TargetsUpdate) (*domain.User, error)
}

type UserService struct {
	repo UserProfileRepository
	log  *zap.Logger
}

func NewUserService(repo UserProfileRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *UserService) UpdateTargets(ctx context.Context, userID uint, t *TargetsUpdate) (*domain.User, error) {
	var errs []string
	if t.TargetWeight != nil && *t.TargetWeight < 0 {
		errs = append(errs, "target_weight cannot be negative")
	}
	if t.TargetSteps != nil && *t.TargetSteps < 0 {
		errs = append(errs, "target_steps cannot be negative")
	}
	if t.TargetWaterIntake != nil && *t.TargetWaterIntake < 0 {
		errs = append(errs, "target_water_intake cannot be negative")
	}
	if t.TargetSleep != nil && (*t.TargetSleep < 0 || *t.TargetSleep > 24) {
		errs = append(errs, "target_sleep must be between 0 and 24 hours")
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	u, err := s.repo.UpdateTargets(ctx, userID, t)
	if err != nil {
		return nil, err
	}

	s.log.Info("user targets updated", zap.Uint("user_id", userID))
	return u, nil
}
