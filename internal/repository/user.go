package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/helioslabs/vitaltrack/internal/domain"
	"github.com/helioslabs/vitaltrack/internal/service"
)

const (
	maxFailedLogins = 5
	lockDuration    = 15 * time.Minute
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateLoginAttempt records one login outcome. Five consecutive failures
// lock the account for fifteen minutes.
func (r *UserRepository) UpdateLoginAttempt(ctx context.Context, id uint, success bool) error {
	if success {
		now := time.Now()
		return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
			"failed_login_count": 0,
			"locked_until":       nil,
			"last_login_at":      now,
		}).Error
	}

	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return err
	}

	updates := map[string]any{"failed_login_count": u.FailedLoginCount + 1}
	if u.FailedLoginCount+1 >= maxFailedLogins {
		updates["locked_until"] = time.Now().Add(lockDuration)
	}
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"password_hash":       hash,
		"password_changed_at": time.Now(),
	}).Error
}

func (r *UserRepository) UpdateTargets(ctx context.Context, id uint, t *service.TargetsUpdate) (*domain.User, error) {
	updates := map[string]any{}
	if t.TargetWeight != nil {
		updates["target_weight"] = *t.TargetWeight
	}
	if t.TargetSteps != nil {
		updates["target_steps"] = *t.TargetSteps
	}
	if t.TargetWaterIntake != nil {
		updates["target_water_intake"] = *t.TargetWaterIntake
	}
	if t.TargetSleep != nil {
		updates["target_sleep"] = *t.TargetSleep
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}
