package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain/meal"
)

type MealService struct {
	repo     meal.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewMealService(repo meal.Repository, auditSvc *AuditService, log *zap.Logger) *MealService {
	return &MealService{repo: repo, auditSvc: auditSvc, log: log}
}

func (s *MealService) LogMeal(ctx context.Context, cmd *meal.CreateMealCommand, ip string) (*meal.Meal, error) {
	if err := validateMealCommand(cmd); err != nil {
		return nil, err
	}

	m := &meal.Meal{
		UserID:   cmd.UserID,
		Name:     strings.TrimSpace(cmd.Name),
		Type:     cmd.Type,
		Calories: cmd.Calories,
		Protein:  cmd.Protein,
		Carbs:    cmd.Carbs,
		Fat:      cmd.Fat,
		Date:     cmd.Date,
		Foods:    cmd.Foods,
		Notes:    cmd.Notes,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.log.Error("failed to log meal", zap.Error(err))
		return nil, fmt.Errorf("logging meal: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       cmd.UserID,
		Action:       "create",
		ResourceType: "meal",
		ResourceID:   strconv.FormatUint(uint64(m.ID), 10),
		IPAddress:    ip,
	})

	return m, nil
}

func (s *MealService) Get(ctx context.Context, id, callerID uint) (*meal.Meal, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != callerID {
		return nil, ErrForbidden
	}
	return m, nil
}

func (s *MealService) Update(ctx context.Context, id, callerID uint, cmd *meal.UpdateMealCommand, ip string) (*meal.Meal, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrForbidden
	}

	if cmd.Type != nil && !cmd.Type.IsValid() {
		return nil, meal.ErrInvalidMealType
	}

	m, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "update",
		ResourceType: "meal",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return m, nil
}

func (s *MealService) Delete(ctx context.Context, id, callerID uint, ip string) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.UserID != callerID {
		return ErrForbidden
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "delete",
		ResourceType: "meal",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return s.repo.SoftDelete(ctx, id)
}

func (s *MealService) List(ctx context.Context, q *meal.ListMealsQuery) (*meal.PagedMeals, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}

func validateMealCommand(cmd *meal.CreateMealCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !cmd.Type.IsValid() {
		errs = append(errs, "type must be breakfast, lunch, dinner, or snack")
	}
	if cmd.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if cmd.Calories < 0 || cmd.Protein < 0 || cmd.Carbs < 0 || cmd.Fat < 0 {
		errs = append(errs, "nutrient values cannot be negative")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
