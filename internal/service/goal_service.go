package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain/goal"
)

type GoalService struct {
	repo     goal.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewGoalService(repo goal.Repository, auditSvc *AuditService, log *zap.Logger) *GoalService {
	return &GoalService{repo: repo, auditSvc: auditSvc, log: log}
}

// Create freezes the starting value alongside the target so progress for
// weight goals can be computed against where the user began, not where
// they are now.
func (s *GoalService) Create(ctx context.Context, cmd *goal.CreateGoalCommand, ip string) (*goal.Goal, error) {
	if err := validateGoalCommand(cmd); err != nil {
		return nil, err
	}

	g := &goal.Goal{
		UserID:       cmd.UserID,
		Title:        strings.TrimSpace(cmd.Title),
		Category:     strings.ToLower(strings.TrimSpace(cmd.Category)),
		Target:       cmd.Target,
		CurrentValue: cmd.CurrentValue,
		StartValue:   cmd.CurrentValue,
		StartDate:    cmd.StartDate,
		TargetDate:   cmd.TargetDate,
		Icon:         cmd.Icon,
	}
	g.Progress = goal.ProgressFromValues(g.Category, g.CurrentValue, g.Target, g.StartValue)

	if err := s.repo.Create(ctx, g); err != nil {
		s.log.Error("failed to create goal", zap.Error(err))
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       cmd.UserID,
		Action:       "create",
		ResourceType: "goal",
		ResourceID:   strconv.FormatUint(uint64(g.ID), 10),
		IPAddress:    ip,
	})

	return g, nil
}

func (s *GoalService) Get(ctx context.Context, id, callerID uint) (*goal.Goal, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.UserID != callerID {
		return nil, ErrForbidden
	}
	return g, nil
}

// Update applies the command and recomputes stored progress whenever the
// current value or target moved. Reaching 100% does not flip Completed on
// its own; the user marks completion explicitly.
func (s *GoalService) Update(ctx context.Context, id, callerID uint, cmd *goal.UpdateGoalCommand, ip string) (*goal.Goal, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.UserID != callerID {
		return nil, ErrForbidden
	}

	if cmd.Title != nil {
		if strings.TrimSpace(*cmd.Title) == "" {
			return nil, goal.ErrTitleRequired
		}
		g.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Category != nil {
		if strings.TrimSpace(*cmd.Category) == "" {
			return nil, goal.ErrCategoryRequired
		}
		g.Category = strings.ToLower(strings.TrimSpace(*cmd.Category))
	}
	if cmd.Target != nil {
		g.Target = *cmd.Target
	}
	if cmd.CurrentValue != nil {
		g.CurrentValue = *cmd.CurrentValue
	}
	if cmd.TargetDate != nil {
		g.TargetDate = cmd.TargetDate
	}
	if cmd.Completed != nil {
		g.Completed = *cmd.Completed
	}
	if cmd.Icon != nil {
		g.Icon = *cmd.Icon
	}

	g.Progress = goal.ProgressFromValues(g.Category, g.CurrentValue, g.Target, g.StartValue)

	if err := s.repo.Update(ctx, g); err != nil {
		s.log.Error("failed to update goal", zap.Error(err))
		return nil, fmt.Errorf("updating goal: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "update",
		ResourceType: "goal",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return g, nil
}

func (s *GoalService) Delete(ctx context.Context, id, callerID uint, ip string) error {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if g.UserID != callerID {
		return ErrForbidden
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "delete",
		ResourceType: "goal",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return s.repo.SoftDelete(ctx, id)
}

func (s *GoalService) List(ctx context.Context, q *goal.ListGoalsQuery) (*goal.PagedGoals, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}

func validateGoalCommand(cmd *goal.CreateGoalCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(cmd.Category) == "" {
		errs = append(errs, "category is required")
	}
	if cmd.StartDate.IsZero() {
		errs = append(errs, "start_date is required")
	}
	if cmd.TargetDate != nil && cmd.TargetDate.Before(cmd.StartDate) {
		errs = append(errs, "target_date cannot be before start_date")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
