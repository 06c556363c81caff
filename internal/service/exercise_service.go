package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
)

type ExerciseService struct {
	repo     exercise.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewExerciseService(repo exercise.Repository, auditSvc *AuditService, log *zap.Logger) *ExerciseService {
	return &ExerciseService{repo: repo, auditSvc: auditSvc, log: log}
}

func (s *ExerciseService) LogWorkout(ctx context.Context, cmd *exercise.CreateLogCommand, ip string) (*exercise.Log, error) {
	if err := validateExerciseCommand(cmd); err != nil {
		return nil, err
	}

	l := &exercise.Log{
		UserID:       cmd.UserID,
		Type:         strings.ToLower(strings.TrimSpace(cmd.Type)),
		DurationMins: cmd.DurationMins,
		DistanceKM:   cmd.DistanceKM,
		Calories:     cmd.Calories,
		Date:         cmd.Date,
		Notes:        cmd.Notes,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.log.Error("failed to log workout", zap.Error(err))
		return nil, fmt.Errorf("logging workout: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       cmd.UserID,
		Action:       "create",
		ResourceType: "exercise_log",
		ResourceID:   strconv.FormatUint(uint64(l.ID), 10),
		IPAddress:    ip,
	})

	return l, nil
}

func (s *ExerciseService) Get(ctx context.Context, id, callerID uint) (*exercise.Log, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.UserID != callerID {
		return nil, ErrForbidden
	}
	return l, nil
}

func (s *ExerciseService) Update(ctx context.Context, id, callerID uint, cmd *exercise.UpdateLogCommand, ip string) (*exercise.Log, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrForbidden
	}

	if cmd.DurationMins != nil && *cmd.DurationMins <= 0 {
		return nil, &ValidationError{Fields: []string{"duration_mins must be positive"}}
	}

	l, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "update",
		ResourceType: "exercise_log",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return l, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id, callerID uint, ip string) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.UserID != callerID {
		return ErrForbidden
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "delete",
		ResourceType: "exercise_log",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return s.repo.SoftDelete(ctx, id)
}

func (s *ExerciseService) List(ctx context.Context, q *exercise.ListLogsQuery) (*exercise.PagedLogs, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}

func validateExerciseCommand(cmd *exercise.CreateLogCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.Type) == "" {
		errs = append(errs, "type is required")
	}
	if cmd.DurationMins <= 0 {
		errs = append(errs, "duration_mins must be positive")
	}
	if cmd.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if cmd.DistanceKM != nil && *cmd.DistanceKM < 0 {
		errs = append(errs, "distance_km cannot be negative")
	}
	if cmd.Calories != nil && *cmd.Calories < 0 {
		errs = append(errs, "calories cannot be negative")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
