package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain/medication"
)

type MedicationService struct {
	repo     medication.Repository
	logRepo  medication.LogRepository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewMedicationService(
	repo medication.Repository,
	logRepo medication.LogRepository,
	auditSvc *AuditService,
	log *zap.Logger,
) *MedicationService {
	return &MedicationService{repo: repo, logRepo: logRepo, auditSvc: auditSvc, log: log}
}

func (s *MedicationService) Add(ctx context.Context, cmd *medication.CreateMedicationCommand, ip string) (*medication.Medication, error) {
	if err := validateMedicationCommand(cmd); err != nil {
		return nil, err
	}

	m := &medication.Medication{
		UserID:       cmd.UserID,
		Name:         strings.TrimSpace(cmd.Name),
		Dosage:       strings.TrimSpace(cmd.Dosage),
		Frequency:    cmd.Frequency,
		Times:        cmd.Times,
		Instructions: cmd.Instructions,
		StartDate:    cmd.StartDate,
		EndDate:      cmd.EndDate,
		Active:       true,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.log.Error("failed to add medication", zap.Error(err))
		return nil, fmt.Errorf("adding medication: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       cmd.UserID,
		Action:       "create",
		ResourceType: "medication",
		ResourceID:   strconv.FormatUint(uint64(m.ID), 10),
		IPAddress:    ip,
	})

	return m, nil
}

func (s *MedicationService) Get(ctx context.Context, id, callerID uint) (*medication.Medication, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != callerID {
		return nil, ErrForbidden
	}
	return m, nil
}

func (s *MedicationService) Update(ctx context.Context, id, callerID uint, cmd *medication.UpdateMedicationCommand, ip string) (*medication.Medication, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrForbidden
	}

	if cmd.Times != nil {
		if err := medication.ValidateTimes(*cmd.Times); err != nil {
			return nil, err
		}
	}
	if cmd.EndDate != nil && cmd.EndDate.Before(existing.StartDate) {
		return nil, medication.ErrInvalidDateRange
	}

	m, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "update",
		ResourceType: "medication",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return m, nil
}

func (s *MedicationService) Remove(ctx context.Context, id, callerID uint, ip string) error {
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
		ResourceType: "medication",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return s.repo.SoftDelete(ctx, id)
}

func (s *MedicationService) ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]*medication.Medication, error) {
	return s.repo.ListByUser(ctx, userID, activeOnly)
}

// LogDose records one scheduled dose occurrence against a medication the
// caller owns.
func (s *MedicationService) LogDose(ctx context.Context, cmd *medication.CreateLogCommand, ip string) (*medication.Log, error) {
	m, err := s.repo.GetByID(ctx, cmd.MedicationID)
	if err != nil {
		return nil, err
	}
	if m.UserID != cmd.UserID {
		return nil, ErrForbidden
	}
	if cmd.ScheduledTime.IsZero() {
		return nil, &ValidationError{Fields: []string{"scheduled_time is required"}}
	}

	l := &medication.Log{
		MedicationID:  cmd.MedicationID,
		UserID:        cmd.UserID,
		Taken:         cmd.Taken,
		ScheduledTime: cmd.ScheduledTime,
		TakenTime:     cmd.TakenTime,
		Notes:         cmd.Notes,
	}

	if err := s.logRepo.Create(ctx, l); err != nil {
		s.log.Error("failed to log dose", zap.Error(err))
		return nil, fmt.Errorf("logging dose: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       cmd.UserID,
		Action:       "create",
		ResourceType: "medication_log",
		ResourceID:   strconv.FormatUint(uint64(l.ID), 10),
		IPAddress:    ip,
	})

	return l, nil
}

func (s *MedicationService) ListLogs(ctx context.Context, q *medication.ListLogsQuery) (*medication.PagedLogs, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.logRepo.List(ctx, q)
}

// Adherence returns the taken percentage across all of a user's logged
// doses matching the query.
func (s *MedicationService) Adherence(ctx context.Context, q *medication.ListLogsQuery) (int, error) {
	q.Page = 1
	q.PageSize = 100

	var all []medication.Log
	for {
		paged, err := s.logRepo.List(ctx, q)
		if err != nil {
			return 0, err
		}
		for _, l := range paged.Logs {
			all = append(all, *l)
		}
		if q.Page >= paged.TotalPages {
			break
		}
		q.Page++
	}

	return medication.AdherencePercent(all), nil
}

func validateMedicationCommand(cmd *medication.CreateMedicationCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.Name) == "" {
		errs = append(errs, "name is required")
	}
	if cmd.StartDate.IsZero() {
		errs = append(errs, "start_date is required")
	}
	if cmd.EndDate != nil && cmd.EndDate.Before(cmd.StartDate) {
		errs = append(errs, "end_date cannot be before start_date")
	}
	if err := medication.ValidateTimes(cmd.Times); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
