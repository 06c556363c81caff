package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain/appointment"
)

type AppointmentService struct {
	repo     appointment.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewAppointmentService(repo appointment.Repository, auditSvc *AuditService, log *zap.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, auditSvc: auditSvc, log: log}
}

func (s *AppointmentService) Schedule(ctx context.Context, cmd *appointment.CreateAppointmentCommand, ip string) (*appointment.Appointment, error) {
	if err := validateAppointmentCommand(cmd); err != nil {
		return nil, err
	}

	a := &appointment.Appointment{
		UserID:       cmd.UserID,
		Title:        strings.TrimSpace(cmd.Title),
		Doctor:       strings.TrimSpace(cmd.Doctor),
		Location:     cmd.Location,
		Date:         cmd.Date,
		DurationMins: cmd.DurationMins,
		Status:       appointment.StatusScheduled,
		Notes:        cmd.Notes,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       cmd.UserID,
		Action:       "create",
		ResourceType: "appointment",
		ResourceID:   strconv.FormatUint(uint64(a.ID), 10),
		IPAddress:    ip,
	})

	return a, nil
}

func (s *AppointmentService) Get(ctx context.Context, id, callerID uint) (*appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != callerID {
		return nil, ErrForbidden
	}
	return a, nil
}

func (s *AppointmentService) Update(ctx context.Context, id, callerID uint, cmd *appointment.UpdateAppointmentCommand, ip string) (*appointment.Appointment, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrForbidden
	}

	if cmd.DurationMins != nil && (*cmd.DurationMins < 5 || *cmd.DurationMins > 480) {
		return nil, appointment.ErrInvalidDuration
	}

	a, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "update",
		ResourceType: "appointment",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return a, nil
}

func (s *AppointmentService) Confirm(ctx context.Context, id, callerID uint, ip string) (*appointment.Appointment, error) {
	a, err := s.Get(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if err := a.Confirm(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) Cancel(ctx context.Context, id, callerID uint, reason, ip string) (*appointment.Appointment, error) {
	a, err := s.Get(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if err := a.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, a); err != nil {
		return nil, fmt.Errorf("updating appointment status: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "update",
		ResourceType: "appointment",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
		Changes:      fmt.Sprintf(`{"status":"cancelled","reason":%q}`, reason),
	})

	return a, nil
}

func (s *AppointmentService) Complete(ctx context.Context, id, callerID uint, ip string) (*appointment.Appointment, error) {
	a, err := s.Get(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if err := a.Complete(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id, callerID uint, ip string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.UserID != callerID {
		return ErrForbidden
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "delete",
		ResourceType: "appointment",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return s.repo.SoftDelete(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context, q *appointment.ListAppointmentsQuery) (*appointment.PagedAppointments, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}

func validateAppointmentCommand(cmd *appointment.CreateAppointmentCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.Title) == "" {
		errs = append(errs, "title is required")
	}
	if cmd.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if cmd.DurationMins < 5 || cmd.DurationMins > 480 {
		errs = append(errs, "duration_mins must be between 5 and 480")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
