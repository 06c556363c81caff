package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

type MetricService struct {
	repo     metric.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewMetricService(repo metric.Repository, auditSvc *AuditService, log *zap.Logger) *MetricService {
	return &MetricService{repo: repo, auditSvc: auditSvc, log: log}
}

func (s *MetricService) Record(ctx context.Context, cmd *metric.CreateMetricCommand, ip string) (*metric.HealthMetric, error) {
	if err := validateMetricCommand(cmd); err != nil {
		return nil, err
	}

	m := &metric.HealthMetric{
		UserID: cmd.UserID,
		Type:   cmd.Type,
		Value:  strings.TrimSpace(cmd.Value),
		Date:   cmd.Date,
		Notes:  cmd.Notes,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.log.Error("failed to record metric", zap.Error(err))
		return nil, fmt.Errorf("recording metric: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       cmd.UserID,
		Action:       "create",
		ResourceType: "health_metric",
		ResourceID:   strconv.FormatUint(uint64(m.ID), 10),
		IPAddress:    ip,
	})

	return m, nil
}

func (s *MetricService) Get(ctx context.Context, id, callerID uint) (*metric.HealthMetric, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != callerID {
		return nil, ErrForbidden
	}
	return m, nil
}

func (s *MetricService) Update(ctx context.Context, id, callerID uint, cmd *metric.UpdateMetricCommand, ip string) (*metric.HealthMetric, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, ErrForbidden
	}

	if cmd.Value != nil {
		if err := validateMetricValue(existing.Type, *cmd.Value); err != nil {
			return nil, err
		}
	}

	m, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       callerID,
		Action:       "update",
		ResourceType: "health_metric",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return m, nil
}

func (s *MetricService) Delete(ctx context.Context, id, callerID uint, ip string) error {
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
		ResourceType: "health_metric",
		ResourceID:   strconv.FormatUint(uint64(id), 10),
		IPAddress:    ip,
	})

	return s.repo.SoftDelete(ctx, id)
}

func (s *MetricService) List(ctx context.Context, q *metric.ListMetricsQuery) (*metric.PagedMetrics, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}

func validateMetricCommand(cmd *metric.CreateMetricCommand) error {
	var errs []string

	if !cmd.Type.IsValid() {
		errs = append(errs, "type is invalid")
	}
	if strings.TrimSpace(cmd.Value) == "" {
		errs = append(errs, "value is required")
	}
	if cmd.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if len(errs) == 0 {
		if err := validateMetricValue(cmd.Type, cmd.Value); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// validateMetricValue rejects values that would never decode: writes are
// strict so reads can afford leniency. Blood pressure is the exception and
// stays lenient on read per the decoder contract, but new payloads must at
// least be valid JSON.
func validateMetricValue(t metric.Type, value string) error {
	if t.IsNumeric() {
		if _, err := metric.ParseNumeric(t, value); err != nil {
			return fmt.Errorf("value must be numeric for type %s", t)
		}
		return nil
	}
	if !strings.HasPrefix(strings.TrimSpace(value), "{") {
		return fmt.Errorf("value must be a JSON object for type %s", t)
	}
	return nil
}
