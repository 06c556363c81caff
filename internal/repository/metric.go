package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

type MetricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

func (r *MetricRepository) Create(ctx context.Context, m *metric.HealthMetric) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MetricRepository) GetByID(ctx context.Context, id uint) (*metric.HealthMetric, error) {
	var m metric.HealthMetric
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, metric.ErrMetricNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MetricRepository) Update(ctx context.Context, id uint, cmd *metric.UpdateMetricCommand) (*metric.HealthMetric, error) {
	updates := map[string]any{}
	if cmd.Value != nil {
		updates["value"] = *cmd.Value
	}
	if cmd.Date != nil {
		updates["date"] = *cmd.Date
	}
	if cmd.Notes != nil {
		updates["notes"] = *cmd.Notes
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&metric.HealthMetric{}).
			Where("id = ? AND deleted_at IS NULL", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, metric.ErrMetricNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *MetricRepository) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&metric.HealthMetric{}).
		Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return metric.ErrMetricNotFound
	}
	return nil
}

func (r *MetricRepository) List(ctx context.Context, q *metric.ListMetricsQuery) (*metric.PagedMetrics, error) {
	base := r.db.WithContext(ctx).Model(&metric.HealthMetric{}).
		Where("user_id = ? AND deleted_at IS NULL", q.UserID)

	if q.Type != nil {
		base = base.Where("type = ?", *q.Type)
	}
	if q.DateFrom != nil {
		base = base.Where("date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		base = base.Where("date <= ?", *q.DateTo)
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, err
	}

	var items []*metric.HealthMetric
	err := base.Order("date DESC").Scopes(paginate(q.Page, q.PageSize)).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &metric.PagedMetrics{
		Metrics:    items,
		TotalCount: count,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(count, q.PageSize),
	}, nil
}

func (r *MetricRepository) ListByType(ctx context.Context, userID uint, t metric.Type, from, to *time.Time) ([]metric.HealthMetric, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND deleted_at IS NULL", userID, t)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var items []metric.HealthMetric
	if err := q.Order("date ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
