package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/helioslabs/vitaltrack/internal/domain/medication"
)

type MedicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) Create(ctx context.Context, m *medication.Medication) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MedicationRepository) GetByID(ctx context.Context, id uint) (*medication.Medication, error) {
	var m medication.Medication
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, medication.ErrMedicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MedicationRepository) Update(ctx context.Context, id uint, cmd *medication.UpdateMedicationCommand) (*medication.Medication, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		m.Name = *cmd.Name
	}
	if cmd.Dosage != nil {
		m.Dosage = *cmd.Dosage
	}
	if cmd.Frequency != nil {
		m.Frequency = *cmd.Frequency
	}
	if cmd.Times != nil {
		m.Times = *cmd.Times
	}
	if cmd.Instructions != nil {
		m.Instructions = *cmd.Instructions
	}
	if cmd.EndDate != nil {
		m.EndDate = cmd.EndDate
	}
	if cmd.Active != nil {
		m.Active = *cmd.Active
	}

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MedicationRepository) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&medication.Medication{}).
		Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return medication.ErrMedicationNotFound
	}
	return nil
}

func (r *MedicationRepository) ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]*medication.Medication, error) {
	q := r.db.WithContext(ctx).Where("user_id = ? AND deleted_at IS NULL", userID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var items []*medication.Medication
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type MedicationLogRepository struct {
	db *gorm.DB
}

func NewMedicationLogRepository(db *gorm.DB) *MedicationLogRepository {
	return &MedicationLogRepository{db: db}
}

func (r *MedicationLogRepository) Create(ctx context.Context, l *medication.Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *MedicationLogRepository) GetByID(ctx context.Context, id uint) (*medication.Log, error) {
	var l medication.Log
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, medication.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *MedicationLogRepository) List(ctx context.Context, q *medication.ListLogsQuery) (*medication.PagedLogs, error) {
	base := r.db.WithContext(ctx).Model(&medication.Log{}).
		Where("user_id = ? AND deleted_at IS NULL", q.UserID)

	if q.MedicationID != nil {
		base = base.Where("medication_id = ?", *q.MedicationID)
	}
	if q.DateFrom != nil {
		base = base.Where("scheduled_time >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		base = base.Where("scheduled_time <= ?", *q.DateTo)
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, err
	}

	var items []*medication.Log
	err := base.Order("scheduled_time DESC").Scopes(paginate(q.Page, q.PageSize)).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &medication.PagedLogs{
		Logs:       items,
		TotalCount: count,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(count, q.PageSize),
	}, nil
}
