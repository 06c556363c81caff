package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/helioslabs/vitaltrack/internal/domain/appointment"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*appointment.Appointment, error) {
	var a appointment.Appointment
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appointment.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id uint, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		a.Title = *cmd.Title
	}
	if cmd.Doctor != nil {
		a.Doctor = *cmd.Doctor
	}
	if cmd.Location != nil {
		a.Location = *cmd.Location
	}
	if cmd.Date != nil {
		a.Date = *cmd.Date
	}
	if cmd.DurationMins != nil {
		a.DurationMins = *cmd.DurationMins
	}
	if cmd.Notes != nil {
		a.Notes = *cmd.Notes
	}

	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, a *appointment.Appointment) error {
	return r.db.WithContext(ctx).Model(a).Updates(map[string]any{
		"status":              a.Status,
		"cancelled_at":        a.CancelledAt,
		"cancellation_reason": a.CancellationReason,
		"completed_at":        a.CompletedAt,
	}).Error
}

func (r *AppointmentRepository) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&appointment.Appointment{}).
		Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context, q *appointment.ListAppointmentsQuery) (*appointment.PagedAppointments, error) {
	base := r.db.WithContext(ctx).Model(&appointment.Appointment{}).
		Where("user_id = ? AND deleted_at IS NULL", q.UserID)

	if q.Status != nil {
		base = base.Where("status = ?", *q.Status)
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

	var items []*appointment.Appointment
	err := base.Order("date ASC").Scopes(paginate(q.Page, q.PageSize)).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &appointment.PagedAppointments{
		Appointments: items,
		TotalCount:   count,
		Page:         q.Page,
		PageSize:     q.PageSize,
		TotalPages:   totalPages(count, q.PageSize),
	}, nil
}
