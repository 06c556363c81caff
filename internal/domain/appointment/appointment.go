package appointment

import (
	"time"
)

// State transitions:
//
//	scheduled → confirmed → completed
//	scheduled → cancelled
//	confirmed → cancelled
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	UserID uint `gorm:"column:user_id;not null;index"`

	Title    string `gorm:"column:title;type:varchar(200);not null"`
	Doctor   string `gorm:"column:doctor;type:varchar(200)"`
	Location string `gorm:"column:location;type:varchar(255)"`

	Date         time.Time `gorm:"column:date;not null;index"`
	DurationMins int       `gorm:"column:duration_mins;not null;default:30"`
	Status       Status    `gorm:"column:status;type:varchar(20);not null;default:'scheduled';index"`
	Notes        string    `gorm:"column:notes;type:text"`

	// Cancellation tracking
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	CancellationReason string     `gorm:"column:cancellation_reason;type:text"`

	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) EndsAt() time.Time {
	return a.Date.Add(time.Duration(a.DurationMins) * time.Minute)
}

func (a *Appointment) CanTransitionTo(newStatus Status) bool {
	allowed := map[Status][]Status{
		StatusScheduled: {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	for _, s := range allowed[a.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (a *Appointment) Confirm() error {
	if !a.CanTransitionTo(StatusConfirmed) {
		return ErrInvalidStatusTransition
	}
	a.Status = StatusConfirmed
	return nil
}

func (a *Appointment) Cancel(reason string) error {
	if !a.CanTransitionTo(StatusCancelled) {
		return ErrInvalidStatusTransition
	}
	now := time.Now()
	a.Status = StatusCancelled
	a.CancelledAt = &now
	a.CancellationReason = reason
	return nil
}

func (a *Appointment) Complete() error {
	if !a.CanTransitionTo(StatusCompleted) {
		return ErrInvalidStatusTransition
	}
	now := time.Now()
	a.Status = StatusCompleted
	a.CompletedAt = &now
	return nil
}

type CreateAppointmentCommand struct {
	UserID       uint
	Title        string
	Doctor       string
	Location     string
	Date         time.Time
	DurationMins int
	Notes        string
}

type UpdateAppointmentCommand struct {
	Title        *string
	Doctor       *string
	Location     *string
	Date         *time.Time
	DurationMins *int
	Notes        *string
}

type ListAppointmentsQuery struct {
	UserID   uint
	Status   *Status
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

type PagedAppointments struct {
	Appointments []*Appointment
	TotalCount   int64
	Page         int
	PageSize     int
	TotalPages   int
}
