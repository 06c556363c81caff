package medication

import (
	"time"
)

type Medication struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	UserID uint `gorm:"column:user_id;not null;index"`

	Name         string   `gorm:"column:name;type:varchar(200);not null"`
	Dosage       string   `gorm:"column:dosage;type:varchar(100)"`
	Frequency    string   `gorm:"column:frequency;type:varchar(100)"`
	Times        []string `gorm:"column:times;serializer:json"` // "HH:MM", one per scheduled dose
	Instructions string   `gorm:"column:instructions;type:text"`

	StartDate time.Time  `gorm:"column:start_date;not null"`
	EndDate   *time.Time `gorm:"column:end_date"`
	Active    bool       `gorm:"column:active;default:true;index"`
}

func (Medication) TableName() string {
	return "medications"
}

// IsActiveOn reports whether the medication course covers the given day.
// Comparison is by calendar day in each time's own location; Truncate would
// cut at UTC boundaries and shift days for times near midnight elsewhere.
func (m *Medication) IsActiveOn(day time.Time) bool {
	if !m.Active {
		return false
	}
	d := startOfDay(day)
	if d.Before(startOfDay(m.StartDate)) {
		return false
	}
	if m.EndDate != nil && d.After(startOfDay(*m.EndDate)) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateTimes checks every scheduled dose time is a well-formed "HH:MM".
func ValidateTimes(times []string) error {
	for _, raw := range times {
		if _, err := time.Parse("15:04", raw); err != nil {
			return ErrInvalidDoseTime
		}
	}
	return nil
}

// Log records one scheduled dose occurrence: whether it was taken and when.
type Log struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	MedicationID uint `gorm:"column:medication_id;not null;index"`
	UserID       uint `gorm:"column:user_id;not null;index"`

	Taken         bool       `gorm:"column:taken;not null"`
	ScheduledTime time.Time  `gorm:"column:scheduled_time;not null;index"`
	TakenTime     *time.Time `gorm:"column:taken_time"`
	Notes         string     `gorm:"column:notes;type:text"`
}

func (Log) TableName() string {
	return "medication_logs"
}

// AdherencePercent is the share of logged doses marked taken, as an integer
// percentage. No logs means 0, not an error.
func AdherencePercent(logs []Log) int {
	if len(logs) == 0 {
		return 0
	}
	taken := 0
	for _, l := range logs {
		if l.Taken {
			taken++
		}
	}
	return int(float64(taken)/float64(len(logs))*100 + 0.5)
}

type CreateMedicationCommand struct {
	UserID       uint
	Name         string
	Dosage       string
	Frequency    string
	Times        []string
	Instructions string
	StartDate    time.Time
	EndDate      *time.Time
}

type UpdateMedicationCommand struct {
	Name         *string
	Dosage       *string
	Frequency    *string
	Times        *[]string
	Instructions *string
	EndDate      *time.Time
	Active       *bool
}

type CreateLogCommand struct {
	MedicationID  uint
	UserID        uint
	Taken         bool
	ScheduledTime time.Time
	TakenTime     *time.Time
	Notes         string
}

type ListLogsQuery struct {
	UserID       uint
	MedicationID *uint
	DateFrom     *time.Time
	DateTo       *time.Time
	Page         int
	PageSize     int
}

type PagedLogs struct {
	Logs       []*Log
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
