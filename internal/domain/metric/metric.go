package metric

import (
	"time"
)

// Type discriminates the encoding of a HealthMetric's Value field.
type Type string

const (
	TypeWeight        Type = "weight"         // kg, numeric
	TypeBloodPressure Type = "blood_pressure" // JSON {systolic, diastolic}
	TypeHeartRate     Type = "heart_rate"     // bpm, numeric
	TypeSleep         Type = "sleep"          // hours, numeric
	TypeSteps         Type = "steps"          // count, numeric
	TypeWater         Type = "water"          // liters, numeric
)

func (t Type) IsValid() bool {
	switch t {
	case TypeWeight, TypeBloodPressure, TypeHeartRate, TypeSleep, TypeSteps, TypeWater:
		return true
	}
	return false
}

// IsNumeric reports whether Value holds a plain number for this type.
func (t Type) IsNumeric() bool {
	return t.IsValid() && t != TypeBloodPressure
}

type HealthMetric struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	UserID uint `gorm:"column:user_id;not null;index:idx_metrics_user_type_date,priority:1"`
	Type   Type `gorm:"column:type;type:varchar(30);not null;index:idx_metrics_user_type_date,priority:2"`

	// Value's shape depends on Type: a plain number for numeric types, a
	// JSON object for blood_pressure. Decoded via ParseNumeric /
	// ParseBloodPressure, never interpreted by the store.
	Value string    `gorm:"column:value;type:varchar(255);not null"`
	Date  time.Time `gorm:"column:date;not null;index:idx_metrics_user_type_date,priority:3"`
	Notes string    `gorm:"column:notes;type:text"`
}

func (HealthMetric) TableName() string {
	return "health_metrics"
}

type CreateMetricCommand struct {
	UserID uint
	Type   Type
	Value  string
	Date   time.Time
	Notes  string
}

type UpdateMetricCommand struct {
	Value *string
	Date  *time.Time
	Notes *string
}

type ListMetricsQuery struct {
	UserID   uint
	Type     *Type
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

type PagedMetrics struct {
	Metrics    []*HealthMetric
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
