package exercise

import (
	"time"
)

type Log struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	UserID uint `gorm:"column:user_id;not null;index:idx_exercise_user_date,priority:1"`

	Type         string   `gorm:"column:type;type:varchar(100);not null"` // running, cycling, yoga, ...
	DurationMins int      `gorm:"column:duration_mins;not null"`
	DistanceKM   *float64 `gorm:"column:distance_km"`
	Calories     *float64 `gorm:"column:calories"`

	Date  time.Time `gorm:"column:date;not null;index:idx_exercise_user_date,priority:2"`
	Notes string    `gorm:"column:notes;type:text"`
}

func (Log) TableName() string {
	return "exercise_logs"
}

type CreateLogCommand struct {
	UserID       uint
	Type         string
	DurationMins int
	DistanceKM   *float64
	Calories     *float64
	Date         time.Time
	Notes        string
}

type UpdateLogCommand struct {
	Type         *string
	DurationMins *int
	DistanceKM   *float64
	Calories     *float64
	Date         *time.Time
	Notes        *string
}

type ListLogsQuery struct {
	UserID   uint
	Type     *string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

type PagedLogs struct {
	Logs       []*Log
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
