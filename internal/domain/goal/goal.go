package goal

import (
	"time"
)

type Goal struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	UserID uint `gorm:"column:user_id;not null;index"`

	Title    string `gorm:"column:title;type:varchar(200);not null"`
	Category string `gorm:"column:category;type:varchar(50);not null;index"`

	// Target and CurrentValue are free text, parsed as numbers when numeric
	// ("70" vs "run a 10k"). StartValue freezes the current value at goal
	// creation so the inverted weight formula has a stable starting point.
	Target       string `gorm:"column:target;type:varchar(100)"`
	CurrentValue string `gorm:"column:current_value;type:varchar(100)"`
	StartValue   string `gorm:"column:start_value;type:varchar(100)"`

	StartDate  time.Time  `gorm:"column:start_date;not null"`
	TargetDate *time.Time `gorm:"column:target_date"`

	Completed bool `gorm:"column:completed;default:false;index"`
	// Progress is computed at submit time by the progress calculator and
	// stored, never derived live. Always in [0,100].
	Progress int    `gorm:"column:progress;default:0"`
	Icon     string `gorm:"column:icon;type:varchar(50)"`
}

func (Goal) TableName() string {
	return "goals"
}

type CreateGoalCommand struct {
	UserID       uint
	Title        string
	Category     string
	Target       string
	CurrentValue string
	StartDate    time.Time
	TargetDate   *time.Time
	Icon         string
}

type UpdateGoalCommand struct {
	Title        *string
	Category     *string
	Target       *string
	CurrentValue *string
	TargetDate   *time.Time
	Completed    *bool
	Icon         *string
}

type ListGoalsQuery struct {
	UserID    uint
	Category  *string
	Completed *bool
	Page      int
	PageSize  int
}

type PagedGoals struct {
	Goals      []*Goal
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
