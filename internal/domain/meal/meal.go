package meal

import (
	"time"
)

type MealType string

const (
	TypeBreakfast MealType = "breakfast"
	TypeLunch     MealType = "lunch"
	TypeDinner    MealType = "dinner"
	TypeSnack     MealType = "snack"
)

func (t MealType) IsValid() bool {
	switch t {
	case TypeBreakfast, TypeLunch, TypeDinner, TypeSnack:
		return true
	}
	return false
}

type Meal struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	UserID uint     `gorm:"column:user_id;not null;index:idx_meals_user_date,priority:1"`
	Name   string   `gorm:"column:name;type:varchar(200);not null"`
	Type   MealType `gorm:"column:type;type:varchar(20);not null"`

	Calories float64 `gorm:"column:calories"` // kcal
	Protein  float64 `gorm:"column:protein"`  // grams
	Carbs    float64 `gorm:"column:carbs"`    // grams
	Fat      float64 `gorm:"column:fat"`      // grams

	Date  time.Time `gorm:"column:date;not null;index:idx_meals_user_date,priority:2"`
	Foods []string  `gorm:"column:foods;serializer:json"`
	Notes string    `gorm:"column:notes;type:text"`
}

func (Meal) TableName() string {
	return "meals"
}

type CreateMealCommand struct {
	UserID   uint
	Name     string
	Type     MealType
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Date     time.Time
	Foods    []string
	Notes    string
}

type UpdateMealCommand struct {
	Name     *string
	Type     *MealType
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Date     *time.Time
	Foods    *[]string
	Notes    *string
}

type ListMealsQuery struct {
	UserID   uint
	Type     *MealType
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

type PagedMeals struct {
	Meals      []*Meal
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
