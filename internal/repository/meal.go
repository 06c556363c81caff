package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/helioslabs/vitaltrack/internal/domain/meal"
)

type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) Create(ctx context.Context, m *meal.Meal) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MealRepository) GetByID(ctx context.Context, id uint) (*meal.Meal, error) {
	var m meal.Meal
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, meal.ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepository) Update(ctx context.Context, id uint, cmd *meal.UpdateMealCommand) (*meal.Meal, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		m.Name = *cmd.Name
	}
	if cmd.Type != nil {
		m.Type = *cmd.Type
	}
	if cmd.Calories != nil {
		m.Calories = *cmd.Calories
	}
	if cmd.Protein != nil {
		m.Protein = *cmd.Protein
	}
	if cmd.Carbs != nil {
		m.Carbs = *cmd.Carbs
	}
	if cmd.Fat != nil {
		m.Fat = *cmd.Fat
	}
	if cmd.Date != nil {
		m.Date = *cmd.Date
	}
	if cmd.Foods != nil {
		m.Foods = *cmd.Foods
	}
	if cmd.Notes != nil {
		m.Notes = *cmd.Notes
	}

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MealRepository) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&meal.Meal{}).
		Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return meal.ErrMealNotFound
	}
	return nil
}

func (r *MealRepository) List(ctx context.Context, q *meal.ListMealsQuery) (*meal.PagedMeals, error) {
	base := r.db.WithContext(ctx).Model(&meal.Meal{}).
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

	var items []*meal.Meal
	err := base.Order("date DESC").Scopes(paginate(q.Page, q.PageSize)).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &meal.PagedMeals{
		Meals:      items,
		TotalCount: count,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(count, q.PageSize),
	}, nil
}

func (r *MealRepository) ListByDate(ctx context.Context, userID uint, from, to *time.Time) ([]meal.Meal, error) {
	q := r.db.WithContext(ctx).Where("user_id = ? AND deleted_at IS NULL", userID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var items []meal.Meal
	if err := q.Order("date ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
