package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/helioslabs/vitaltrack/internal/domain/goal"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GoalRepository) GetByID(ctx context.Context, id uint) (*goal.Goal, error) {
	var g goal.Goal
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, goal.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GoalRepository) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&goal.Goal{}).
		Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) List(ctx context.Context, q *goal.ListGoalsQuery) (*goal.PagedGoals, error) {
	base := r.db.WithContext(ctx).Model(&goal.Goal{}).
		Where("user_id = ? AND deleted_at IS NULL", q.UserID)

	if q.Category != nil {
		base = base.Where("category = ?", *q.Category)
	}
	if q.Completed != nil {
		base = base.Where("completed = ?", *q.Completed)
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, err
	}

	var items []*goal.Goal
	err := base.Order("created_at DESC").Scopes(paginate(q.Page, q.PageSize)).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &goal.PagedGoals{
		Goals:      items,
		TotalCount: count,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(count, q.PageSize),
	}, nil
}
