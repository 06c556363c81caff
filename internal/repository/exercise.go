package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, l *exercise.Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id uint) (*exercise.Log, error) {
	var l exercise.Log
	err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, exercise.ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, id uint, cmd *exercise.UpdateLogCommand) (*exercise.Log, error) {
	l, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Type != nil {
		l.Type = *cmd.Type
	}
	if cmd.DurationMins != nil {
		l.DurationMins = *cmd.DurationMins
	}
	if cmd.DistanceKM != nil {
		l.DistanceKM = cmd.DistanceKM
	}
	if cmd.Calories != nil {
		l.Calories = cmd.Calories
	}
	if cmd.Date != nil {
		l.Date = *cmd.Date
	}
	if cmd.Notes != nil {
		l.Notes = *cmd.Notes
	}

	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (r *ExerciseRepository) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&exercise.Log{}).
		Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return exercise.ErrLogNotFound
	}
	return nil
}

func (r *ExerciseRepository) List(ctx context.Context, q *exercise.ListLogsQuery) (*exercise.PagedLogs, error) {
	base := r.db.WithContext(ctx).Model(&exercise.Log{}).
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

	var items []*exercise.Log
	err := base.Order("date DESC").Scopes(paginate(q.Page, q.PageSize)).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &exercise.PagedLogs{
		Logs:       items,
		TotalCount: count,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(count, q.PageSize),
	}, nil
}

func (r *ExerciseRepository) ListByDate(ctx context.Context, userID uint, from, to *time.Time) ([]exercise.Log, error) {
	q := r.db.WithContext(ctx).Where("user_id = ? AND deleted_at IS NULL", userID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var items []exercise.Log
	if err := q.Order("date ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
