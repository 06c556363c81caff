package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain"
	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
	"github.com/helioslabs/vitaltrack/internal/domain/goal"
	"github.com/helioslabs/vitaltrack/internal/domain/meal"
	"github.com/helioslabs/vitaltrack/internal/domain/metric"
	"github.com/helioslabs/vitaltrack/internal/report"
)

// Dashboard is the combined aggregation payload the dashboard screen renders
// in one request.
type Dashboard struct {
	Weight        report.WeightReport        `json:"weight"`
	BloodPressure report.BloodPressureReport `json:"blood_pressure"`
	HeartRate     report.HeartRateReport     `json:"heart_rate"`
	Sleep         report.SleepReport         `json:"sleep"`
	Nutrition     report.NutritionReport     `json:"nutrition"`
	Exercise      report.ExerciseReport      `json:"exercise"`
	Score         report.HealthScore         `json:"score"`
	OpenGoals     []*goal.Goal               `json:"open_goals"`
}

// ReportService fetches date-filtered record slices and hands them to the
// pure aggregators. It owns no aggregation logic itself.
type ReportService struct {
	users        UserProfileRepository
	metricRepo   metric.Repository
	mealRepo     meal.Repository
	exerciseRepo exercise.Repository
	goalRepo     goal.Repository
	log          *zap.Logger

	// now is swapped in tests to pin the weekly sleep window.
	now func() time.Time
}

func NewReportService(
	users UserProfileRepository,
	metricRepo metric.Repository,
	mealRepo meal.Repository,
	exerciseRepo exercise.Repository,
	goalRepo goal.Repository,
	log *zap.Logger,
) *ReportService {
	return &ReportService{
		users:        users,
		metricRepo:   metricRepo,
		mealRepo:     mealRepo,
		exerciseRepo: exerciseRepo,
		goalRepo:     goalRepo,
		log:          log,
		now:          time.Now,
	}
}

func rangeOf(from, to *time.Time) *report.DateRange {
	if from == nil && to == nil {
		return nil
	}
	r := &report.DateRange{}
	if from != nil {
		r.Start = *from
	}
	if to != nil {
		r.End = *to
	}
	return r
}

func (s *ReportService) Weight(ctx context.Context, userID uint, from, to *time.Time) (report.WeightReport, error) {
	metrics, err := s.metricRepo.ListByType(ctx, userID, metric.TypeWeight, from, to)
	if err != nil {
		return report.WeightReport{}, err
	}
	return report.Weight(metrics, rangeOf(from, to)), nil
}

func (s *ReportService) BloodPressure(ctx context.Context, userID uint, from, to *time.Time) (report.BloodPressureReport, error) {
	metrics, err := s.metricRepo.ListByType(ctx, userID, metric.TypeBloodPressure, from, to)
	if err != nil {
		return report.BloodPressureReport{}, err
	}
	return report.BloodPressure(metrics, rangeOf(from, to)), nil
}

func (s *ReportService) HeartRate(ctx context.Context, userID uint, from, to *time.Time) (report.HeartRateReport, error) {
	metrics, err := s.metricRepo.ListByType(ctx, userID, metric.TypeHeartRate, from, to)
	if err != nil {
		return report.HeartRateReport{}, err
	}
	return report.HeartRate(metrics, rangeOf(from, to)), nil
}

func (s *ReportService) Sleep(ctx context.Context, userID uint, from, to *time.Time) (report.SleepReport, error) {
	metrics, err := s.metricRepo.ListByType(ctx, userID, metric.TypeSleep, from, to)
	if err != nil {
		return report.SleepReport{}, err
	}
	return report.Sleep(metrics, rangeOf(from, to), s.now()), nil
}

func (s *ReportService) Nutrition(ctx context.Context, userID uint, from, to *time.Time) (report.NutritionReport, error) {
	meals, err := s.mealRepo.ListByDate(ctx, userID, from, to)
	if err != nil {
		return report.NutritionReport{}, err
	}
	return report.Nutrition(meals, rangeOf(from, to)), nil
}

func (s *ReportService) Exercise(ctx context.Context, userID uint, from, to *time.Time) (report.ExerciseReport, error) {
	logs, err := s.exerciseRepo.ListByDate(ctx, userID, from, to)
	if err != nil {
		return report.ExerciseReport{}, err
	}
	return report.Exercise(logs, rangeOf(from, to)), nil
}

// Score computes the composite health score over the trailing 7 days.
func (s *ReportService) Score(ctx context.Context, userID uint) (report.HealthScore, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return report.HealthScore{}, err
	}

	now := s.now()
	from := now.AddDate(0, 0, -7)
	return s.scoreWindow(ctx, u, &from, &now)
}

func (s *ReportService) scoreWindow(ctx context.Context, u *domain.User, from, to *time.Time) (report.HealthScore, error) {
	var in report.ScoreInputs
	in.TargetWeight = u.TargetWeight
	in.TargetSleep = u.TargetSleep

	weights, err := s.metricRepo.ListByType(ctx, u.ID, metric.TypeWeight, from, to)
	if err != nil {
		return report.HealthScore{}, err
	}
	if w := report.Weight(weights, rangeOf(from, to)); len(w.Points) > 0 {
		in.LatestWeight = w.Latest
		in.HasWeight = true
	}

	logs, err := s.exerciseRepo.ListByDate(ctx, u.ID, from, to)
	if err != nil {
		return report.HealthScore{}, err
	}
	ex := report.Exercise(logs, rangeOf(from, to))
	in.ExerciseMinutes = float64(ex.TotalMinutes)

	sleeps, err := s.metricRepo.ListByType(ctx, u.ID, metric.TypeSleep, from, to)
	if err != nil {
		return report.HealthScore{}, err
	}
	sl := report.Sleep(sleeps, rangeOf(from, to), s.now())
	in.SleepHours = sl.TotalHours
	in.SleepEntries = len(sl.Nights)

	meals, err := s.mealRepo.ListByDate(ctx, u.ID, from, to)
	if err != nil {
		return report.HealthScore{}, err
	}
	in.ProteinGrams = report.Nutrition(meals, rangeOf(from, to)).TotalProtein

	return report.Score(in), nil
}

// BuildDashboard assembles every aggregate over the trailing 30 days, plus
// the 7-day composite score and the user's open goals.
func (s *ReportService) BuildDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	from := now.AddDate(0, 0, -30)

	d := &Dashboard{}
	if d.Weight, err = s.Weight(ctx, userID, &from, &now); err != nil {
		return nil, err
	}
	if d.BloodPressure, err = s.BloodPressure(ctx, userID, &from, &now); err != nil {
		return nil, err
	}
	if d.HeartRate, err = s.HeartRate(ctx, userID, &from, &now); err != nil {
		return nil, err
	}
	if d.Sleep, err = s.Sleep(ctx, userID, &from, &now); err != nil {
		return nil, err
	}
	if d.Nutrition, err = s.Nutrition(ctx, userID, &from, &now); err != nil {
		return nil, err
	}
	if d.Exercise, err = s.Exercise(ctx, userID, &from, &now); err != nil {
		return nil, err
	}

	scoreFrom := now.AddDate(0, 0, -7)
	if d.Score, err = s.scoreWindow(ctx, u, &scoreFrom, &now); err != nil {
		return nil, err
	}

	open := false
	goals, err := s.goalRepo.List(ctx, &goal.ListGoalsQuery{
		UserID:    userID,
		Completed: &open,
		Page:      1,
		PageSize:  20,
	})
	if err != nil {
		return nil, err
	}
	d.OpenGoals = goals.Goals

	s.log.Debug("dashboard built",
		zap.Uint("user_id", userID),
		zap.Int("open_goals", len(d.OpenGoals)),
	)
	return d, nil
}
