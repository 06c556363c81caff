package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain"
	"github.com/helioslabs/vitaltrack/internal/domain/goal"
)

type fakeGoalRepo struct {
	goals  map[uint]*goal.Goal
	nextID uint
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uint]*goal.Goal), nextID: 1}
}

func (r *fakeGoalRepo) Create(_ context.Context, g *goal.Goal) error {
	g.ID = r.nextID
	r.nextID++
	cp := *g
	r.goals[g.ID] = &cp
	return nil
}

func (r *fakeGoalRepo) GetByID(_ context.Context, id uint) (*goal.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, goal.ErrGoalNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *goal.Goal) error {
	if _, ok := r.goals[g.ID]; !ok {
		return goal.ErrGoalNotFound
	}
	cp := *g
	r.goals[g.ID] = &cp
	return nil
}

func (r *fakeGoalRepo) SoftDelete(_ context.Context, id uint) error {
	if _, ok := r.goals[id]; !ok {
		return goal.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}

func (r *fakeGoalRepo) List(_ context.Context, q *goal.ListGoalsQuery) (*goal.PagedGoals, error) {
	paged := &goal.PagedGoals{Page: q.Page, PageSize: q.PageSize, TotalPages: 1}
	for _, g := range r.goals {
		if g.UserID != q.UserID {
			continue
		}
		if q.Completed != nil && g.Completed != *q.Completed {
			continue
		}
		cp := *g
		paged.Goals = append(paged.Goals, &cp)
	}
	paged.TotalCount = int64(len(paged.Goals))
	return paged, nil
}

type noopAuditRepo struct{}

func (noopAuditRepo) Create(context.Context, *domain.AuditLog) error { return nil }

func newTestGoalService() (*GoalService, *fakeGoalRepo) {
	repo := newFakeGoalRepo()
	audit := NewAuditService(noopAuditRepo{}, zap.NewNop())
	return NewGoalService(repo, audit, zap.NewNop()), repo
}

func TestGoalService_CreateFreezesStartValue(t *testing.T) {
	svc, _ := newTestGoalService()
	ctx := context.Background()

	g, err := svc.Create(ctx, &goal.CreateGoalCommand{
		UserID:       1,
		Title:        "Reach race weight",
		Category:     "Weight",
		Target:       "60",
		CurrentValue: "70",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "70", g.StartValue)
	assert.Equal(t, "weight", g.Category)
	assert.Equal(t, 0, g.Progress)
}

func TestGoalService_UpdateRecomputesWeightProgress(t *testing.T) {
	svc, _ := newTestGoalService()
	ctx := context.Background()

	g, err := svc.Create(ctx, &goal.CreateGoalCommand{
		UserID:       1,
		Title:        "Reach race weight",
		Category:     "weight",
		Target:       "60",
		CurrentValue: "70",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "")
	require.NoError(t, err)

	halfway := "65"
	g, err = svc.Update(ctx, g.ID, 1, &goal.UpdateGoalCommand{CurrentValue: &halfway}, "")
	require.NoError(t, err)
	assert.Equal(t, 50, g.Progress)

	done := "60"
	g, err = svc.Update(ctx, g.ID, 1, &goal.UpdateGoalCommand{CurrentValue: &done}, "")
	require.NoError(t, err)
	assert.Equal(t, 100, g.Progress)
	assert.False(t, g.Completed, "reaching 100%% must not auto-complete")
}

func TestGoalService_TextualGoalReportsZeroProgress(t *testing.T) {
	svc, _ := newTestGoalService()
	ctx := context.Background()

	g, err := svc.Create(ctx, &goal.CreateGoalCommand{
		UserID:       1,
		Title:        "Run a 10k",
		Category:     "fitness",
		Target:       "finish the spring 10k",
		CurrentValue: "training",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Progress)
}

func TestGoalService_NonFiniteValuesYieldZeroProgress(t *testing.T) {
	svc, _ := newTestGoalService()
	ctx := context.Background()

	g, err := svc.Create(ctx, &goal.CreateGoalCommand{
		UserID:       1,
		Title:        "Daily steps",
		Category:     "steps",
		Target:       "100",
		CurrentValue: "NaN",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Progress)

	inf := "+Inf"
	g, err = svc.Update(ctx, g.ID, 1, &goal.UpdateGoalCommand{CurrentValue: &inf}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Progress)
}

func TestGoalService_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestGoalService()
	ctx := context.Background()

	g, err := svc.Create(ctx, &goal.CreateGoalCommand{
		UserID:       1,
		Title:        "Drink more water",
		Category:     "hydration",
		Target:       "2.5",
		CurrentValue: "1",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "")
	require.NoError(t, err)

	_, err = svc.Get(ctx, g.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, g.ID, 2, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGoalService_CreateValidation(t *testing.T) {
	svc, _ := newTestGoalService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &goal.CreateGoalCommand{UserID: 1}, "")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title is required")
	assert.Contains(t, verr.Fields, "category is required")
	assert.Contains(t, verr.Fields, "start_date is required")
}
