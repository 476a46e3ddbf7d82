package service_test

import (
	"math"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
	"github.com/abisgit/pillar-backend/internal/service"
	"github.com/abisgit/pillar-backend/internal/testutil"
)

func newBalanceService(db *sqlx.DB, axes []service.AxisSpec) *service.BalanceService {
	return service.NewBalanceService(
		axes,
		repository.NewGoalRepository(db),
		repository.NewCompletionRepository(db),
	)
}

func axisValue(t *testing.T, score *model.BalanceScore, label string) float64 {
	t.Helper()
	for _, a := range score.Axes {
		if a.Label == label {
			return a.Value
		}
	}
	t.Fatalf("axis %q not found", label)
	return 0
}

func TestBalance_DefaultAxes(t *testing.T) {
	axes := service.DefaultAxes()
	require.Len(t, axes, 9)
	assert.Equal(t, model.PillarHealthFitness.String(), axes[0].Label)
	assert.Equal(t, service.MetricCompletion, axes[0].Metric)
}

func TestBalance_OneOfThreeCompleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	svc := newBalanceService(db, nil)
	goals := service.NewGoalService(repository.NewGoalRepository(db), repository.NewTemplateRepository(db))

	for _, title := range []string{"A", "B", "C"} {
		_, err := goals.Create(user.ID, title, "", model.PillarFinances, model.HorizonDaily)
		require.NoError(t, err)
	}
	list, err := goals.Goals(user.ID, nil)
	require.NoError(t, err)
	_, err = goals.SetCompletion(user.ID, list[0].ID, true)
	require.NoError(t, err)

	score, err := svc.Score(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 33.33, axisValue(t, score, model.PillarFinances.String()))
}

func TestBalance_EmptyPillarScoresZero(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	svc := newBalanceService(db, nil)

	score, err := svc.Score(user.ID)
	require.NoError(t, err)
	require.Len(t, score.Axes, 9)
	for _, axis := range score.Axes {
		assert.Zero(t, axis.Value)
	}
	assert.Zero(t, score.Total)
}

func TestBalance_TotalIsRoundedMean(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	svc := newBalanceService(db, nil)

	// One fully completed pillar out of nine: total = 100/9 = 11.11.
	goal := testutil.NewTestGoal(t, db, user.ID, "Meditate", testutil.WithPillar(model.PillarMentalHealth))
	goals := service.NewGoalService(repository.NewGoalRepository(db), repository.NewTemplateRepository(db))
	_, err := goals.SetCompletion(user.ID, goal.ID, true)
	require.NoError(t, err)

	score, err := svc.Score(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, axisValue(t, score, model.PillarMentalHealth.String()))
	assert.Equal(t, 11.11, score.Total)
}

func TestBalance_ConsistencyMetricAxis(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")

	axes := []service.AxisSpec{
		{Label: "Momentum", Metric: service.MetricConsistency},
	}
	svc := newBalanceService(db, axes)

	// 3 active days of the trailing 30: 10.0.
	for _, off := range []int{0, -1, -2} {
		testutil.RecordFact(t, db, user.ID, "g1", testutil.DayOffset(off), true)
	}

	score, err := svc.Score(user.ID)
	require.NoError(t, err)
	require.Len(t, score.Axes, 1)
	assert.Equal(t, 10.0, score.Axes[0].Value)
	assert.Equal(t, 10.0, score.Total)
}

func TestBalance_ParseAxes(t *testing.T) {
	axes, err := service.ParseAxes("")
	require.NoError(t, err)
	assert.Len(t, axes, 9)

	axes, err = service.ParseAxes("Finances=completion,Momentum=consistency")
	require.NoError(t, err)
	require.Len(t, axes, 2)
	assert.Equal(t, model.PillarFinances, axes[0].Pillar)
	assert.Equal(t, service.MetricConsistency, axes[1].Metric)

	_, err = service.ParseAxes("Gaming=completion")
	assert.Error(t, err)

	_, err = service.ParseAxes("Finances=karma")
	assert.Error(t, err)

	_, err = service.ParseAxes("justalabel")
	assert.Error(t, err)
}

func TestBalance_RadarPoint(t *testing.T) {
	const size = 300.0
	center := size / 2
	radius := size * 0.35

	// Axis 0 at full value points straight up.
	x, y := service.RadarPoint(0, 9, 100, size)
	assert.InDelta(t, center, x, 1e-9)
	assert.InDelta(t, center-radius, y, 1e-9)

	// Zero value collapses to the center regardless of axis.
	x, y = service.RadarPoint(5, 9, 0, size)
	assert.InDelta(t, center, x, 1e-9)
	assert.InDelta(t, center, y, 1e-9)

	// Quarter turn on a 4-axis radar at half value.
	x, y = service.RadarPoint(1, 4, 50, size)
	assert.InDelta(t, center+radius/2, x, 1e-9)
	assert.InDelta(t, center, y, 1e-9)

	// Distance from center is proportional to value.
	x, y = service.RadarPoint(3, 9, 75, size)
	dist := math.Hypot(x-center, y-center)
	assert.InDelta(t, radius*0.75, dist, 1e-9)
}
