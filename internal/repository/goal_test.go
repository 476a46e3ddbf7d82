package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
	"github.com/abisgit/pillar-backend/internal/testutil"
)

func newGoal(userID, title string, pillar model.Pillar) *model.Goal {
	now := time.Now()
	return &model.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Pillar:    pillar,
		Horizon:   model.HorizonDaily,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGoalRepo_CreateAndByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewGoalRepository(db)

	goal := newGoal(user.ID, "Cold Shower", model.PillarHealthFitness)
	require.NoError(t, repo.Create(goal))

	fetched, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, fetched.ID)
	assert.Equal(t, user.ID, fetched.UserID)
	assert.Equal(t, "Cold Shower", fetched.Title)
	assert.Equal(t, model.PillarHealthFitness, fetched.Pillar)
	assert.False(t, fetched.IsCompleted)
	assert.Nil(t, fetched.CompletedAt)
}

func TestGoalRepo_ByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGoalRepository(db)

	_, err := repo.ByID("nonexistent")
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}

func TestGoalRepo_Goals_InsertionOrderAndFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewGoalRepository(db)

	g1 := newGoal(user.ID, "First", model.PillarHealthFitness)
	g1.CreatedAt = time.Now().Add(-2 * time.Hour)
	g2 := newGoal(user.ID, "Second", model.PillarFinances)
	g2.CreatedAt = time.Now().Add(-1 * time.Hour)
	require.NoError(t, repo.Create(g1))
	require.NoError(t, repo.Create(g2))

	goals, err := repo.Goals(user.ID, nil)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "First", goals[0].Title)
	assert.Equal(t, "Second", goals[1].Title)

	pillar := model.PillarFinances
	filtered, err := repo.Goals(user.ID, &pillar)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Second", filtered[0].Title)
}

func TestGoalRepo_Goals_ScopedToUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.NewTestUser(t, db, "alice@example.com")
	bob := testutil.NewTestUser(t, db, "bob@example.com")
	repo := repository.NewGoalRepository(db)

	require.NoError(t, repo.Create(newGoal(alice.ID, "Alice Goal", model.PillarCareer)))

	goals, err := repo.Goals(bob.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalRepo_SetCompletion_CommitsGoalAndFact(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewGoalRepository(db)
	completions := repository.NewCompletionRepository(db)

	goal := newGoal(user.ID, "Meditate", model.PillarMentalHealth)
	require.NoError(t, repo.Create(goal))

	now := time.Now()
	day := model.Day(now)
	goal.IsCompleted = true
	goal.CompletedAt = &now
	goal.UpdatedAt = now

	err := repo.SetCompletion(goal, false, &model.CompletionFact{
		GoalID:     goal.ID,
		UserID:     user.ID,
		Day:        day,
		Completed:  true,
		RecordedAt: now,
	})
	require.NoError(t, err)

	fetched, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsCompleted)
	require.NotNil(t, fetched.CompletedAt)

	counts, err := completions.CountsByDay(user.ID, day, day)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[day])
}

func TestGoalRepo_SetCompletion_ConflictWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewGoalRepository(db)
	completions := repository.NewCompletionRepository(db)

	goal := newGoal(user.ID, "Meditate", model.PillarMentalHealth)
	require.NoError(t, repo.Create(goal))

	now := time.Now()
	day := model.Day(now)
	goal.IsCompleted = true
	goal.CompletedAt = &now

	// Claim the goal was already completed: the optimistic check fails and
	// the ledger fact must not land either.
	err := repo.SetCompletion(goal, true, &model.CompletionFact{
		GoalID:     goal.ID,
		UserID:     user.ID,
		Day:        day,
		Completed:  true,
		RecordedAt: now,
	})
	assert.ErrorIs(t, err, repository.ErrToggleConflict)

	fetched, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsCompleted)

	counts, err := completions.CountsByDay(user.ID, day, day)
	require.NoError(t, err)
	assert.Zero(t, counts[day])
}

func TestGoalRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewGoalRepository(db)

	goal := newGoal(user.ID, "Old Title", model.PillarPersonalGrowth)
	require.NoError(t, repo.Create(goal))

	goal.Title = "New Title"
	goal.Description = "details"
	require.NoError(t, repo.Update(goal))

	fetched, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", fetched.Title)
	assert.Equal(t, "details", fetched.Description)
}

func TestGoalRepo_Delete_KeepsLedger(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewGoalRepository(db)
	completions := repository.NewCompletionRepository(db)

	goal := newGoal(user.ID, "Read", model.PillarPersonalGrowth)
	require.NoError(t, repo.Create(goal))

	day := testutil.DayOffset(-3)
	testutil.RecordFact(t, db, user.ID, goal.ID, day, true)

	require.NoError(t, repo.Delete(user.ID, goal.ID))

	_, err := repo.ByID(goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	// History outlives the goal.
	counts, err := completions.CountsByDay(user.ID, day, day)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[day])
}

func TestGoalRepo_Delete_WrongUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.NewTestUser(t, db, "alice@example.com")
	bob := testutil.NewTestUser(t, db, "bob@example.com")
	repo := repository.NewGoalRepository(db)

	goal := newGoal(alice.ID, "Alice Goal", model.PillarCareer)
	require.NoError(t, repo.Create(goal))

	err := repo.Delete(bob.ID, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}

func TestGoalRepo_CountByTemplate(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewGoalRepository(db)

	goal := newGoal(user.ID, "Cold Shower", model.PillarHealthFitness)
	tplID := "tpl-cold-shower"
	goal.TemplateID = &tplID
	require.NoError(t, repo.Create(goal))

	count, err := repo.CountByTemplate(user.ID, tplID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountByTemplate(user.ID, "tpl-other")
	require.NoError(t, err)
	assert.Zero(t, count)
}
