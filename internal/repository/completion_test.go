package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
	"github.com/abisgit/pillar-backend/internal/testutil"
)

func fact(userID, goalID, day string, completed bool) *model.CompletionFact {
	return &model.CompletionFact{
		GoalID:     goalID,
		UserID:     userID,
		Day:        day,
		Completed:  completed,
		RecordedAt: time.Now(),
	}
}

func TestCompletionRepo_Record_IdempotentPerDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewCompletionRepository(db)

	day := testutil.DayOffset(0)
	require.NoError(t, repo.Record(fact(user.ID, "g1", day, true)))
	require.NoError(t, repo.Record(fact(user.ID, "g1", day, true)))

	counts, err := repo.CountsByDay(user.ID, day, day)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[day])
}

func TestCompletionRepo_Record_RetractionOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewCompletionRepository(db)

	day := testutil.DayOffset(0)
	require.NoError(t, repo.Record(fact(user.ID, "g1", day, true)))
	require.NoError(t, repo.Record(fact(user.ID, "g1", day, false)))

	counts, err := repo.CountsByDay(user.ID, day, day)
	require.NoError(t, err)
	assert.Zero(t, counts[day])

	// Flap back on: the final state for the day wins.
	require.NoError(t, repo.Record(fact(user.ID, "g1", day, true)))
	counts, err = repo.CountsByDay(user.ID, day, day)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[day])
}

func TestCompletionRepo_CountsByDay_DistinctGoalsInclusiveRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewCompletionRepository(db)

	d0 := testutil.DayOffset(-2)
	d1 := testutil.DayOffset(-1)
	d2 := testutil.DayOffset(0)

	require.NoError(t, repo.Record(fact(user.ID, "g1", d0, true)))
	require.NoError(t, repo.Record(fact(user.ID, "g2", d0, true)))
	require.NoError(t, repo.Record(fact(user.ID, "g1", d2, true)))

	counts, err := repo.CountsByDay(user.ID, d0, d2)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[d0])
	assert.Zero(t, counts[d1])
	assert.Equal(t, 1, counts[d2])

	// Range bounds are inclusive: narrowing to [d1, d2] drops d0.
	counts, err = repo.CountsByDay(user.ID, d1, d2)
	require.NoError(t, err)
	assert.NotContains(t, counts, d0)
	assert.Equal(t, 1, counts[d2])
}

func TestCompletionRepo_CountsByDay_ScopedToUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.NewTestUser(t, db, "alice@example.com")
	bob := testutil.NewTestUser(t, db, "bob@example.com")
	repo := repository.NewCompletionRepository(db)

	day := testutil.DayOffset(0)
	require.NoError(t, repo.Record(fact(alice.ID, "g1", day, true)))

	counts, err := repo.CountsByDay(bob.ID, day, day)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestCompletionRepo_ActiveDays_Ascending(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, db, "a@example.com")
	repo := repository.NewCompletionRepository(db)

	d0 := testutil.DayOffset(-5)
	d1 := testutil.DayOffset(-1)
	d2 := testutil.DayOffset(0)

	require.NoError(t, repo.Record(fact(user.ID, "g1", d2, true)))
	require.NoError(t, repo.Record(fact(user.ID, "g1", d0, true)))
	require.NoError(t, repo.Record(fact(user.ID, "g2", d0, true)))
	require.NoError(t, repo.Record(fact(user.ID, "g1", d1, false)))

	days, err := repo.ActiveDays(user.ID, testutil.DayOffset(-10), d2)
	require.NoError(t, err)
	assert.Equal(t, []string{d0, d2}, days)
}
