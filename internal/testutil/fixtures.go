package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
)

// NewTestUser inserts a user row and returns it.
func NewTestUser(t *testing.T, db *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}

	err := repository.NewUserRepository(db).Create(user)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// GoalOption customizes a test goal before insertion.
type GoalOption func(*model.Goal)

func WithPillar(p model.Pillar) GoalOption {
	return func(g *model.Goal) { g.Pillar = p }
}

func WithHorizon(h model.Horizon) GoalOption {
	return func(g *model.Goal) { g.Horizon = h }
}

func WithTemplateID(id string) GoalOption {
	return func(g *model.Goal) { g.TemplateID = &id }
}

// NewTestGoal inserts a goal for the user and returns it. Defaults: Health &
// Fitness pillar, Daily horizon, not completed.
func NewTestGoal(t *testing.T, db *sqlx.DB, userID, title string, opts ...GoalOption) *model.Goal {
	t.Helper()

	now := time.Now()
	goal := &model.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Pillar:    model.PillarHealthFitness,
		Horizon:   model.HorizonDaily,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(goal)
	}

	err := repository.NewGoalRepository(db).Create(goal)
	if err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}

	return goal
}

// RecordFact writes a completion ledger fact directly, bypassing the goal
// state machine. Useful for building history at arbitrary days.
func RecordFact(t *testing.T, db *sqlx.DB, userID, goalID, day string, completed bool) {
	t.Helper()

	err := repository.NewCompletionRepository(db).Record(&model.CompletionFact{
		GoalID:     goalID,
		UserID:     userID,
		Day:        day,
		Completed:  completed,
		RecordedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to record test fact: %v", err)
	}
}

// DayOffset returns the ledger day for today+offset in UTC.
func DayOffset(offset int) string {
	return model.Day(time.Now().UTC().AddDate(0, 0, offset))
}
