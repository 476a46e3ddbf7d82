package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abisgit/pillar-backend/internal/model"
)

var (
	ErrGoalNotFound   = errors.New("goal not found")
	ErrToggleConflict = errors.New("goal completion state changed concurrently")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	Goals(userID string, pillar *model.Pillar) ([]*model.Goal, error)
	CountByTemplate(userID, templateID string) (int, error)
	Update(goal *model.Goal) error
	Delete(userID, goalID string) error

	// SetCompletion commits a completion toggle: the goal's cached state and
	// the day's ledger fact are written in one transaction. wasCompleted is
	// the state the caller observed; if the row no longer matches it the
	// toggle lost a race and ErrToggleConflict is returned with nothing
	// written.
	SetCompletion(goal *model.Goal, wasCompleted bool, fact *model.CompletionFact) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, template_id, title, description, pillar, horizon, is_completed, completed_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.TemplateID,
		goal.Title,
		goal.Description,
		goal.Pillar,
		goal.Horizon,
		goal.IsCompleted,
		goal.CompletedAt,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

// ByID loads a goal without scoping to a user. Ownership is enforced in the
// service layer so that a caller touching someone else's goal gets an
// authorization failure rather than a not-found.
func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals(userID string, pillar *model.Pillar) ([]*model.Goal, error) {
	var goals []*model.Goal

	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
	args := []any{userID}

	if pillar != nil {
		query = `SELECT * FROM goals WHERE user_id = $1 AND pillar = $2 ORDER BY created_at ASC, id ASC`
		args = append(args, *pillar)
	}

	err := r.db.Select(&goals, query, args...)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) CountByTemplate(userID, templateID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM goals WHERE user_id = $1 AND template_id = $2`
	err := r.db.QueryRow(query, userID, templateID).Scan(&count)
	return count, err
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, description = $2, updated_at = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Description,
		time.Now(),
		goal.ID,
		goal.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete removes the goal row only. Ledger facts are kept so that past
// consistency graphs stay accurate.
func (r *goalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, goalID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) SetCompletion(goal *model.Goal, wasCompleted bool, fact *model.CompletionFact) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE goals
	          SET is_completed = $1, completed_at = $2, updated_at = $3
	          WHERE id = $4 AND user_id = $5 AND is_completed = $6`

	result, err := tx.Exec(query,
		goal.IsCompleted,
		goal.CompletedAt,
		goal.UpdatedAt,
		goal.ID,
		goal.UserID,
		wasCompleted,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrToggleConflict
	}

	_, err = tx.Exec(completionUpsertQuery,
		fact.GoalID,
		fact.UserID,
		fact.Day,
		fact.Completed,
		fact.RecordedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
