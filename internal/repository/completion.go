package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/abisgit/pillar-backend/internal/model"
)

// completionUpsertQuery writes one ledger fact, overwriting any prior fact
// for the same (goal, day). Shared with GoalRepository.SetCompletion so both
// paths keep the same idempotence guarantee.
const completionUpsertQuery = `
	INSERT INTO completion_facts (goal_id, user_id, day, completed, recorded_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (goal_id, day)
	DO UPDATE SET completed = excluded.completed, recorded_at = excluded.recorded_at`

type CompletionRepository interface {
	Record(fact *model.CompletionFact) error
	CountsByDay(userID, fromDay, toDay string) (map[string]int, error)
	ActiveDays(userID, fromDay, toDay string) ([]string, error)
}

type completionRepository struct {
	db *sqlx.DB
}

func NewCompletionRepository(db *sqlx.DB) CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) Record(fact *model.CompletionFact) error {
	_, err := r.db.Exec(completionUpsertQuery,
		fact.GoalID,
		fact.UserID,
		fact.Day,
		fact.Completed,
		fact.RecordedAt,
	)
	return err
}

// CountsByDay returns the distinct-completed-goal count per day over the
// inclusive [fromDay, toDay] range. Days with no completions are absent from
// the map; the aggregator zero-fills.
func (r *completionRepository) CountsByDay(userID, fromDay, toDay string) (map[string]int, error) {
	query := `SELECT day, COUNT(DISTINCT goal_id) AS count
	          FROM completion_facts
	          WHERE user_id = $1 AND completed = TRUE AND day >= $2 AND day <= $3
	          GROUP BY day`

	rows, err := r.db.Queryx(query, userID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day] = count
	}

	return counts, rows.Err()
}

// ActiveDays returns the ascending list of days in [fromDay, toDay] with at
// least one completion. Feeds streak derivation.
func (r *completionRepository) ActiveDays(userID, fromDay, toDay string) ([]string, error) {
	query := `SELECT DISTINCT day
	          FROM completion_facts
	          WHERE user_id = $1 AND completed = TRUE AND day >= $2 AND day <= $3
	          ORDER BY day ASC`

	var days []string
	err := r.db.Select(&days, query, userID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	return days, nil
}
