package model

import (
	"time"
)

// DayLayout is the civil-date format used for ledger days. Days are
// attributed in UTC so the contribution graph is stable across clients.
const DayLayout = "2006-01-02"

// CompletionFact is one ledger row: the final completion state of a goal for
// a single calendar day. Re-toggling within the same day overwrites the row,
// so a goal flapping on and off nets to its last state for that day.
type CompletionFact struct {
	GoalID     string    `db:"goal_id"`
	UserID     string    `db:"user_id"`
	Day        string    `db:"day"`
	Completed  bool      `db:"completed"`
	RecordedAt time.Time `db:"recorded_at"`
}

// Day formats t as a ledger day in UTC.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}
