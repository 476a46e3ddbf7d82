package service

import (
	"time"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
)

const (
	// MaxWindowDays caps the contribution graph at a leap year.
	MaxWindowDays     = 366
	DefaultWindowDays = 365

	streakLookbackDays = 365
)

// Streaks summarizes consecutive active days. Current counts the run ending
// today (or yesterday, if today has no completion yet); Longest is the best
// run in the trailing year.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ConsistencyService derives the calendar view from the completion ledger.
// All reads are pure over committed ledger state.
type ConsistencyService struct {
	completions repository.CompletionRepository
}

func NewConsistencyService(completions repository.CompletionRepository) *ConsistencyService {
	return &ConsistencyService{completions: completions}
}

// Graph returns exactly windowDays points covering the consecutive calendar
// days ending today (UTC), ascending, zero-filled. Out-of-range windows are
// clamped rather than rejected.
func (s *ConsistencyService) Graph(userID string, windowDays int) ([]model.ConsistencyPoint, error) {
	if windowDays < 1 {
		windowDays = 1
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -(windowDays - 1))

	counts, err := s.completions.CountsByDay(userID, model.Day(from), model.Day(today))
	if err != nil {
		return nil, err
	}

	points := make([]model.ConsistencyPoint, 0, windowDays)
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		day := model.Day(d)
		count := counts[day]
		points = append(points, model.ConsistencyPoint{
			Day:   day,
			Count: count,
			Level: model.LevelForCount(count),
		})
	}

	return points, nil
}

// StreaksFor derives current and longest streaks over the trailing year.
func (s *ConsistencyService) StreaksFor(userID string) (*Streaks, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -(streakLookbackDays - 1))

	days, err := s.completions.ActiveDays(userID, model.Day(from), model.Day(today))
	if err != nil {
		return nil, err
	}

	active := make(map[string]bool, len(days))
	for _, d := range days {
		active[d] = true
	}

	streaks := &Streaks{}

	// Longest: scan runs of consecutive active days.
	run := 0
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		if active[model.Day(d)] {
			run++
			if run > streaks.Longest {
				streaks.Longest = run
			}
		} else {
			run = 0
		}
	}

	// Current: walk back from today. A streak survives a quiet today, it is
	// only broken once yesterday is also empty.
	start := today
	if !active[model.Day(today)] {
		start = today.AddDate(0, 0, -1)
	}
	for d := start; !d.Before(from); d = d.AddDate(0, 0, -1) {
		if !active[model.Day(d)] {
			break
		}
		streaks.Current++
	}

	return streaks, nil
}
