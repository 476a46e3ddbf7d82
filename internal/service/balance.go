package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
)

// Axis source metrics. Completion-backed axes score completed/total active
// goals in a pillar; the consistency metric scores how many of the last 30
// days saw at least one completion.
const (
	MetricCompletion  = "completion"
	MetricConsistency = "consistency"
)

const consistencyMetricDays = 30

// AxisSpec binds one radar axis to its source metric. Pillar is required for
// the completion metric and ignored otherwise.
type AxisSpec struct {
	Label  string
	Metric string
	Pillar model.Pillar
}

// DefaultAxes is one completion-backed axis per pillar, in canonical pillar
// order.
func DefaultAxes() []AxisSpec {
	pillars := model.Pillars()
	axes := make([]AxisSpec, 0, len(pillars))
	for _, p := range pillars {
		axes = append(axes, AxisSpec{Label: p.String(), Metric: MetricCompletion, Pillar: p})
	}
	return axes
}

// ParseAxes parses an axis override of the form
// "Label=metric,Label=metric,...". Completion-metric labels must name a
// pillar. An empty spec yields the default axis set.
func ParseAxes(spec string) ([]AxisSpec, error) {
	if strings.TrimSpace(spec) == "" {
		return DefaultAxes(), nil
	}

	var axes []AxisSpec
	for _, part := range strings.Split(spec, ",") {
		label, metric, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("invalid axis spec %q", part)
		}

		switch metric {
		case MetricCompletion:
			pillar, err := model.ParsePillar(label)
			if err != nil {
				return nil, fmt.Errorf("axis %q: %w", label, err)
			}
			axes = append(axes, AxisSpec{Label: label, Metric: metric, Pillar: pillar})
		case MetricConsistency:
			axes = append(axes, AxisSpec{Label: label, Metric: metric})
		default:
			return nil, fmt.Errorf("axis %q: unknown metric %q", label, metric)
		}
	}

	return axes, nil
}

// BalanceService derives the life-balance radar from goal state and ledger
// activity. Scores are recomputed on demand, never persisted.
type BalanceService struct {
	axes        []AxisSpec
	goals       repository.GoalRepository
	completions repository.CompletionRepository
}

func NewBalanceService(axes []AxisSpec, goals repository.GoalRepository, completions repository.CompletionRepository) *BalanceService {
	if len(axes) == 0 {
		axes = DefaultAxes()
	}
	return &BalanceService{
		axes:        axes,
		goals:       goals,
		completions: completions,
	}
}

// Score computes every configured axis plus the aggregate total, which is
// the mean of the axis values. Each value is clamped to [0, 100] and rounded
// to two decimals.
func (s *BalanceService) Score(userID string) (*model.BalanceScore, error) {
	goals, err := s.goals.Goals(userID, nil)
	if err != nil {
		return nil, err
	}

	totalByPillar := map[model.Pillar]int{}
	completedByPillar := map[model.Pillar]int{}
	for _, g := range goals {
		totalByPillar[g.Pillar]++
		if g.IsCompleted {
			completedByPillar[g.Pillar]++
		}
	}

	score := &model.BalanceScore{
		Axes: make([]model.BalanceAxis, 0, len(s.axes)),
	}

	var sum float64
	for _, axis := range s.axes {
		var value float64

		switch axis.Metric {
		case MetricCompletion:
			total := totalByPillar[axis.Pillar]
			if total > 0 {
				value = float64(completedByPillar[axis.Pillar]) / float64(total) * 100
			}
		case MetricConsistency:
			value, err = s.consistencyValue(userID)
			if err != nil {
				return nil, err
			}
		}

		value = round2(clamp(value, 0, 100))
		sum += value
		score.Axes = append(score.Axes, model.BalanceAxis{Label: axis.Label, Value: value})
	}

	if len(score.Axes) > 0 {
		score.Total = round2(sum / float64(len(score.Axes)))
	}

	return score, nil
}

func (s *BalanceService) consistencyValue(userID string) (float64, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -(consistencyMetricDays - 1))

	days, err := s.completions.ActiveDays(userID, model.Day(from), model.Day(today))
	if err != nil {
		return 0, err
	}

	return float64(len(days)) / float64(consistencyMetricDays) * 100, nil
}

// RadarPoint maps axis i of n at the given value onto radar coordinates for
// an SVG viewport of the given size. Axis 0 points straight up; axes proceed
// clockwise at equal angles. The polygon radius is 35% of the viewport.
func RadarPoint(i, n int, value, size float64) (x, y float64) {
	center := size / 2
	radius := size * 0.35
	angle := (2*math.Pi*float64(i))/float64(n) - math.Pi/2
	dist := (value / 100) * radius
	return center + dist*math.Cos(angle), center + dist*math.Sin(angle)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
