package model

import (
	"errors"
)

// Horizon is the intended cadence of a goal. Occasional exists only as a
// template bucket; goals themselves must be Daily, Weekly or Monthly.
type Horizon string

const (
	HorizonDaily      Horizon = "Daily"
	HorizonWeekly     Horizon = "Weekly"
	HorizonMonthly    Horizon = "Monthly"
	HorizonOccasional Horizon = "Occasional"
)

var ErrUnknownHorizon = errors.New("unknown horizon")

// ParseHorizon validates a raw string as a goal horizon. Occasional is
// rejected here; use ParseTemplateHorizon for catalog entries.
func ParseHorizon(s string) (Horizon, error) {
	switch Horizon(s) {
	case HorizonDaily, HorizonWeekly, HorizonMonthly:
		return Horizon(s), nil
	}
	return "", ErrUnknownHorizon
}

// ParseTemplateHorizon validates a raw string as a template horizon, which
// additionally allows Occasional.
func ParseTemplateHorizon(s string) (Horizon, error) {
	if Horizon(s) == HorizonOccasional {
		return HorizonOccasional, nil
	}
	return ParseHorizon(s)
}

func (h Horizon) String() string {
	return string(h)
}
