package model

import (
	"errors"
)

// Pillar is one of the fixed life domains a goal belongs to. The set is
// closed: unknown values are rejected at the boundary so every aggregation
// can rely on a stable axis count.
type Pillar string

const (
	PillarHealthFitness  Pillar = "Health & Fitness"
	PillarMentalHealth   Pillar = "Mental Health & Mindset"
	PillarCareer         Pillar = "Career / Professional Growth"
	PillarFinances       Pillar = "Finances"
	PillarRelationships  Pillar = "Relationships"
	PillarPersonalGrowth Pillar = "Personal Growth"
	PillarProductivity   Pillar = "Productivity & Discipline"
	PillarSpirituality   Pillar = "Spirituality / Purpose"
	PillarLifestyle      Pillar = "Lifestyle & Recreation"
)

var ErrUnknownPillar = errors.New("unknown pillar")

// pillars holds the canonical ordering, which doubles as the default axis
// order for the balance radar.
var pillars = []Pillar{
	PillarHealthFitness,
	PillarMentalHealth,
	PillarCareer,
	PillarFinances,
	PillarRelationships,
	PillarPersonalGrowth,
	PillarProductivity,
	PillarSpirituality,
	PillarLifestyle,
}

// Pillars returns the fixed pillar set in canonical order.
func Pillars() []Pillar {
	out := make([]Pillar, len(pillars))
	copy(out, pillars)
	return out
}

// ParsePillar validates a raw string against the fixed pillar set.
func ParsePillar(s string) (Pillar, error) {
	for _, p := range pillars {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ErrUnknownPillar
}

func (p Pillar) String() string {
	return string(p)
}
