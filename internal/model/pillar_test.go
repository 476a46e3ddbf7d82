package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePillar_Valid(t *testing.T) {
	for _, p := range Pillars() {
		parsed, err := ParsePillar(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestParsePillar_Unknown(t *testing.T) {
	_, err := ParsePillar("Gaming")
	assert.ErrorIs(t, err, ErrUnknownPillar)

	// Case-sensitive by design: the set is closed, no normalization.
	_, err = ParsePillar("health & fitness")
	assert.ErrorIs(t, err, ErrUnknownPillar)
}

func TestPillars_FixedSizeAndOrder(t *testing.T) {
	ps := Pillars()
	require.Len(t, ps, 9)
	assert.Equal(t, PillarHealthFitness, ps[0])
	assert.Equal(t, PillarLifestyle, ps[8])

	// Returned slice is a copy; mutating it must not leak.
	ps[0] = Pillar("Mutated")
	assert.Equal(t, PillarHealthFitness, Pillars()[0])
}

func TestParseHorizon(t *testing.T) {
	for _, s := range []string{"Daily", "Weekly", "Monthly"} {
		h, err := ParseHorizon(s)
		require.NoError(t, err)
		assert.Equal(t, s, h.String())
	}

	_, err := ParseHorizon("Occasional")
	assert.ErrorIs(t, err, ErrUnknownHorizon)

	_, err = ParseHorizon("Yearly")
	assert.ErrorIs(t, err, ErrUnknownHorizon)
}

func TestParseTemplateHorizon_AllowsOccasional(t *testing.T) {
	h, err := ParseTemplateHorizon("Occasional")
	require.NoError(t, err)
	assert.Equal(t, HorizonOccasional, h)
}

func TestLevelForCount(t *testing.T) {
	assert.Equal(t, LevelNone, LevelForCount(0))
	assert.Equal(t, LevelLow, LevelForCount(1))
	assert.Equal(t, LevelMedium, LevelForCount(2))
	assert.Equal(t, LevelMedium, LevelForCount(3))
	assert.Equal(t, LevelHigh, LevelForCount(4))
	assert.Equal(t, LevelHigh, LevelForCount(12))
}
