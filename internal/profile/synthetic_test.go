package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthetic_ValuesWithinUnitInterval(t *testing.T) {
	p := Synthetic(52.5, -1.9)
	for h, v := range p {
		assert.GreaterOrEqual(t, v, 0.0, "hour %d", h)
		assert.LessOrEqual(t, v, 1.0, "hour %d", h)
	}
}

func TestSynthetic_NormalizedToPeakOne(t *testing.T) {
	p := Synthetic(52.5, -1.9)
	assert.InDelta(t, 1.0, p.Peak(), 1e-9)
}

func TestSynthetic_NightIsZero(t *testing.T) {
	p := Synthetic(52.5, -1.9)
	// Midnight and 3am on Jan 1, UK: no sun.
	assert.Equal(t, 0.0, p[0])
	assert.Equal(t, 0.0, p[3])
}

func TestSynthetic_MiddayIsPositive(t *testing.T) {
	p := Synthetic(52.5, -1.9)
	assert.Greater(t, p[12], 0.0) // Jan 1, noon
	// Summer solstice noon (Jun 21 is day 171) beats winter noon.
	summerNoon := p[171*24+12]
	assert.Greater(t, summerNoon, p[12])
}

func TestSynthetic_Deterministic(t *testing.T) {
	a := Synthetic(52.5, -1.9)
	b := Synthetic(52.5, -1.9)
	assert.Equal(t, a, b)
}

func TestSynthetic_LowerLatitudeHasMoreFullLoadHours(t *testing.T) {
	uk := Synthetic(52.5, -1.9)
	equator := Synthetic(0, -1.9)
	assert.Greater(t, equator.AnnualFullLoadHours(), uk.AnnualFullLoadHours())
}
