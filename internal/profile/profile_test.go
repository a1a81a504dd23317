package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_ReplacesBadValues(t *testing.T) {
	var p Profile
	p[0] = math.NaN()
	p[1] = math.Inf(1)
	p[2] = -0.5
	p[3] = 0.8

	p.Sanitize()

	assert.Equal(t, 0.0, p[0])
	assert.Equal(t, 0.0, p[1])
	assert.Equal(t, 0.0, p[2])
	assert.Equal(t, 0.8, p[3])
}

func TestPeak(t *testing.T) {
	var p Profile
	p[42] = 0.3
	p[4000] = 0.95
	assert.InDelta(t, 0.95, p.Peak(), 1e-12)
}

func TestAnnualFullLoadHours(t *testing.T) {
	p := Constant(0.25)
	assert.InDelta(t, 0.25*HoursPerYear, p.AnnualFullLoadHours(), 1e-6)
}

func TestConstant_SanitizesInput(t *testing.T) {
	p := Constant(-1)
	assert.Equal(t, 0.0, p[0])
	assert.Equal(t, 0.0, p[HoursPerYear-1])
}
