// Package profile provides the 8,760-hour solar capacity factor series the
// dispatch simulation consumes, loaded from CSV or generated synthetically.
package profile

import "math"

// HoursPerYear is the fixed length of every profile (non-leap year, hour 0 =
// Jan 1 00:00).
const HoursPerYear = 8760

// Profile is an hourly solar capacity factor series. Values are non-negative;
// typical use keeps them in [0,1] but the simulation only relies on
// non-negativity.
type Profile [HoursPerYear]float64

// Sanitize replaces NaN, infinite and negative entries with zero so malformed
// input hours read as no solar rather than corrupting the simulation state.
func (p *Profile) Sanitize() {
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			p[i] = 0
		}
	}
}

// Peak returns the largest capacity factor in the profile.
func (p *Profile) Peak() float64 {
	var peak float64
	for _, v := range p {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// AnnualFullLoadHours returns the sum of all capacity factors, i.e. the
// equivalent hours at nameplate output the profile represents.
func (p *Profile) AnnualFullLoadHours() float64 {
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum
}

// Constant returns a profile with the same factor for every hour. Used by
// tests and degenerate scenarios.
func Constant(factor float64) *Profile {
	var p Profile
	for i := range p {
		p[i] = factor
	}
	p.Sanitize()
	return &p
}
