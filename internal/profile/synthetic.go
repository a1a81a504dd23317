package profile

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// Synthetic builds a clear-sky capacity factor profile for a site from the
// sun's altitude over a non-leap year, normalized so the best hour is 1.0.
// It is the fallback when no measured CSV profile is supplied and doubles as
// the simple day/night shape for exploratory runs.
func Synthetic(latitude, longitude float64) *Profile {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	var p Profile
	for h := 0; h < HoursPerYear; h++ {
		// Sample mid-hour so the factor represents the hour's average.
		t := start.Add(time.Duration(h)*time.Hour + 30*time.Minute)
		pos := suncalc.GetPosition(t, latitude, longitude)
		if pos.Altitude <= 0 {
			continue
		}
		p[h] = math.Sin(pos.Altitude)
	}

	if peak := p.Peak(); peak > 0 {
		for h := range p {
			p[h] /= peak
		}
	}

	p.Sanitize()
	return &p
}
