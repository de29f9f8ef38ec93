// Package ephemeris adapts an astronomical computation library to the needs
// of sidereal chart building. It deals exclusively in tropical coordinates;
// the ayanamsa correction is applied by the chart builder.
package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/mihira/jyotish/internal/domain"
)

// NodeMode selects how the lunar node longitude is computed.
type NodeMode string

const (
	NodeMean NodeMode = "mean"
	NodeTrue NodeMode = "true"
)

// Valid reports whether the mode is a known identifier.
func (m NodeMode) Valid() bool {
	return m == NodeMean || m == NodeTrue
}

// Body is the tropical state of one body at a single instant.
type Body struct {
	Longitude float64 // tropical ecliptic longitude, degrees [0,360)
	Speed     float64 // daily motion in longitude, degrees/day (negative when retrograde)
}

// BodySet is the full ephemeris output for one instant and location:
// all nine grahas plus the tropical ascendant and midheaven.
type BodySet struct {
	Bodies    map[domain.Planet]Body
	Ascendant float64 // tropical, degrees
	Midheaven float64 // tropical, degrees
	RAMC      float64 // right ascension of the meridian, degrees
	Obliquity float64 // mean obliquity of the ecliptic, degrees
}

// Source computes tropical body positions for a Julian Day (UT) and
// geographic location. Implementations must be safe for concurrent use and
// deterministic: identical inputs produce identical output.
type Source interface {
	Positions(jd, latitude, longitude float64) (*BodySet, error)
}

// JulianDay converts an instant to the Julian Day in Universal Time.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}
