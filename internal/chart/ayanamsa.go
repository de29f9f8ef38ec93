package chart

import "github.com/mihira/jyotish/internal/domain"

// Ayanamsa identifies the sidereal correction scheme. The value is fixed per
// chart and applied identically to the rasi chart and every varga.
type Ayanamsa string

const (
	AyanamsaLahiri       Ayanamsa = "lahiri"
	AyanamsaRaman        Ayanamsa = "raman"
	AyanamsaKrishnamurti Ayanamsa = "krishnamurti"
)

const (
	j2000 = 2451545.0

	// Mean precession rate, degrees per Julian year.
	precessionRate = 50.2719 / 3600
)

// ayanamsaBase holds each scheme's value at J2000.0 in degrees. The value at
// any instant follows the linear precession model base + rate*years.
var ayanamsaBase = map[Ayanamsa]float64{
	AyanamsaLahiri:       23.85236,
	AyanamsaRaman:        22.46048,
	AyanamsaKrishnamurti: 23.75700,
}

// Valid reports whether the identifier names a supported scheme.
func (a Ayanamsa) Valid() bool {
	_, ok := ayanamsaBase[a]
	return ok
}

// Value returns the ayanamsa in degrees for a Julian Day.
func (a Ayanamsa) Value(jd float64) float64 {
	base := ayanamsaBase[a]
	years := (jd - j2000) / 365.25
	return base + precessionRate*years
}

// Sidereal converts a tropical longitude to sidereal under this scheme.
func (a Ayanamsa) Sidereal(tropical, jd float64) float64 {
	return domain.Norm360(tropical - a.Value(jd))
}
