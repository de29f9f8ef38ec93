// Package domain provides the core astrological domain model: planets, signs,
// angular arithmetic, birth data and the error taxonomy shared by all engine
// stages.
package domain

// Planet identifies one of the nine grahas of the sidereal system.
type Planet string

const (
	Sun     Planet = "SUN"
	Moon    Planet = "MOON"
	Mars    Planet = "MARS"
	Mercury Planet = "MERCURY"
	Jupiter Planet = "JUPITER"
	Venus   Planet = "VENUS"
	Saturn  Planet = "SATURN"
	Rahu    Planet = "RAHU"
	Ketu    Planet = "KETU"
)

// Planets lists all nine grahas in traditional weekday-then-node order.
var Planets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// ClassicalPlanets lists the seven visible grahas. The nodes are excluded;
// house-distribution rules (Nabhasa, Kaal Sarpa confinement, Sanyas clusters)
// count only these seven.
var ClassicalPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// NaturalBenefics per Parashara. Mercury and the waxing Moon are conditional
// benefics classically; the fixed natural classification is used for rule
// evaluation, matching the static tables the detection rules quote.
var NaturalBenefics = map[Planet]bool{
	Moon:    true,
	Mercury: true,
	Jupiter: true,
	Venus:   true,
}

// NaturalMalefics per Parashara.
var NaturalMalefics = map[Planet]bool{
	Sun:    true,
	Mars:   true,
	Saturn: true,
	Rahu:   true,
	Ketu:   true,
}

// IsNode reports whether p is a lunar node.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// String returns the display name of the planet.
func (p Planet) String() string {
	switch p {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mars:
		return "Mars"
	case Mercury:
		return "Mercury"
	case Jupiter:
		return "Jupiter"
	case Venus:
		return "Venus"
	case Saturn:
		return "Saturn"
	case Rahu:
		return "Rahu"
	case Ketu:
		return "Ketu"
	}
	return string(p)
}
