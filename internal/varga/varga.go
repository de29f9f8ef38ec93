// Package varga derives divisional charts (vargas) from rasi placements.
// A single table-driven engine covers the sixteen Shodashavarga divisions:
// each 30-degree sign splits into N equal parts, and the part index is
// applied as a stepped offset from a starting sign chosen by the varga's
// rule mode.
package varga

import (
	"math"

	"github.com/mihira/jyotish/internal/domain"
)

// startMode selects how a varga chooses its starting sign.
type startMode int

const (
	// startSame counts from the occupied sign itself.
	startSame startMode = iota
	// startParity offsets from the occupied sign by parity (odd, even).
	startParity
	// startQuality offsets from the occupied sign by mobility group
	// (movable, fixed, dual).
	startQuality
	// startAbsParity begins at an absolute sign chosen by parity.
	startAbsParity
	// startAbsQuality begins at an absolute sign chosen by mobility group.
	startAbsQuality
	// startElement begins at an absolute sign chosen by element
	// (fire, earth, air, water).
	startElement
)

// rule is the complete recipe for one varga. Step is the sign increment per
// part (default 1); D2 walks backward from Leo for odd signs, so it carries
// per-parity steps.
type rule struct {
	N          int
	Mode       startMode
	Parity     [2]int         // startParity: sign offsets for odd, even
	AbsParity  [2]domain.Sign // startAbsParity: absolute signs for odd, even
	Quality    [3]int         // startQuality: offsets for movable, fixed, dual
	AbsQuality [3]domain.Sign // startAbsQuality: absolute signs for movable, fixed, dual
	Element    [4]domain.Sign // startElement: absolute signs for fire, earth, air, water
	Step       int            // sign increment per part; 0 means 1
	StepParity [2]int         // per-parity step override (odd, even)
}

// rules holds the classical Parashari recipes for the Shodashavarga.
var rules = map[int]rule{
	1: {N: 1, Mode: startSame},
	// Hora: odd signs run Leo then Cancer, even signs Cancer then Leo.
	2: {N: 2, Mode: startAbsParity, AbsParity: [2]domain.Sign{domain.Leo, domain.Cancer}, StepParity: [2]int{11, 1}},
	// Drekkana: 1st, 5th, 9th from the sign.
	3: {N: 3, Mode: startSame, Step: 4},
	// Chaturthamsa: 1st, 4th, 7th, 10th from the sign.
	4: {N: 4, Mode: startSame, Step: 3},
	// Saptamsa: odd from the sign, even from the seventh.
	7: {N: 7, Mode: startParity, Parity: [2]int{0, 6}},
	// Navamsa: movable from the sign, fixed from the ninth, dual from the fifth.
	9: {N: 9, Mode: startQuality, Quality: [3]int{0, 8, 4}},
	// Dasamsa: odd from the sign, even from the ninth.
	10: {N: 10, Mode: startParity, Parity: [2]int{0, 8}},
	// Dwadasamsa: always from the sign.
	12: {N: 12, Mode: startSame},
	// Shodasamsa: movable from Aries, fixed from Leo, dual from Sagittarius.
	16: {N: 16, Mode: startAbsQuality, AbsQuality: [3]domain.Sign{domain.Aries, domain.Leo, domain.Sagittarius}},
	// Vimsamsa: movable from Aries, fixed from Sagittarius, dual from Leo.
	20: {N: 20, Mode: startAbsQuality, AbsQuality: [3]domain.Sign{domain.Aries, domain.Sagittarius, domain.Leo}},
	// Chaturvimsamsa: odd from Leo, even from Cancer.
	24: {N: 24, Mode: startAbsParity, AbsParity: [2]domain.Sign{domain.Leo, domain.Cancer}},
	// Bhamsa: fiery from Aries, earthy from Cancer, airy from Libra,
	// watery from Capricorn.
	27: {N: 27, Mode: startElement, Element: [4]domain.Sign{domain.Aries, domain.Cancer, domain.Libra, domain.Capricorn}},
	// Trimsamsa, equal thirty-part variant: odd from Aries, even from Libra.
	30: {N: 30, Mode: startAbsParity, AbsParity: [2]domain.Sign{domain.Aries, domain.Libra}},
	// Khavedamsa: odd from Aries, even from Libra.
	40: {N: 40, Mode: startAbsParity, AbsParity: [2]domain.Sign{domain.Aries, domain.Libra}},
	// Akshavedamsa: movable from Aries, fixed from Leo, dual from Sagittarius.
	45: {N: 45, Mode: startAbsQuality, AbsQuality: [3]domain.Sign{domain.Aries, domain.Leo, domain.Sagittarius}},
	// Shashtiamsa: always from the sign.
	60: {N: 60, Mode: startSame},
}

// Supported reports whether varga N has a rule.
func Supported(n int) bool {
	_, ok := rules[n]
	return ok
}

// SupportedVargas lists the supported divisions in ascending order.
func SupportedVargas() []int {
	return []int{1, 2, 3, 4, 7, 9, 10, 12, 16, 20, 24, 27, 30, 40, 45, 60}
}

// DivisionalChart is the varga-N sign mapping for one chart.
type DivisionalChart struct {
	N         int                              `json:"n"`
	Ascendant domain.Sign                      `json:"ascendant"`
	Signs     map[domain.Planet]domain.Sign    `json:"signs"`
	Dignities map[domain.Planet]domain.Dignity `json:"dignities"`
}

// SignAt maps a rasi placement (sign plus degree within sign) to its varga-N
// sign. Part boundaries are half-open: a degree exactly on a boundary belongs
// to the part it starts.
func SignAt(n int, sign domain.Sign, degree float64) (domain.Sign, error) {
	r, ok := rules[n]
	if !ok {
		return 0, domain.NewConfigurationError("unsupported varga D%d", n)
	}

	part := int(math.Floor(degree / (30.0 / float64(r.N))))
	if part >= r.N { // degree touching 30 from rounding
		part = r.N - 1
	}

	parityIdx := 1
	if sign.Odd() {
		parityIdx = 0
	}
	qualityIdx := map[domain.Quality]int{domain.Movable: 0, domain.Fixed: 1, domain.Dual: 2}[sign.Quality()]
	elementIdx := map[domain.Element]int{domain.Fire: 0, domain.Earth: 1, domain.Air: 2, domain.Water: 3}[sign.Element()]

	var start domain.Sign
	switch r.Mode {
	case startSame:
		start = sign
	case startParity:
		start = sign.Add(r.Parity[parityIdx])
	case startQuality:
		start = sign.Add(r.Quality[qualityIdx])
	case startAbsParity:
		start = r.AbsParity[parityIdx]
	case startAbsQuality:
		start = r.AbsQuality[qualityIdx]
	case startElement:
		start = r.Element[elementIdx]
	}

	step := r.Step
	if r.StepParity != [2]int{} {
		step = r.StepParity[parityIdx]
	}
	if step == 0 {
		step = 1
	}

	return start.Add(step * part), nil
}

// Navamsa is the D9 mapping, special-cased because vargottama and several
// detection rules depend on it directly.
func Navamsa(sign domain.Sign, degree float64) domain.Sign {
	s, _ := SignAt(9, sign, degree)
	return s
}

// Placement is the minimal rasi input the engine needs per body.
type Placement struct {
	Sign   domain.Sign
	Degree float64
}

// Compute derives the varga-N chart for a set of placements. The ascendant
// placement maps through the same rule as the planets.
func Compute(n int, ascendant Placement, planets map[domain.Planet]Placement) (*DivisionalChart, error) {
	ascSign, err := SignAt(n, ascendant.Sign, ascendant.Degree)
	if err != nil {
		return nil, err
	}

	out := &DivisionalChart{
		N:         n,
		Ascendant: ascSign,
		Signs:     make(map[domain.Planet]domain.Sign, len(planets)),
		Dignities: make(map[domain.Planet]domain.Dignity, len(planets)),
	}
	for planet, placement := range planets {
		sign, err := SignAt(n, placement.Sign, placement.Degree)
		if err != nil {
			return nil, err
		}
		out.Signs[planet] = sign
		out.Dignities[planet] = domain.DignityOf(planet, sign)
	}
	return out, nil
}
