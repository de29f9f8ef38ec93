package chart

import "github.com/mihira/jyotish/internal/domain"

// Classical combustion orbs in degrees of separation from the Sun.
// Retrograde Mercury and Venus take the NARROWER orbs of Surya Siddhanta
// (14 to 12, 10 to 8); several modern texts widen retrograde orbs instead,
// and anyone following those must flip the Retro column. The Moon's orb
// covers Amavasya proximity only. Orbs are half-open: a planet exactly on
// the threshold is not combust.
type combustOrb struct {
	Direct float64
	Retro  float64
}

var combustOrbs = map[domain.Planet]combustOrb{
	domain.Moon:    {12, 12},
	domain.Mars:    {17, 17},
	domain.Mercury: {14, 12},
	domain.Jupiter: {11, 11},
	domain.Venus:   {10, 8},
	domain.Saturn:  {15, 15},
}

// combustion determines whether a planet is combust and its separation from
// the Sun. The Sun itself and the nodes are never combust.
func combustion(p domain.Planet, longitude float64, retrograde bool, sunLongitude float64) (bool, float64) {
	orb, ok := combustOrbs[p]
	if !ok {
		return false, domain.Separation(longitude, sunLongitude)
	}

	threshold := orb.Direct
	if retrograde {
		threshold = orb.Retro
	}

	sep := domain.Separation(longitude, sunLongitude)
	return sep < threshold, sep
}
