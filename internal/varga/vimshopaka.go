package varga

import "github.com/mihira/jyotish/internal/domain"

// Saptavarga Vimshopaka weights, summing to 20.
var vimshopakaWeights = map[int]float64{
	1:  5,
	2:  2,
	3:  3,
	7:  2.5,
	9:  4.5,
	12: 2,
	30: 1,
}

// VimshopakaVargas lists the canonical Saptavarga divisions the score is
// defined over.
func VimshopakaVargas() []int {
	return []int{1, 2, 3, 7, 9, 12, 30}
}

// Per-varga dignity factor ladder.
var vimshopakaFactor = map[domain.Dignity]float64{
	domain.DignityExalted:     1.0,
	domain.DignityOwn:         0.85,
	domain.DignityFriend:      0.65,
	domain.DignityNeutral:     0.5,
	domain.DignityEnemy:       0.35,
	domain.DignityDebilitated: 0.15,
}

// VimshopakaBala sums the weighted dignity factors of a planet across the
// Saptavarga set, yielding a score out of 20. Missing vargas contribute the
// neutral factor so a partial varga request still produces a comparable
// score.
func VimshopakaBala(planet domain.Planet, charts map[int]*DivisionalChart) float64 {
	total := 0.0
	for n, weight := range vimshopakaWeights {
		factor := vimshopakaFactor[domain.DignityNeutral]
		if dc, ok := charts[n]; ok {
			if dignity, ok := dc.Dignities[planet]; ok {
				factor = vimshopakaFactor[dignity]
			}
		}
		total += weight * factor
	}
	return domain.Round3(total)
}
