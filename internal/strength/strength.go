// Package strength scores each graha on a normalized 0..1 composite built
// from three weighted components: positional dignity (Uccha Bala), directional
// strength (Dig Bala) and the Saptavarga Vimshopaka score.
package strength

import (
	"math"

	"github.com/mihira/jyotish/internal/chart"
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/varga"
)

// Component weights of the composite. They sum to 1.
const (
	weightDignity     = 0.4
	weightDirectional = 0.2
	weightVimshopaka  = 0.4
)

// Score is the composite strength of one graha with its components exposed
// for diagnostics. All values are in [0,1] except Vimshopaka, which keeps
// its native 0..20 scale.
type Score struct {
	Planet      domain.Planet `json:"planet"`
	Dignity     float64       `json:"dignity"`
	Directional float64       `json:"directional"`
	Vimshopaka  float64       `json:"vimshopaka"`
	Total       float64       `json:"total"`
}

// digBalaHouse is the house where each planet attains full directional
// strength. The lunar nodes have no classical direction and are scored
// neutral.
var digBalaHouse = map[domain.Planet]int{
	domain.Sun:     10,
	domain.Moon:    4,
	domain.Mars:    10,
	domain.Mercury: 1,
	domain.Jupiter: 1,
	domain.Venus:   4,
	domain.Saturn:  7,
}

// Compute scores all nine grahas of a chart. The varga set feeds the
// Vimshopaka component; pass the Saptavarga charts for the canonical score.
func Compute(c *chart.Chart, vargas map[int]*varga.DivisionalChart) map[domain.Planet]Score {
	out := make(map[domain.Planet]Score, len(domain.Planets))
	for _, p := range domain.Planets {
		pos := c.Position(p)

		dig := ucchaBala(p, pos.Longitude)
		dir := digBala(p, pos.House)
		vim := varga.VimshopakaBala(p, vargas)

		total := weightDignity*dig + weightDirectional*dir + weightVimshopaka*(vim/20)
		out[p] = Score{
			Planet:      p,
			Dignity:     domain.Round3(dig),
			Directional: domain.Round3(dir),
			Vimshopaka:  vim,
			Total:       domain.Round3(total),
		}
	}
	return out
}

// ucchaBala measures how far the planet sits from its deep debilitation
// point: 1 at deep exaltation, 0 at deep debilitation, linear in between.
func ucchaBala(p domain.Planet, longitude float64) float64 {
	deb := domain.DebilitationPoint(p)
	return domain.Separation(longitude, deb) / 180
}

// digBala decays linearly with the circular house distance from the planet's
// direction of full strength: 1 in that house, 0 in the opposite house.
// Nodes score a flat 0.5.
func digBala(p domain.Planet, house int) float64 {
	best, ok := digBalaHouse[p]
	if !ok {
		return 0.5
	}
	dist := house - best
	if dist < 0 {
		dist = -dist
	}
	if dist > 6 {
		dist = 12 - dist
	}
	return 1 - float64(dist)/6
}

// Strongest returns the planet with the highest composite score among the
// given candidates, breaking ties by canonical planet order. It is the
// arbiter for yoga variants keyed to the dominant graha of a cluster.
func Strongest(scores map[domain.Planet]Score, candidates []domain.Planet) domain.Planet {
	best := domain.Planet("")
	bestScore := math.Inf(-1)
	for _, p := range candidates {
		if s, ok := scores[p]; ok && s.Total > bestScore {
			best = p
			bestScore = s.Total
		}
	}
	return best
}
