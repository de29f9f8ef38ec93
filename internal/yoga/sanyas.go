package yoga

import (
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/strength"
)

// Pravrajya (sanyas) yogas form when four or more classical planets crowd a
// single sign; the strongest planet of the cluster names the ascetic order
// the combination points to.

var sanyasOrders = map[domain.Planet]string{
	domain.Sun:     "Vanyasana",
	domain.Moon:    "Vriddha",
	domain.Mars:    "Shakya",
	domain.Mercury: "Jivika",
	domain.Jupiter: "Bhikshu",
	domain.Venus:   "Charaka",
	domain.Saturn:  "Nirgrantha",
}

// sanyasCluster returns the largest single-sign cluster of classical planets
// when it has at least four members.
func sanyasCluster(ctx *Context) []domain.Planet {
	bySign := make(map[domain.Sign][]domain.Planet)
	for _, p := range domain.ClassicalPlanets {
		s := ctx.Chart.Position(p).Sign
		bySign[s] = append(bySign[s], p)
	}
	var best []domain.Planet
	for s := domain.Aries; s <= domain.Pisces; s++ {
		if len(bySign[s]) > len(best) {
			best = bySign[s]
		}
	}
	if len(best) < 4 {
		return nil
	}
	return best
}

func init() {
	for _, planet := range domain.ClassicalPlanets {
		leader := planet
		order := sanyasOrders[planet]
		register(Rule{
			Name:        "Pravrajya Yoga (" + order + ")",
			Category:    CategorySanyas,
			Impact:      Mixed,
			Importance:  Major,
			LifeArea:    "renunciation",
			Description: "Four or more planets clustered in one sign led by " + leader.String() + ": the " + order + " path of renunciation.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				cluster := sanyasCluster(ctx)
				if cluster == nil {
					return false, nil
				}
				if strength.Strongest(ctx.Strengths, cluster) != leader {
					return false, nil
				}
				return true, cluster
			},
		})
	}
}
