package yoga

import "github.com/mihira/jyotish/internal/domain"

// Pitra dosha is a composite: eleven independent afflictions of the Sun, the
// ninth house and its lord are tested, and the dosha is flagged when at
// least three hold. The strength of the match scales with the indicator
// count rather than planet strength.

const pitraThreshold = 3

// pitraIndicators evaluates all eleven sub-indicators and returns those that
// hold plus the afflicted planets involved.
func pitraIndicators(ctx *Context) (count int, participants []domain.Planet) {
	c := ctx.Chart
	ninthLord := c.HouseLord(9)

	add := func(hold bool, planets ...domain.Planet) {
		if !hold {
			return
		}
		count++
		for _, p := range planets {
			seen := false
			for _, q := range participants {
				if q == p {
					seen = true
					break
				}
			}
			if !seen {
				participants = append(participants, p)
			}
		}
	}

	add(c.Conjunct(domain.Sun, domain.Rahu), domain.Sun, domain.Rahu)
	add(c.Conjunct(domain.Sun, domain.Ketu), domain.Sun, domain.Ketu)
	add(c.Conjunct(domain.Sun, domain.Saturn), domain.Sun, domain.Saturn)
	add(c.HouseOf(domain.Rahu) == 9, domain.Rahu)
	add(c.HouseOf(domain.Ketu) == 9, domain.Ketu)
	add(c.HouseOf(domain.Saturn) == 9, domain.Saturn)
	add(c.HouseOf(domain.Mars) == 9, domain.Mars)
	add(inHouses(c, ninthLord, dusthanaHouses), ninthLord)
	add(c.Position(ninthLord).Dignity == domain.DignityDebilitated, ninthLord)
	add(c.Position(domain.Sun).Dignity == domain.DignityDebilitated, domain.Sun)
	add(c.Conjunct(domain.Moon, domain.Rahu), domain.Moon, domain.Rahu)

	return count, participants
}

func init() {
	register(Rule{
		Name:        "Pitra Dosha",
		Category:    CategoryDosha,
		Impact:      Negative,
		Importance:  Major,
		LifeArea:    "ancestry",
		Description: "Three or more classical afflictions of the Sun, the ninth house and its lord.",
		Detect: func(ctx *Context) (bool, []domain.Planet) {
			count, participants := pitraIndicators(ctx)
			if count < pitraThreshold {
				return false, nil
			}
			return true, participants
		},
		// Intensity grows with the indicator count, not planet strength.
		Strength: func(ctx *Context) float64 {
			count, _ := pitraIndicators(ctx)
			return float64(count) / 11
		},
	})
}
