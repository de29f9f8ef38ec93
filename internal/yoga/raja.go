package yoga

import "github.com/mihira/jyotish/internal/domain"

// Raja yogas arise from associations between the lords of the kendra and
// trikona houses, counted from the ascendant. Association means conjunction,
// mutual aspect or sign exchange.

func init() {
	register(
		Rule{
			Name: "Raja Yoga", Category: CategoryRaja, Impact: Positive, Importance: Major,
			LifeArea:    "power",
			Description: "A kendra lord associated with a trikona lord: rise to rank and authority.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				seen := map[domain.Planet]bool{}
				var participants []domain.Planet
				for _, kendra := range []int{1, 4, 7, 10} {
					for _, trikona := range []int{1, 5, 9} {
						kl, tl := c.HouseLord(kendra), c.HouseLord(trikona)
						if kl == tl {
							continue
						}
						if c.Associated(kl, tl) || c.Exchange(kl, tl) {
							for _, p := range []domain.Planet{kl, tl} {
								if !seen[p] {
									seen[p] = true
									participants = append(participants, p)
								}
							}
						}
					}
				}
				if len(participants) == 0 {
					return false, nil
				}
				return true, participants
			},
		},
		Rule{
			Name: "Dharma-Karmadhipati Yoga", Category: CategoryRaja, Impact: Positive, Importance: Major,
			LifeArea:    "career",
			Description: "The lords of the ninth and tenth associated: duty and station joined.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				ninth, tenth := c.HouseLord(9), c.HouseLord(10)
				if ninth == tenth {
					return false, nil
				}
				if !c.Associated(ninth, tenth) && !c.Exchange(ninth, tenth) {
					return false, nil
				}
				return true, []domain.Planet{ninth, tenth}
			},
		},
	)

	viparita := []struct {
		name, area, desc string
		house            int
	}{
		{"Harsha Yoga", "health", "The sixth lord placed in a dusthana: enemies undone by themselves.", 6},
		{"Sarala Yoga", "resilience", "The eighth lord placed in a dusthana: longevity and fearlessness.", 8},
		{"Vimala Yoga", "independence", "The twelfth lord placed in a dusthana: frugality and a clean name.", 12},
	}
	for _, v := range viparita {
		house := v.house
		register(Rule{
			Name:        v.name,
			Category:    CategoryRaja,
			Impact:      Positive,
			Importance:  Moderate,
			LifeArea:    v.area,
			Description: v.desc,
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				lord := ctx.Chart.HouseLord(house)
				if !inHouses(ctx.Chart, lord, dusthanaHouses) {
					return false, nil
				}
				return true, []domain.Planet{lord}
			},
		})
	}

	register(Rule{
		Name: "Neecha Bhanga Raja Yoga", Category: CategoryRaja, Impact: Positive, Importance: Major,
		LifeArea:    "reversal of fortune",
		Description: "A debilitated planet whose fall is cancelled: hardship turned to rulership.",
		Detect: func(ctx *Context) (bool, []domain.Planet) {
			c := ctx.Chart
			var participants []domain.Planet
			for _, p := range domain.ClassicalPlanets {
				pos := c.Position(p)
				if pos.Dignity != domain.DignityDebilitated {
					continue
				}
				if neechaBhanga(ctx, p, pos.Sign) {
					participants = append(participants, p)
				}
			}
			if len(participants) == 0 {
				return false, nil
			}
			return true, participants
		},
	})
}

// neechaBhanga reports the classical cancellation of debilitation: the lord
// of the debilitation sign, or the planet exalted in that sign, stands in a
// kendra from the ascendant or from the Moon.
func neechaBhanga(ctx *Context, debilitated domain.Planet, sign domain.Sign) bool {
	c := ctx.Chart

	cancellers := []domain.Planet{sign.Lord()}
	for _, p := range domain.ClassicalPlanets {
		if p != debilitated && domain.ExaltationSign(p) == sign {
			cancellers = append(cancellers, p)
		}
	}

	for _, p := range cancellers {
		if kendraHouses[c.HouseOf(p)] || kendraHouses[c.HouseFrom(domain.Moon, p)] {
			return true
		}
	}
	return false
}
