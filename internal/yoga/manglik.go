package yoga

import "github.com/mihira/jyotish/internal/domain"

// Manglik dosha: Mars in houses 1, 2, 4, 7, 8 or 12 counted from the
// ascendant, the Moon or Venus. The ascendant reckoning alone gives the
// partial grade; two or all three reckonings give the full grade. Dignified
// Mars or Jupiter's aspect cancels per the classical mitigations.

var manglikHouses = houseSet(1, 2, 4, 7, 8, 12)

// manglikReferences counts the reckonings from which Mars afflicts.
func manglikReferences(ctx *Context) int {
	c := ctx.Chart
	n := 0
	if manglikHouses[c.HouseOf(domain.Mars)] {
		n++
	}
	if manglikHouses[c.HouseFrom(domain.Moon, domain.Mars)] {
		n++
	}
	if manglikHouses[c.HouseFrom(domain.Venus, domain.Mars)] {
		n++
	}
	return n
}

// manglikCancelled is the shared mitigation: Mars in own sign or exaltation,
// or under Jupiter's aspect.
func manglikCancelled(ctx *Context) bool {
	pos := ctx.Chart.Position(domain.Mars)
	if pos.Dignity == domain.DignityOwn || pos.Dignity == domain.DignityExalted {
		return true
	}
	return ctx.Chart.Aspects(domain.Jupiter, domain.Mars)
}

func init() {
	register(
		Rule{
			Name: "Manglik Dosha", Category: CategoryDosha, Impact: Negative, Importance: Major,
			LifeArea:    "marriage",
			Description: "Mars afflicting the marriage houses from two or more of ascendant, Moon and Venus.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if manglikReferences(ctx) < 2 {
					return false, nil
				}
				return true, []domain.Planet{domain.Mars}
			},
			Cancel: manglikCancelled,
		},
		Rule{
			Name: "Partial Manglik Dosha", Category: CategoryDosha, Impact: Negative, Importance: Moderate,
			LifeArea:    "marriage",
			Description: "Mars afflicting the marriage houses from exactly one of ascendant, Moon and Venus.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if manglikReferences(ctx) != 1 {
					return false, nil
				}
				return true, []domain.Planet{domain.Mars}
			},
			Cancel: manglikCancelled,
		},
	)
}
