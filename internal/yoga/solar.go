package yoga

import "github.com/mihira/jyotish/internal/domain"

// Solar yogas mirror the lunar flank yogas around the Sun. The Moon and the
// nodes do not count as flanking occupants.

func sunFlanks(ctx *Context) (second, twelfth []domain.Planet) {
	c := ctx.Chart
	for _, p := range domain.ClassicalPlanets {
		if p == domain.Sun || p == domain.Moon {
			continue
		}
		switch c.HouseFrom(domain.Sun, p) {
		case 2:
			second = append(second, p)
		case 12:
			twelfth = append(twelfth, p)
		}
	}
	return second, twelfth
}

func init() {
	register(
		Rule{
			Name: "Vesi Yoga", Category: CategorySolar, Impact: Positive, Importance: Minor,
			LifeArea:    "character",
			Description: "A planet other than the Moon in the second from the Sun: balance and truthfulness.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				second, twelfth := sunFlanks(ctx)
				if len(second) == 0 || len(twelfth) > 0 {
					return false, nil
				}
				return true, append([]domain.Planet{domain.Sun}, second...)
			},
		},
		Rule{
			Name: "Vosi Yoga", Category: CategorySolar, Impact: Positive, Importance: Minor,
			LifeArea:    "skill",
			Description: "A planet other than the Moon in the twelfth from the Sun: skill and memory.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				second, twelfth := sunFlanks(ctx)
				if len(twelfth) == 0 || len(second) > 0 {
					return false, nil
				}
				return true, append([]domain.Planet{domain.Sun}, twelfth...)
			},
		},
		Rule{
			Name: "Ubhayachari Yoga", Category: CategorySolar, Impact: Positive, Importance: Moderate,
			LifeArea:    "prosperity",
			Description: "Planets on both sides of the Sun: a king's equal in comforts.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				second, twelfth := sunFlanks(ctx)
				if len(second) == 0 || len(twelfth) == 0 {
					return false, nil
				}
				participants := append([]domain.Planet{domain.Sun}, second...)
				return true, append(participants, twelfth...)
			},
		},
		Rule{
			Name: "Budha-Aditya Yoga", Category: CategorySolar, Impact: Positive, Importance: Moderate,
			LifeArea:    "intellect",
			Description: "Mercury conjunct the Sun: administrative and analytic talent.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !ctx.Chart.Conjunct(domain.Sun, domain.Mercury) {
					return false, nil
				}
				return true, []domain.Planet{domain.Sun, domain.Mercury}
			},
			// Deep combustion blunts the yoga.
			Cancel: func(ctx *Context) bool {
				m := ctx.Chart.Position(domain.Mercury)
				return m.Combust && m.CombustDistance < 3
			},
		},
	)
}
