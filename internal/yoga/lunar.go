package yoga

import "github.com/mihira/jyotish/internal/domain"

// Lunar yogas are reckoned from the Moon's sign. The Sun and the nodes never
// count as occupants of the flanking houses for Sunapha, Anapha, Durudhara
// and Kemadruma.

// moonFlanks returns the classical planets (excluding Sun) in the second and
// twelfth signs from the Moon.
func moonFlanks(ctx *Context) (second, twelfth []domain.Planet) {
	c := ctx.Chart
	for _, p := range domain.ClassicalPlanets {
		if p == domain.Sun || p == domain.Moon {
			continue
		}
		switch c.HouseFrom(domain.Moon, p) {
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
			Name: "Sunapha Yoga", Category: CategoryLunar, Impact: Positive, Importance: Moderate,
			LifeArea:    "wealth",
			Description: "A planet other than the Sun in the second from the Moon: self-earned prosperity.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				second, twelfth := moonFlanks(ctx)
				if len(second) == 0 || len(twelfth) > 0 {
					return false, nil
				}
				return true, append([]domain.Planet{domain.Moon}, second...)
			},
		},
		Rule{
			Name: "Anapha Yoga", Category: CategoryLunar, Impact: Positive, Importance: Moderate,
			LifeArea:    "character",
			Description: "A planet other than the Sun in the twelfth from the Moon: health and renown.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				second, twelfth := moonFlanks(ctx)
				if len(twelfth) == 0 || len(second) > 0 {
					return false, nil
				}
				return true, append([]domain.Planet{domain.Moon}, twelfth...)
			},
		},
		Rule{
			Name: "Durudhara Yoga", Category: CategoryLunar, Impact: Positive, Importance: Major,
			LifeArea:    "fortune",
			Description: "Planets on both sides of the Moon: comforts from every direction.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				second, twelfth := moonFlanks(ctx)
				if len(second) == 0 || len(twelfth) == 0 {
					return false, nil
				}
				participants := append([]domain.Planet{domain.Moon}, second...)
				return true, append(participants, twelfth...)
			},
		},
		Rule{
			Name: "Kemadruma Yoga", Category: CategoryLunar, Impact: Negative, Importance: Major,
			LifeArea:    "fortune",
			Description: "No planet beside or with the Moon: an unsupported mind and fortunes.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				second, twelfth := moonFlanks(ctx)
				if len(second) > 0 || len(twelfth) > 0 {
					return false, nil
				}
				for _, p := range domain.ClassicalPlanets {
					if p == domain.Sun || p == domain.Moon {
						continue
					}
					if ctx.Chart.Conjunct(domain.Moon, p) {
						return false, nil
					}
				}
				return true, []domain.Planet{domain.Moon}
			},
			// Classical counter-indication: a planet in a kendra from the
			// Moon or the ascendant breaks the isolation.
			Cancel: func(ctx *Context) bool {
				c := ctx.Chart
				for _, p := range domain.ClassicalPlanets {
					if p == domain.Moon {
						continue
					}
					if kendraHouses[c.HouseOf(p)] || kendraHouses[c.HouseFrom(domain.Moon, p)] {
						return true
					}
				}
				return false
			},
		},
		Rule{
			Name: "Gajakesari Yoga", Category: CategoryLunar, Impact: Positive, Importance: Major,
			LifeArea:    "reputation",
			Description: "Jupiter in a kendra from the Moon: lasting fame and virtue.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !kendraHouses[ctx.Chart.HouseFrom(domain.Moon, domain.Jupiter)] {
					return false, nil
				}
				return true, []domain.Planet{domain.Moon, domain.Jupiter}
			},
		},
		Rule{
			Name: "Chandra-Mangala Yoga", Category: CategoryLunar, Impact: Mixed, Importance: Moderate,
			LifeArea:    "wealth",
			Description: "Moon and Mars conjunct or in mutual aspect: earning drive with a sharp edge.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !ctx.Chart.Associated(domain.Moon, domain.Mars) {
					return false, nil
				}
				return true, []domain.Planet{domain.Moon, domain.Mars}
			},
		},
		Rule{
			Name: "Adhi Yoga", Category: CategoryLunar, Impact: Positive, Importance: Major,
			LifeArea:    "status",
			Description: "Benefics in the sixth, seventh and eighth from the Moon with no malefic among them.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				var participants []domain.Planet
				for _, p := range domain.ClassicalPlanets {
					if p == domain.Moon {
						continue
					}
					h := c.HouseFrom(domain.Moon, p)
					if h != 6 && h != 7 && h != 8 {
						continue
					}
					if malefic(p) {
						return false, nil
					}
					participants = append(participants, p)
				}
				if len(participants) == 0 {
					return false, nil
				}
				return true, append([]domain.Planet{domain.Moon}, participants...)
			},
		},
		Rule{
			Name: "Shakata Yoga", Category: CategoryLunar, Impact: Negative, Importance: Moderate,
			LifeArea:    "fortune",
			Description: "Moon in the sixth, eighth or twelfth from Jupiter: fortunes that overturn.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				h := ctx.Chart.HouseFrom(domain.Jupiter, domain.Moon)
				if h != 6 && h != 8 && h != 12 {
					return false, nil
				}
				return true, []domain.Planet{domain.Moon, domain.Jupiter}
			},
			// The reversal is held off when the Moon stands in a kendra
			// from the ascendant.
			Cancel: func(ctx *Context) bool {
				return kendraHouses[ctx.Chart.HouseOf(domain.Moon)]
			},
		},
	)
}
