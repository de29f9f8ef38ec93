package yoga

import "github.com/mihira/jyotish/internal/domain"

// Dhana yogas concern wealth: associations among the lords of the money
// houses (2, 11) and the fortune houses (1, 5, 9), plus the named classical
// combinations. Daridra, the counter-yoga, lives here too.

// wealthPairs are the lord pairs whose association forms a generic Dhana
// yoga; every pair touches house 2 or 11.
var wealthPairs = [][2]int{
	{1, 2}, {1, 11}, {2, 5}, {2, 9}, {2, 11}, {5, 11}, {9, 11},
}

func init() {
	register(
		Rule{
			Name: "Dhana Yoga", Category: CategoryDhana, Impact: Positive, Importance: Major,
			LifeArea:    "wealth",
			Description: "Lords of the wealth houses associated with lords of fortune: accumulated riches.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				seen := map[domain.Planet]bool{}
				var participants []domain.Planet
				for _, pair := range wealthPairs {
					a, b := c.HouseLord(pair[0]), c.HouseLord(pair[1])
					if a == b {
						continue
					}
					if c.Associated(a, b) || c.Exchange(a, b) {
						for _, p := range []domain.Planet{a, b} {
							if !seen[p] {
								seen[p] = true
								participants = append(participants, p)
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
			Name: "Lakshmi Yoga", Category: CategoryDhana, Impact: Positive, Importance: Major,
			LifeArea:    "fortune",
			Description: "The ninth lord dignified in a kendra or trikona: abundance and grace.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				lord := c.HouseLord(9)
				pos := c.Position(lord)
				dignified := pos.Dignity == domain.DignityExalted || pos.Dignity == domain.DignityOwn
				if !dignified || (!kendraHouses[pos.House] && !trikonaHouses[pos.House]) {
					return false, nil
				}
				return true, []domain.Planet{lord}
			},
		},
		Rule{
			Name: "Kahala Yoga", Category: CategoryDhana, Impact: Positive, Importance: Moderate,
			LifeArea:    "enterprise",
			Description: "The fourth and ninth lords in mutual kendras: stubborn, land-winning drive.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				fourth, ninth := c.HouseLord(4), c.HouseLord(9)
				if fourth == ninth {
					return false, nil
				}
				if !kendraHouses[domain.SignDistance(c.Position(fourth).Sign, c.Position(ninth).Sign)] {
					return false, nil
				}
				return true, []domain.Planet{fourth, ninth}
			},
		},
		Rule{
			Name: "Parvata Yoga", Category: CategoryDhana, Impact: Positive, Importance: Moderate,
			LifeArea:    "status",
			Description: "Benefics in kendras with the sixth and eighth empty or benefic-held: hilltop eminence.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				var participants []domain.Planet
				for _, p := range domain.ClassicalPlanets {
					if benefic(p) && kendraHouses[c.HouseOf(p)] {
						participants = append(participants, p)
					}
				}
				if len(participants) == 0 {
					return false, nil
				}
				for _, h := range []int{6, 8} {
					for _, p := range c.ClassicalInHouse(h) {
						if malefic(p) {
							return false, nil
						}
					}
				}
				return true, participants
			},
		},
		Rule{
			Name: "Amala Yoga", Category: CategoryDhana, Impact: Positive, Importance: Moderate,
			LifeArea:    "reputation",
			Description: "Only benefics in the tenth from the ascendant or the Moon: a spotless name.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				fromAsc := tenthOccupants(ctx, func(p domain.Planet) int { return c.HouseOf(p) })
				fromMoon := tenthOccupants(ctx, func(p domain.Planet) int { return c.HouseFrom(domain.Moon, p) })
				for _, set := range [][]domain.Planet{fromAsc, fromMoon} {
					if len(set) == 0 {
						continue
					}
					clean := true
					for _, p := range set {
						if malefic(p) {
							clean = false
						}
					}
					if clean {
						return true, set
					}
				}
				return false, nil
			},
		},
		Rule{
			Name: "Saraswati Yoga", Category: CategoryDhana, Impact: Positive, Importance: Major,
			LifeArea:    "learning",
			Description: "Jupiter, Venus and Mercury each in a kendra, trikona or the second, with Jupiter dignified.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				allowed := houseSet(1, 2, 4, 5, 7, 9, 10)
				trio := []domain.Planet{domain.Jupiter, domain.Venus, domain.Mercury}
				for _, p := range trio {
					if !allowed[c.HouseOf(p)] {
						return false, nil
					}
				}
				jd := c.Position(domain.Jupiter).Dignity
				if jd != domain.DignityExalted && jd != domain.DignityOwn && jd != domain.DignityFriend {
					return false, nil
				}
				return true, trio
			},
		},
		Rule{
			Name: "Guru-Mangala Yoga", Category: CategoryDhana, Impact: Positive, Importance: Minor,
			LifeArea:    "enterprise",
			Description: "Jupiter and Mars conjunct or in opposition: energetic, principled earning.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				if !c.Conjunct(domain.Jupiter, domain.Mars) &&
					domain.SignDistance(c.Position(domain.Jupiter).Sign, c.Position(domain.Mars).Sign) != 7 {
					return false, nil
				}
				return true, []domain.Planet{domain.Jupiter, domain.Mars}
			},
		},
		Rule{
			Name: "Maha Bhagya Yoga", Category: CategoryDhana, Impact: Positive, Importance: Major,
			LifeArea:    "fortune",
			Description: "Day birth with ascendant, Sun and Moon all in odd signs, or night birth with all three even.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				// Day when the Sun stands above the horizon, houses 7..12.
				day := c.HouseOf(domain.Sun) >= 7
				odd := c.Houses.AscSign.Odd() &&
					c.Position(domain.Sun).Sign.Odd() &&
					c.Position(domain.Moon).Sign.Odd()
				even := !c.Houses.AscSign.Odd() &&
					!c.Position(domain.Sun).Sign.Odd() &&
					!c.Position(domain.Moon).Sign.Odd()
				if (day && odd) || (!day && even) {
					return true, []domain.Planet{domain.Sun, domain.Moon}
				}
				return false, nil
			},
		},
		Rule{
			Name: "Daridra Yoga", Category: CategoryDhana, Impact: Negative, Importance: Major,
			LifeArea:    "wealth",
			Description: "The eleventh lord sunk in a dusthana: gains that drain away.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				lord := ctx.Chart.HouseLord(11)
				if !inHouses(ctx.Chart, lord, dusthanaHouses) {
					return false, nil
				}
				return true, []domain.Planet{lord}
			},
		},
	)
}

// tenthOccupants lists the classical planets in the tenth house of the given
// reckoning.
func tenthOccupants(ctx *Context, houseOf func(domain.Planet) int) []domain.Planet {
	var out []domain.Planet
	for _, p := range domain.ClassicalPlanets {
		if houseOf(p) == 10 {
			out = append(out, p)
		}
	}
	return out
}
