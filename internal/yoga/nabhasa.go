package yoga

import (
	"strconv"

	"github.com/mihira/jyotish/internal/domain"
)

// The 32 Nabhasa yogas classify the shape of the seven classical planets'
// distribution over the houses: 3 Ashraya by sign quality, 2 Dala by the
// benefic/malefic split over kendras, 20 Akriti by geometric pattern, and
// 7 Sankhya by the count of distinct occupied houses. The nodes never
// participate.

func init() {
	registerAshraya()
	registerDala()
	registerAkriti()
	registerSankhya()
}

func registerAshraya() {
	quality := func(q domain.Quality) func(*Context) (bool, []domain.Planet) {
		return func(ctx *Context) (bool, []domain.Planet) {
			for _, p := range domain.ClassicalPlanets {
				if ctx.Chart.Position(p).Sign.Quality() != q {
					return false, nil
				}
			}
			return true, domain.ClassicalPlanets
		}
	}
	register(
		Rule{
			Name: "Rajju Yoga", Category: CategoryNabhasa, Impact: Mixed, Importance: Moderate,
			LifeArea:    "travel",
			Description: "All classical planets in movable signs: a restless, wandering life.",
			Detect:      quality(domain.Movable),
		},
		Rule{
			Name: "Musala Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Moderate,
			LifeArea:    "stability",
			Description: "All classical planets in fixed signs: firmness, wealth and pride.",
			Detect:      quality(domain.Fixed),
		},
		Rule{
			Name: "Nala Yoga", Category: CategoryNabhasa, Impact: Mixed, Importance: Moderate,
			LifeArea:    "adaptability",
			Description: "All classical planets in dual signs: a clever but dependent nature.",
			Detect:      quality(domain.Dual),
		},
	)
}

func registerDala() {
	kendraSplit := func(want func(domain.Planet) bool) func(*Context) (bool, []domain.Planet) {
		return func(ctx *Context) (bool, []domain.Planet) {
			var occupants []domain.Planet
			for _, p := range domain.ClassicalPlanets {
				if inHouses(ctx.Chart, p, kendraHouses) {
					occupants = append(occupants, p)
				}
			}
			if len(occupants) < 3 {
				return false, nil
			}
			for _, p := range occupants {
				if !want(p) {
					return false, nil
				}
			}
			return true, occupants
		}
	}
	register(
		Rule{
			Name: "Mala Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Moderate,
			LifeArea:    "comfort",
			Description: "Kendras garlanded by benefics alone: lasting comfort and plenty.",
			Detect:      kendraSplit(benefic),
		},
		Rule{
			Name: "Sarpa Yoga", Category: CategoryNabhasa, Impact: Negative, Importance: Moderate,
			LifeArea:    "hardship",
			Description: "Kendras held by malefics alone: a coiled, struggling life.",
			Detect:      kendraSplit(malefic),
		},
	)
}

func registerAkriti() {
	contiguous := func(name, area, desc string, impact Impact, start int) Rule {
		span := houseSet(start, wrapHouse(start+1), wrapHouse(start+2), wrapHouse(start+3))
		return Rule{
			Name: name, Category: CategoryNabhasa, Impact: impact, Importance: Moderate,
			LifeArea: area, Description: desc,
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !allClassicalIn(ctx.Chart, span) {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		}
	}
	halfChart := func(name, area, desc string, impact Impact, start int) Rule {
		span := make(map[int]bool, 7)
		for i := 0; i < 7; i++ {
			span[wrapHouse(start+i)] = true
		}
		return Rule{
			Name: name, Category: CategoryNabhasa, Impact: impact, Importance: Moderate,
			LifeArea: area, Description: desc,
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !allClassicalIn(ctx.Chart, span) {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		}
	}
	pair := func(name, area, desc string, impact Impact, a, b int) Rule {
		span := houseSet(a, b)
		return Rule{
			Name: name, Category: CategoryNabhasa, Impact: impact, Importance: Moderate,
			LifeArea: area, Description: desc,
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				occupied := classicalHouses(ctx.Chart)
				if len(occupied) != 2 || !allClassicalIn(ctx.Chart, span) {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		}
	}

	register(
		Rule{
			Name: "Gada Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Moderate,
			LifeArea:    "wealth",
			Description: "All classical planets in two successive kendras: wealth through effort.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				pairs := [4][2]int{{1, 4}, {4, 7}, {7, 10}, {10, 1}}
				for _, kp := range pairs {
					if allClassicalIn(ctx.Chart, houseSet(kp[0], kp[1])) {
						return true, domain.ClassicalPlanets
					}
				}
				return false, nil
			},
		},
		pair("Shakata Yoga (Nabhasa)", "fortune",
			"All classical planets in houses 1 and 7: fortunes that rise and fall like cart wheels.",
			Mixed, 1, 7),
		pair("Vihaga Yoga", "travel",
			"All classical planets in houses 4 and 10: a roaming, dispute-prone life.",
			Mixed, 4, 10),
		Rule{
			Name: "Shringataka Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Moderate,
			LifeArea:    "happiness",
			Description: "All classical planets in the trikonas: lasting happiness and able allies.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !allClassicalIn(ctx.Chart, trikonaHouses) {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		},
		Rule{
			Name: "Hala Yoga", Category: CategoryNabhasa, Impact: Mixed, Importance: Moderate,
			LifeArea:    "livelihood",
			Description: "All classical planets in one trine of non-trikona houses: a tiller's toil.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				for _, set := range []map[int]bool{
					houseSet(2, 6, 10), houseSet(3, 7, 11), houseSet(4, 8, 12),
				} {
					if allClassicalIn(ctx.Chart, set) {
						return true, domain.ClassicalPlanets
					}
				}
				return false, nil
			},
		},
		Rule{
			Name: "Vajra Yoga", Category: CategoryNabhasa, Impact: Mixed, Importance: Moderate,
			LifeArea:    "fortune",
			Description: "Benefics in houses 1 and 7, malefics in 4 and 10: happiness at the edges of life.",
			Detect:      vajraYava(houseSet(1, 7), houseSet(4, 10)),
		},
		Rule{
			Name: "Yava Yoga", Category: CategoryNabhasa, Impact: Mixed, Importance: Moderate,
			LifeArea:    "fortune",
			Description: "Malefics in houses 1 and 7, benefics in 4 and 10: happiness in mid-life.",
			Detect:      vajraYava(houseSet(4, 10), houseSet(1, 7)),
		},
		Rule{
			Name: "Kamala Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Major,
			LifeArea:    "status",
			Description: "All classical planets in the kendras: fame, virtue and long life.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !allClassicalIn(ctx.Chart, kendraHouses) {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		},
		Rule{
			Name: "Vaapi Yoga", Category: CategoryNabhasa, Impact: Mixed, Importance: Moderate,
			LifeArea:    "wealth",
			Description: "All classical planets confined to the panaphara houses only, or the apoklima houses only, with every kendra empty: hoarded wealth.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				c := ctx.Chart
				if allClassicalIn(c, panapharHouses) || allClassicalIn(c, apoklimaHouses) {
					return true, domain.ClassicalPlanets
				}
				return false, nil
			},
		},
		contiguous("Yupa Yoga", "spirituality",
			"All classical planets in houses 1 through 4: a life of observance.", Positive, 1),
		contiguous("Shara Yoga", "conflict",
			"All classical planets in houses 4 through 7: a hunter's aggression.", Negative, 4),
		contiguous("Shakti Yoga", "perseverance",
			"All classical planets in houses 7 through 10: late-won success.", Mixed, 7),
		contiguous("Danda Yoga", "isolation",
			"All classical planets in houses 10 through 1: separation from kin.", Negative, 10),
		halfChart("Nauka Yoga", "wealth",
			"All classical planets in the seven houses rising from the ascendant: a boatman's fluctuating gains.", Mixed, 1),
		halfChart("Koota Yoga", "trust",
			"All classical planets in houses 4 through 10: a guarded, suspicious nature.", Negative, 4),
		halfChart("Chhatra Yoga", "protection",
			"All classical planets in houses 7 through 1: sheltered beginnings and endings.", Positive, 7),
		halfChart("Chapa Yoga", "courage",
			"All classical planets in houses 10 through 4: a bowman's fortunes.", Mixed, 10),
		Rule{
			Name: "Ardha Chandra Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Moderate,
			LifeArea:    "status",
			Description: "All classical planets in seven successive houses rising from a non-kendra: half-moon grace.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				for start := 1; start <= 12; start++ {
					if kendraHouses[start] {
						continue
					}
					span := make(map[int]bool, 7)
					for i := 0; i < 7; i++ {
						span[wrapHouse(start+i)] = true
					}
					if allClassicalIn(ctx.Chart, span) {
						return true, domain.ClassicalPlanets
					}
				}
				return false, nil
			},
		},
		Rule{
			Name: "Chakra Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Major,
			LifeArea:    "power",
			Description: "All classical planets in the odd houses: sovereignty.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !allClassicalIn(ctx.Chart, houseSet(1, 3, 5, 7, 9, 11)) {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		},
		Rule{
			Name: "Samudra Yoga", Category: CategoryNabhasa, Impact: Positive, Importance: Major,
			LifeArea:    "wealth",
			Description: "All classical planets in the even houses: oceanic wealth.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if !allClassicalIn(ctx.Chart, houseSet(2, 4, 6, 8, 10, 12)) {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		},
	)
}

// vajraYava matches when every benefic sits in wantBenefic, every malefic
// classical planet in the complementary set, and nothing falls elsewhere.
func vajraYava(wantBenefic, wantMalefic map[int]bool) func(*Context) (bool, []domain.Planet) {
	return func(ctx *Context) (bool, []domain.Planet) {
		for _, p := range domain.ClassicalPlanets {
			h := ctx.Chart.HouseOf(p)
			if benefic(p) && !wantBenefic[h] {
				return false, nil
			}
			if malefic(p) && !wantMalefic[h] {
				return false, nil
			}
		}
		return true, domain.ClassicalPlanets
	}
}

var sankhyaNames = [8]string{
	"", "Gola Yoga", "Yuga Yoga", "Shoola Yoga", "Kedara Yoga",
	"Pasha Yoga", "Daama Yoga", "Veena Yoga",
}

var sankhyaImpacts = [8]Impact{
	"", Negative, Negative, Mixed, Positive, Mixed, Positive, Positive,
}

func registerSankhya() {
	for n := 1; n <= 7; n++ {
		count := n
		register(Rule{
			Name: sankhyaNames[n], Category: CategoryNabhasa, Impact: sankhyaImpacts[n],
			Importance:  Minor,
			LifeArea:    "temperament",
			Description: "The seven classical planets spread over exactly " + strconv.Itoa(count) + " houses.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if len(classicalHouses(ctx.Chart)) != count {
					return false, nil
				}
				return true, domain.ClassicalPlanets
			},
		})
	}
}

// wrapHouse folds a 1-based house offset back into 1..12.
func wrapHouse(h int) int {
	return (h-1)%12 + 1
}
