package yoga

import (
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/panchang"
)

// The 27 nitya yogas are a pure function of the Moon-Sun elongation; the
// panchang package owns the shared segment table. Inauspicious segments
// carry a negative impact, the rest positive.

var nityaLifeAreas = [27]string{
	"obstacles", "affection", "longevity", "fortune", "charm", "conflict",
	"accomplishment", "steadiness", "suffering", "hindrance", "growth",
	"stability", "aggression", "joy", "hardship", "attainment", "calamity",
	"comfort", "obstruction", "prosperity", "mastery", "fulfilment",
	"auspiciousness", "clarity", "wisdom", "leadership", "discord",
}

func init() {
	for i := 0; i < 27; i++ {
		index := i + 1
		name := panchang.NityaNames[i]

		// Probe the shared table with an elongation inside segment i.
		impact := Positive
		if !panchang.NityaOf(0, (float64(i)+0.5)*360.0/27).Auspicious {
			impact = Negative
		}

		register(Rule{
			Name:        "Nitya Yoga (" + name + ")",
			Category:    CategoryNitya,
			Impact:      impact,
			Importance:  Minor,
			LifeArea:    nityaLifeAreas[i],
			Description: "Birth nitya yoga " + name + ", from the Moon-Sun elongation segment.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				sun := ctx.Chart.Position(domain.Sun).Longitude
				moon := ctx.Chart.Position(domain.Moon).Longitude
				if panchang.NityaIndex(sun, moon) != index {
					return false, nil
				}
				return true, []domain.Planet{domain.Sun, domain.Moon}
			},
		})
	}
}
