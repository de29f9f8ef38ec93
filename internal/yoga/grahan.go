package yoga

import "github.com/mihira/jyotish/internal/domain"

// Grahan dosha: a luminary seized by a node. Intensity falls off linearly
// with the separation inside the orb.

const grahanOrb = 12.0

// grahanSeparation returns the tightest luminary-node separation for the
// given luminary, or a value past the orb when free.
func grahanSeparation(ctx *Context, luminary domain.Planet) (float64, domain.Planet) {
	c := ctx.Chart
	lon := c.Position(luminary).Longitude
	rahu := domain.Separation(lon, c.Position(domain.Rahu).Longitude)
	ketu := domain.Separation(lon, c.Position(domain.Ketu).Longitude)
	if rahu <= ketu {
		return rahu, domain.Rahu
	}
	return ketu, domain.Ketu
}

func init() {
	entries := []struct {
		name, desc string
		luminary   domain.Planet
	}{
		{"Surya Grahan Dosha", "The Sun within the eclipse orb of a lunar node.", domain.Sun},
		{"Chandra Grahan Dosha", "The Moon within the eclipse orb of a lunar node.", domain.Moon},
	}
	for _, e := range entries {
		luminary := e.luminary
		register(Rule{
			Name:        e.name,
			Category:    CategoryDosha,
			Impact:      Negative,
			Importance:  Moderate,
			LifeArea:    "mind",
			Description: e.desc,
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				sep, node := grahanSeparation(ctx, luminary)
				if sep >= grahanOrb {
					return false, nil
				}
				return true, []domain.Planet{luminary, node}
			},
			// Intensity is inverse to the separation.
			Strength: func(ctx *Context) float64 {
				sep, _ := grahanSeparation(ctx, luminary)
				if sep >= grahanOrb {
					return 0
				}
				return 1 - sep/grahanOrb
			},
		})
	}
}
