package yoga

import (
	"github.com/mihira/jyotish/internal/domain"
)

// Kaal Sarpa dosha: all seven classical planets confined to the arc on one
// side of the Rahu-Ketu axis. The variant is named by Rahu's house; when
// exactly one planet escapes the confinement the weaker partial form is
// flagged instead. Confinement is measured on longitudes with half-open arc
// membership, so a planet exactly on a node's degree counts as inside.

var kaalSarpaVariants = [13]string{
	"", "Anant", "Kulika", "Vasuki", "Shankhapala", "Padma", "Mahapadma",
	"Takshaka", "Karkotaka", "Shankhachooda", "Ghataka", "Vishadhara",
	"Sheshanaga",
}

// kaalSarpaEscapees returns the classical planets outside both node-bounded
// arcs' common side: first those beyond the Rahu-to-Ketu arc, then the
// smaller escape count of the two directions.
func kaalSarpaEscapees(ctx *Context) []domain.Planet {
	c := ctx.Chart
	rahu := c.Position(domain.Rahu).Longitude
	ketu := c.Position(domain.Ketu).Longitude

	var outRK, outKR []domain.Planet
	for _, p := range domain.ClassicalPlanets {
		lon := c.Position(p).Longitude
		if !domain.WithinArc(lon, rahu, ketu) {
			outRK = append(outRK, p)
		}
		if !domain.WithinArc(lon, ketu, rahu) {
			outKR = append(outKR, p)
		}
	}
	if len(outRK) <= len(outKR) {
		return outRK
	}
	return outKR
}

// kaalSarpaCancelled: a planet seizing a node's exact degree breaks the
// serpent's grip.
func kaalSarpaCancelled(ctx *Context) bool {
	c := ctx.Chart
	rahu := c.Position(domain.Rahu).Longitude
	ketu := c.Position(domain.Ketu).Longitude
	for _, p := range domain.ClassicalPlanets {
		lon := c.Position(p).Longitude
		if domain.Separation(lon, rahu) < 1 || domain.Separation(lon, ketu) < 1 {
			return true
		}
	}
	return false
}

func init() {
	for house := 1; house <= 12; house++ {
		rahuHouse := house
		name := kaalSarpaVariants[house]
		register(Rule{
			Name:        name + " Kaal Sarpa Dosha",
			Category:    CategoryDosha,
			Impact:      Negative,
			Importance:  Major,
			LifeArea:    "obstacles",
			Description: "All classical planets hemmed within one side of the Rahu-Ketu axis, Rahu in the " + ordinals[rahuHouse] + " house.",
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				if ctx.Chart.HouseOf(domain.Rahu) != rahuHouse {
					return false, nil
				}
				if len(kaalSarpaEscapees(ctx)) != 0 {
					return false, nil
				}
				return true, []domain.Planet{domain.Rahu, domain.Ketu}
			},
			Cancel: kaalSarpaCancelled,
		})
	}

	register(Rule{
		Name:        "Partial Kaal Sarpa Dosha",
		Category:    CategoryDosha,
		Impact:      Negative,
		Importance:  Moderate,
		LifeArea:    "obstacles",
		Description: "A single classical planet breaking an otherwise complete confinement to one side of the nodal axis.",
		Detect: func(ctx *Context) (bool, []domain.Planet) {
			escapees := kaalSarpaEscapees(ctx)
			if len(escapees) != 1 {
				return false, nil
			}
			return true, []domain.Planet{domain.Rahu, domain.Ketu, escapees[0]}
		},
		Cancel: kaalSarpaCancelled,
	})
}
