package yoga

import "github.com/mihira/jyotish/internal/domain"

// Pancha Mahapurusha: one of the five non-luminary classical planets in its
// own or exaltation sign while standing in a kendra from the ascendant.

func init() {
	entries := []struct {
		name, area, desc string
		planet           domain.Planet
	}{
		{"Ruchaka Yoga", "valor", "Mars dignified in a kendra: courage, command and a warrior's frame.", domain.Mars},
		{"Bhadra Yoga", "intellect", "Mercury dignified in a kendra: learning, wit and eloquence.", domain.Mercury},
		{"Hamsa Yoga", "wisdom", "Jupiter dignified in a kendra: righteousness and respect.", domain.Jupiter},
		{"Malavya Yoga", "comforts", "Venus dignified in a kendra: beauty, vehicles and luxury.", domain.Venus},
		{"Shasha Yoga", "authority", "Saturn dignified in a kendra: authority over land and people.", domain.Saturn},
	}

	for _, e := range entries {
		planet := e.planet
		register(Rule{
			Name:        e.name,
			Category:    CategoryMahapurusha,
			Impact:      Positive,
			Importance:  Major,
			LifeArea:    e.area,
			Description: e.desc,
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				pos := ctx.Chart.Position(planet)
				dignified := pos.Dignity == domain.DignityExalted || pos.Dignity == domain.DignityOwn
				if !dignified || !kendraHouses[pos.House] {
					return false, nil
				}
				return true, []domain.Planet{planet}
			},
		})
	}
}
