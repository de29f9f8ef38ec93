package chart

import "github.com/mihira/jyotish/internal/domain"

// All grahas aspect the seventh sign from their own. Mars, Jupiter and
// Saturn carry the classical special aspects. The nodes keep the plain
// seventh aspect.
var specialAspects = map[domain.Planet][]int{
	domain.Mars:    {4, 7, 8},
	domain.Jupiter: {5, 7, 9},
	domain.Saturn:  {3, 7, 10},
}

// AspectOffsets returns the house offsets (counted inclusively, so the
// seventh aspect is offset 7) a planet casts.
func AspectOffsets(p domain.Planet) []int {
	if offsets, ok := specialAspects[p]; ok {
		return offsets
	}
	return []int{7}
}

// Aspects reports whether from casts a classical aspect on the sign
// occupied by to.
func (c *Chart) Aspects(from, to domain.Planet) bool {
	return c.AspectsSign(from, c.Position(to).Sign)
}

// AspectsSign reports whether a planet aspects a sign.
func (c *Chart) AspectsSign(from domain.Planet, sign domain.Sign) bool {
	distance := domain.SignDistance(c.Position(from).Sign, sign)
	for _, offset := range AspectOffsets(from) {
		if distance == offset {
			return true
		}
	}
	return false
}

// AspectsHouse reports whether a planet aspects house n of the chart.
func (c *Chart) AspectsHouse(from domain.Planet, n int) bool {
	return c.AspectsSign(from, c.HouseSign(n))
}

// MutualAspect reports whether two planets aspect each other.
func (c *Chart) MutualAspect(a, b domain.Planet) bool {
	return c.Aspects(a, b) && c.Aspects(b, a)
}

// Conjunct reports whether two planets share a sign.
func (c *Chart) Conjunct(a, b domain.Planet) bool {
	return c.Position(a).Sign == c.Position(b).Sign
}

// Associated reports the classical association used by lordship yogas:
// conjunction or mutual aspect.
func (c *Chart) Associated(a, b domain.Planet) bool {
	return c.Conjunct(a, b) || c.MutualAspect(a, b)
}

// Exchange reports whether two planets occupy each other's signs
// (parivartana).
func (c *Chart) Exchange(a, b domain.Planet) bool {
	return domain.OwnSign(a, c.Position(b).Sign) && domain.OwnSign(b, c.Position(a).Sign)
}
