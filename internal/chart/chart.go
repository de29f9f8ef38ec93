// Package chart builds sidereal birth charts: planet placements, house
// layouts, special-state flags (retrograde, combustion, dignity, vargottama)
// and the classical aspect relations between them. A Chart is constructed
// once from validated input and never mutated afterward.
package chart

import (
	"github.com/mihira/jyotish/internal/domain"
)

// PlanetPosition is the full placement of one graha. Created once per chart;
// all fields honor the chart invariants: Sign in [1,12], Degree in [0,30),
// House in [1,12].
type PlanetPosition struct {
	Planet          domain.Planet  `json:"planet"`
	Longitude       float64        `json:"longitude"` // sidereal, degrees [0,360)
	Sign            domain.Sign    `json:"sign"`
	Degree          float64        `json:"degree"` // degree within sign, [0,30)
	House           int            `json:"house"`
	Speed           float64        `json:"speed"` // tropical daily motion, degrees/day
	Retrograde      bool           `json:"retrograde"`
	Combust         bool           `json:"combust"`
	CombustDistance float64        `json:"combust_distance"` // separation from the Sun, degrees
	Dignity         domain.Dignity `json:"dignity"`
	Vargottama      bool           `json:"vargottama"`
}

// HouseLayout holds the ascendant and the house frame of a chart.
// Signs maps house 1..12 (index 0..11) to the sign on that house; for the
// whole-sign system this is the complete house definition, for cusp systems
// it is the sign on the cusp.
type HouseLayout struct {
	System    HouseSystem     `json:"system"`
	Ascendant float64         `json:"ascendant"` // sidereal, degrees
	AscSign   domain.Sign     `json:"asc_sign"`
	AscDegree float64         `json:"asc_degree"`
	Cusps     [12]float64     `json:"cusps"` // sidereal cusp longitudes, cusp 1 first
	Signs     [12]domain.Sign `json:"signs"`
}

// Chart is the immutable result of one chart build.
type Chart struct {
	Moment        domain.BirthMoment `json:"moment"`
	JulianDay     float64            `json:"julian_day"`
	Ayanamsa      Ayanamsa           `json:"ayanamsa"`
	AyanamsaValue float64            `json:"ayanamsa_value"`
	Houses        HouseLayout        `json:"houses"`
	Positions     []PlanetPosition   `json:"positions"` // fixed order: domain.Planets

	byPlanet map[domain.Planet]*PlanetPosition
}

// index builds the lookup map. Called once at the end of construction.
func (c *Chart) index() {
	c.byPlanet = make(map[domain.Planet]*PlanetPosition, len(c.Positions))
	for i := range c.Positions {
		c.byPlanet[c.Positions[i].Planet] = &c.Positions[i]
	}
}

// Position returns the placement of a planet. The chart always carries all
// nine grahas, so lookups for known planets never return nil.
func (c *Chart) Position(p domain.Planet) *PlanetPosition {
	if c.byPlanet == nil {
		c.index()
	}
	return c.byPlanet[p]
}

// HouseOf returns the house occupied by a planet.
func (c *Chart) HouseOf(p domain.Planet) int {
	return c.Position(p).House
}

// HouseSign returns the sign on house n (1..12) counted from the ascendant.
func (c *Chart) HouseSign(n int) domain.Sign {
	return c.Houses.Signs[n-1]
}

// HouseLord returns the planet ruling the sign on house n from the ascendant.
// The ascendant sign is the pivot for every lordship lookup.
func (c *Chart) HouseLord(n int) domain.Planet {
	return c.HouseSign(n).Lord()
}

// PlanetsInHouse returns all grahas placed in house n, in canonical order.
func (c *Chart) PlanetsInHouse(n int) []domain.Planet {
	var out []domain.Planet
	for _, p := range domain.Planets {
		if c.HouseOf(p) == n {
			out = append(out, p)
		}
	}
	return out
}

// ClassicalInHouse returns the seven classical planets placed in house n.
func (c *Chart) ClassicalInHouse(n int) []domain.Planet {
	var out []domain.Planet
	for _, p := range domain.ClassicalPlanets {
		if c.HouseOf(p) == n {
			out = append(out, p)
		}
	}
	return out
}

// HouseFrom counts houses from a reference planet's sign to another planet's
// sign, 1..12. HouseFrom(p, p) == 1.
func (c *Chart) HouseFrom(reference, p domain.Planet) int {
	return domain.SignDistance(c.Position(reference).Sign, c.Position(p).Sign)
}
