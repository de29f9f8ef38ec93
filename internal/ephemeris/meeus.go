package ephemeris

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/mihira/jyotish/internal/domain"
)

// Supported Julian Day span. VSOP87 and the lunar theory degrade gracefully
// outside a few millennia around J2000; requests beyond this window fail
// rather than returning silently wrong longitudes.
const (
	jdMin = 1355818.0 // about year -1000
	jdMax = 3182030.0 // about year 4000
)

// Differentiation step for daily speeds, in days.
const speedStep = 0.25

// MeeusSource computes positions from Meeus' Astronomical Algorithms:
// VSOP87 for the planets, the abridged ELP lunar theory for the Moon, and the
// standard solar theory for the Sun. VSOP87 data files are loaded lazily from
// dataDir on first use and are read-only afterward, so a single MeeusSource
// is safe for concurrent chart builds.
type MeeusSource struct {
	dataDir  string
	nodeMode NodeMode
	log      zerolog.Logger

	once    sync.Once
	loadErr error
	planets map[domain.Planet]*planetposition.V87Planet
	earth   *planetposition.V87Planet
}

// NewMeeusSource creates a MeeusSource reading VSOP87 files from dataDir.
func NewMeeusSource(dataDir string, nodeMode NodeMode, log zerolog.Logger) *MeeusSource {
	if nodeMode == "" {
		nodeMode = NodeMean
	}
	return &MeeusSource{
		dataDir:  dataDir,
		nodeMode: nodeMode,
		log:      log.With().Str("component", "ephemeris").Logger(),
	}
}

// NodeMode reports the node theory this source was constructed with.
func (s *MeeusSource) NodeMode() NodeMode {
	return s.nodeMode
}

var vsopIndex = map[domain.Planet]int{
	domain.Mercury: planetposition.Mercury,
	domain.Venus:   planetposition.Venus,
	domain.Mars:    planetposition.Mars,
	domain.Jupiter: planetposition.Jupiter,
	domain.Saturn:  planetposition.Saturn,
}

func (s *MeeusSource) load() error {
	s.once.Do(func() {
		s.planets = make(map[domain.Planet]*planetposition.V87Planet, len(vsopIndex))
		earth, err := planetposition.LoadPlanetPath(planetposition.Earth, s.dataDir)
		if err != nil {
			s.loadErr = fmt.Errorf("loading VSOP87 Earth: %w", err)
			return
		}
		s.earth = earth
		for planet, idx := range vsopIndex {
			p, err := planetposition.LoadPlanetPath(idx, s.dataDir)
			if err != nil {
				s.loadErr = fmt.Errorf("loading VSOP87 %s: %w", planet, err)
				return
			}
			s.planets[planet] = p
		}
		s.log.Debug().Str("data_dir", s.dataDir).Msg("VSOP87 data loaded")
	})
	return s.loadErr
}

// Positions implements Source.
func (s *MeeusSource) Positions(jd, latitude, longitude float64) (*BodySet, error) {
	if jd < jdMin || jd > jdMax {
		return nil, &domain.EphemerisError{
			Op:  "positions",
			Err: fmt.Errorf("julian day %.2f outside supported range [%.0f, %.0f]", jd, jdMin, jdMax),
		}
	}
	if err := s.load(); err != nil {
		return nil, &domain.EphemerisError{Op: "load", Err: err}
	}

	bodies := make(map[domain.Planet]Body, len(domain.Planets))

	bodies[domain.Sun] = bodyAt(jd, sunLongitude)
	bodies[domain.Moon] = bodyAt(jd, moonLongitude)
	for planet, v87 := range s.planets {
		v87 := v87
		bodies[planet] = bodyAt(jd, func(j float64) float64 {
			return geocentricLongitude(v87, s.earth, j)
		})
	}

	nodeFn := meanNode
	if s.nodeMode == NodeTrue {
		nodeFn = trueNode
	}
	rahu := bodyAt(jd, nodeFn)
	bodies[domain.Rahu] = rahu
	bodies[domain.Ketu] = Body{Longitude: domain.Norm360(rahu.Longitude + 180), Speed: rahu.Speed}

	ramc := domain.Norm360(gmst(jd) + longitude)
	eps := nutation.MeanObliquity(jd).Deg()
	asc, mc := ascendantMC(ramc, latitude, eps)

	return &BodySet{
		Bodies:    bodies,
		Ascendant: asc,
		Midheaven: mc,
		RAMC:      ramc,
		Obliquity: eps,
	}, nil
}

// bodyAt evaluates a longitude function and its daily speed by symmetric
// finite difference.
func bodyAt(jd float64, fn func(float64) float64) Body {
	lon := fn(jd)
	before := fn(jd - speedStep)
	after := fn(jd + speedStep)
	return Body{
		Longitude: domain.Norm360(lon),
		Speed:     signedDiff(after, before) / (2 * speedStep),
	}
}

// signedDiff returns a-b mapped to (-180, 180].
func signedDiff(a, b float64) float64 {
	d := domain.Norm360(a - b)
	if d > 180 {
		d -= 360
	}
	return d
}

func sunLongitude(jd float64) float64 {
	return solar.ApparentLongitude(base.J2000Century(jd)).Deg()
}

func moonLongitude(jd float64) float64 {
	lon, _, _ := moonposition.Position(jd)
	return lon.Deg()
}

// geocentricLongitude converts heliocentric VSOP87 positions of a planet and
// Earth to the geometric geocentric ecliptic longitude of the planet.
func geocentricLongitude(p, earth *planetposition.V87Planet, jd float64) float64 {
	l, b, r := p.Position(jd)
	l0, b0, r0 := earth.Position(jd)

	x := r*math.Cos(b.Rad())*math.Cos(l.Rad()) - r0*math.Cos(b0.Rad())*math.Cos(l0.Rad())
	y := r*math.Cos(b.Rad())*math.Sin(l.Rad()) - r0*math.Cos(b0.Rad())*math.Sin(l0.Rad())

	return domain.Norm360(unit.Angle(math.Atan2(y, x)).Deg())
}

// Lunar fundamental arguments (Meeus ch. 47), degrees.
func lunarArgs(t float64) (d, m, mp, f float64) {
	d = 297.8501921 + 445267.1114034*t - 0.0018819*t*t + t*t*t/545868 - t*t*t*t/113065000
	m = 357.5291092 + 35999.0502909*t - 0.0001536*t*t + t*t*t/24490000
	mp = 134.9633964 + 477198.8675055*t + 0.0087414*t*t + t*t*t/69699 - t*t*t*t/14712000
	f = 93.2720950 + 483202.0175233*t - 0.0036539*t*t - t*t*t/3526000 + t*t*t*t/863310000
	return
}

// meanNode returns the mean ascending lunar node longitude.
func meanNode(jd float64) float64 {
	t := base.J2000Century(jd)
	omega := 125.0445479 - 1934.1362891*t + 0.0020754*t*t + t*t*t/467441 - t*t*t*t/60616000
	return domain.Norm360(omega)
}

// trueNode applies the principal periodic corrections to the mean node.
func trueNode(jd float64) float64 {
	t := base.J2000Century(jd)
	d, m, mp, f := lunarArgs(t)
	rad := func(deg float64) float64 { return unit.AngleFromDeg(deg).Rad() }

	correction := -1.4979*math.Sin(rad(2*(d-f))) -
		0.1500*math.Sin(rad(m)) -
		0.1226*math.Sin(rad(2*d)) +
		0.1176*math.Sin(rad(2*f)) -
		0.0801*math.Sin(rad(2*(mp-f)))

	return domain.Norm360(meanNode(jd) + correction)
}

// gmst returns Greenwich mean sidereal time as an angle in degrees.
func gmst(jd float64) float64 {
	t := base.J2000Century(jd)
	theta := 280.46061837 + 360.98564736629*(jd-2451545.0) +
		0.000387933*t*t - t*t*t/38710000
	return domain.Norm360(theta)
}

// ascendantMC computes the tropical ascendant and midheaven from the right
// ascension of the meridian, geographic latitude, and the obliquity, all in
// degrees.
func ascendantMC(ramc, latitude, obliquity float64) (asc, mc float64) {
	eps := unit.AngleFromDeg(obliquity).Rad()
	ramcRad := unit.AngleFromDeg(ramc).Rad()
	phiRad := unit.AngleFromDeg(latitude).Rad()

	asc = unit.Angle(math.Atan2(
		math.Cos(ramcRad),
		-(math.Sin(ramcRad)*math.Cos(eps) + math.Tan(phiRad)*math.Sin(eps)),
	)).Deg()

	mc = unit.Angle(math.Atan2(math.Sin(ramcRad), math.Cos(ramcRad)*math.Cos(eps))).Deg()

	return domain.Norm360(asc), domain.Norm360(mc)
}
