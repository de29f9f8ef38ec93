package chart

import (
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/ephemeris"
	"github.com/mihira/jyotish/internal/varga"
)

// Options selects the fixed per-chart computation parameters.
type Options struct {
	Ayanamsa    Ayanamsa
	HouseSystem HouseSystem
}

// normalized applies defaults for zero values.
func (o Options) normalized() Options {
	if o.Ayanamsa == "" {
		o.Ayanamsa = AyanamsaLahiri
	}
	if o.HouseSystem == "" {
		o.HouseSystem = WholeSign
	}
	return o
}

// Validate rejects unknown identifiers before any computation starts.
func (o Options) Validate() error {
	o = o.normalized()
	if !o.Ayanamsa.Valid() {
		return domain.NewInputError("ayanamsa", "unknown identifier %q", o.Ayanamsa)
	}
	if !o.HouseSystem.Valid() {
		return domain.NewInputError("house_system", "unknown identifier %q", o.HouseSystem)
	}
	return nil
}

// Builder converts ephemeris output into sidereal charts.
type Builder struct {
	source ephemeris.Source
	log    zerolog.Logger
}

// NewBuilder creates a chart builder over an ephemeris source.
func NewBuilder(source ephemeris.Source, log zerolog.Logger) *Builder {
	return &Builder{
		source: source,
		log:    log.With().Str("component", "chart_builder").Logger(),
	}
}

// Build computes the full sidereal chart for a birth moment. Any failure is
// fatal for the whole chart; there is no partial result.
func (b *Builder) Build(moment domain.BirthMoment, opts Options) (*Chart, error) {
	opts = opts.normalized()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	jd := ephemeris.JulianDay(moment.UTC())

	set, err := b.source.Positions(jd, moment.Latitude, moment.Longitude)
	if err != nil {
		return nil, err
	}

	ayanamsa := opts.Ayanamsa.Value(jd)

	layout, err := buildLayout(opts.HouseSystem, houseFrame{
		AscTropical: set.Ascendant,
		MCTropical:  set.Midheaven,
		RAMC:        set.RAMC,
		Obliquity:   set.Obliquity,
		Latitude:    moment.Latitude,
		Ayanamsa:    ayanamsa,
	})
	if err != nil {
		return nil, err
	}

	chart := &Chart{
		Moment:        moment,
		JulianDay:     jd,
		Ayanamsa:      opts.Ayanamsa,
		AyanamsaValue: ayanamsa,
		Houses:        layout,
		Positions:     make([]PlanetPosition, 0, len(domain.Planets)),
	}

	sunSidereal := domain.Norm360(set.Bodies[domain.Sun].Longitude - ayanamsa)

	for _, planet := range domain.Planets {
		body := set.Bodies[planet]
		sidereal := domain.Norm360(body.Longitude - ayanamsa)
		sign := domain.SignOf(sidereal)
		degree := math.Mod(sidereal, 30)

		// The Sun and Moon are never retrograde; the nodes move backward by
		// nature and are not classed retrograde either.
		retrograde := body.Speed < 0 &&
			planet != domain.Sun && planet != domain.Moon && !planet.IsNode()

		combust := false
		combustDistance := 0.0
		if planet != domain.Sun && !planet.IsNode() {
			combust, combustDistance = combustion(planet, sidereal, retrograde, sunSidereal)
		}

		chart.Positions = append(chart.Positions, PlanetPosition{
			Planet:          planet,
			Longitude:       sidereal,
			Sign:            sign,
			Degree:          degree,
			House:           layout.houseOf(sidereal),
			Speed:           body.Speed,
			Retrograde:      retrograde,
			Combust:         combust,
			CombustDistance: combustDistance,
			Dignity:         domain.DignityOf(planet, sign),
			Vargottama:      varga.Navamsa(sign, degree) == sign,
		})
	}

	chart.index()

	b.log.Debug().
		Str("chart_id", uuid.NewString()).
		Float64("jd", jd).
		Str("ayanamsa", string(opts.Ayanamsa)).
		Str("house_system", string(opts.HouseSystem)).
		Str("asc_sign", layout.AscSign.String()).
		Msg("Chart built")

	return chart, nil
}

// FromPositions assembles a chart directly from sidereal placements. It
// serves callers that already hold externally computed longitudes; all
// invariants (signs, houses, flags) are derived exactly as in Build.
func FromPositions(moment domain.BirthMoment, ascendant float64, bodies map[domain.Planet]ephemeris.Body, opts Options) (*Chart, error) {
	opts = opts.normalized()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.HouseSystem == Placidus {
		return nil, domain.NewConfigurationError("placidus requires full ephemeris geometry")
	}

	layout, err := buildLayout(opts.HouseSystem, houseFrame{
		AscTropical: ascendant,
		Latitude:    moment.Latitude,
	})
	if err != nil {
		return nil, err
	}

	chart := &Chart{
		Moment:    moment,
		Ayanamsa:  opts.Ayanamsa,
		Houses:    layout,
		Positions: make([]PlanetPosition, 0, len(bodies)),
	}

	sun, hasSun := bodies[domain.Sun]

	for _, planet := range domain.Planets {
		body, ok := bodies[planet]
		if !ok {
			return nil, domain.NewInputError("positions", "missing placement for %s", planet)
		}
		sign := domain.SignOf(body.Longitude)
		degree := math.Mod(domain.Norm360(body.Longitude), 30)

		retrograde := body.Speed < 0 &&
			planet != domain.Sun && planet != domain.Moon && !planet.IsNode()

		combust := false
		combustDistance := 0.0
		if hasSun && planet != domain.Sun && !planet.IsNode() {
			combust, combustDistance = combustion(planet, body.Longitude, retrograde, sun.Longitude)
		}

		chart.Positions = append(chart.Positions, PlanetPosition{
			Planet:          planet,
			Longitude:       domain.Norm360(body.Longitude),
			Sign:            sign,
			Degree:          degree,
			House:           layout.houseOf(domain.Norm360(body.Longitude)),
			Speed:           body.Speed,
			Retrograde:      retrograde,
			Combust:         combust,
			CombustDistance: combustDistance,
			Dignity:         domain.DignityOf(planet, sign),
			Vargottama:      varga.Navamsa(sign, degree) == sign,
		})
	}

	chart.index()
	return chart, nil
}
