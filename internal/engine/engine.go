// Package engine orchestrates the full computation pipeline: ephemeris to
// chart to divisional charts, dasha timeline, strengths and yoga detection,
// aggregated into one immutable Kundli. A computation is a pure function of
// (birth moment, options); concurrent invocations need no coordination.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mihira/jyotish/internal/chart"
	"github.com/mihira/jyotish/internal/dasha"
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/ephemeris"
	"github.com/mihira/jyotish/internal/panchang"
	"github.com/mihira/jyotish/internal/strength"
	"github.com/mihira/jyotish/internal/varga"
	"github.com/mihira/jyotish/internal/yoga"
)

// Options fixes every parameter of one computation.
type Options struct {
	Ayanamsa     chart.Ayanamsa
	HouseSystem  chart.HouseSystem
	NodeMode     ephemeris.NodeMode
	Vargas       []int
	HorizonYears float64
}

// DefaultOptions is Lahiri, whole-sign, mean node, the Saptavarga set and a
// 120-year dasha horizon.
func DefaultOptions() Options {
	return Options{
		Ayanamsa:     chart.AyanamsaLahiri,
		HouseSystem:  chart.WholeSign,
		NodeMode:     ephemeris.NodeMean,
		Vargas:       varga.VimshopakaVargas(),
		HorizonYears: 120,
	}
}

// normalized fills zero values with the defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Ayanamsa == "" {
		o.Ayanamsa = def.Ayanamsa
	}
	if o.HouseSystem == "" {
		o.HouseSystem = def.HouseSystem
	}
	if o.NodeMode == "" {
		o.NodeMode = def.NodeMode
	}
	if len(o.Vargas) == 0 {
		o.Vargas = def.Vargas
	}
	if o.HorizonYears == 0 {
		o.HorizonYears = def.HorizonYears
	}
	return o
}

// Validate rejects inconsistent requests before computation.
func (o Options) Validate() error {
	o = o.normalized()
	if err := (chart.Options{Ayanamsa: o.Ayanamsa, HouseSystem: o.HouseSystem}).Validate(); err != nil {
		return err
	}
	if !o.NodeMode.Valid() {
		return domain.NewConfigurationError("unknown node mode %q", o.NodeMode)
	}
	for _, n := range o.Vargas {
		if !varga.Supported(n) {
			return domain.NewConfigurationError("unsupported varga D%d", n)
		}
	}
	if o.HorizonYears < 0 {
		return domain.NewConfigurationError("dasha horizon must be positive, got %.2f", o.HorizonYears)
	}
	return nil
}

// Kundli is the aggregate result of one full computation.
type Kundli struct {
	ID        string                           `json:"id"`
	Moment    domain.BirthMoment               `json:"moment"`
	Options   Options                          `json:"options"`
	Chart     *chart.Chart                     `json:"chart"`
	Vargas    map[int]*varga.DivisionalChart   `json:"vargas"`
	Dashas    *dasha.Timeline                  `json:"dashas"`
	Strengths map[domain.Planet]strength.Score `json:"strengths"`
	Matches   []yoga.Match                     `json:"matches"`
	Panchang  panchang.Panchang                `json:"panchang"`
}

// Service runs the pipeline.
type Service struct {
	source   ephemeris.Source
	builder  *chart.Builder
	detector *yoga.Detector
	log      zerolog.Logger
}

// NewService builds a pipeline over an ephemeris source.
func NewService(source ephemeris.Source, log zerolog.Logger) *Service {
	return &Service{
		source:   source,
		builder:  chart.NewBuilder(source, log),
		detector: yoga.NewDetector(log),
		log:      log.With().Str("component", "engine").Logger(),
	}
}

// checkNodeMode rejects a request whose node mode differs from the one the
// source computes with. Sources that expose no mode accept any request.
func (s *Service) checkNodeMode(want ephemeris.NodeMode) error {
	src, ok := s.source.(interface{ NodeMode() ephemeris.NodeMode })
	if !ok {
		return nil
	}
	if got := src.NodeMode(); got != want {
		return domain.NewConfigurationError(
			"node mode %q requested but the ephemeris source computes %q", want, got)
	}
	return nil
}

// Compute runs the full pipeline for one birth moment. Any failure aborts
// the whole request; there is no partial Kundli.
func (s *Service) Compute(moment domain.BirthMoment, opts Options) (*Kundli, error) {
	opts = opts.normalized()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkNodeMode(opts.NodeMode); err != nil {
		return nil, err
	}

	started := time.Now()

	c, err := s.builder.Build(moment, chart.Options{
		Ayanamsa:    opts.Ayanamsa,
		HouseSystem: opts.HouseSystem,
	})
	if err != nil {
		return nil, err
	}

	vargas, err := divisionals(c, opts.Vargas)
	if err != nil {
		return nil, err
	}

	timeline, err := dasha.Compute(
		c.Position(domain.Moon).Longitude, moment.UTC(), opts.HorizonYears)
	if err != nil {
		return nil, err
	}

	strengths := strength.Compute(c, vargas)

	matches := s.detector.Detect(&yoga.Context{
		Chart:     c,
		Vargas:    vargas,
		Strengths: strengths,
	})

	k := &Kundli{
		ID:        uuid.NewString(),
		Moment:    moment,
		Options:   opts,
		Chart:     c,
		Vargas:    vargas,
		Dashas:    timeline,
		Strengths: strengths,
		Matches:   matches,
		Panchang: panchang.Compute(
			c.Position(domain.Sun).Longitude,
			c.Position(domain.Moon).Longitude,
			moment.Civil),
	}

	s.log.Info().
		Str("kundli_id", k.ID).
		Str("asc_sign", c.Houses.AscSign.String()).
		Int("vargas", len(vargas)).
		Int("matches", len(matches)).
		Dur("elapsed", time.Since(started)).
		Msg("Kundli computed")

	return k, nil
}

// divisionals computes the requested varga charts from the D1 placements.
func divisionals(c *chart.Chart, ns []int) (map[int]*varga.DivisionalChart, error) {
	planets := make(map[domain.Planet]varga.Placement, len(c.Positions))
	for _, pos := range c.Positions {
		planets[pos.Planet] = varga.Placement{Sign: pos.Sign, Degree: pos.Degree}
	}
	asc := varga.Placement{Sign: c.Houses.AscSign, Degree: c.Houses.AscDegree}

	out := make(map[int]*varga.DivisionalChart, len(ns))
	for _, n := range ns {
		dc, err := varga.Compute(n, asc, planets)
		if err != nil {
			return nil, err
		}
		out[n] = dc
	}
	return out, nil
}
