package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihira/jyotish/internal/chart"
	"github.com/mihira/jyotish/internal/dasha"
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/ephemeris"
)

// fixedSource carries tropical positions; the pipeline subtracts the
// ayanamsa itself.
func fixedSource() *ephemeris.StaticSource {
	return &ephemeris.StaticSource{Set: ephemeris.BodySet{
		Bodies: map[domain.Planet]ephemeris.Body{
			domain.Sun:     {Longitude: 40, Speed: 0.98},
			domain.Moon:    {Longitude: 130, Speed: 13.2},
			domain.Mars:    {Longitude: 95, Speed: 0.6},
			domain.Mercury: {Longitude: 55, Speed: -0.3},
			domain.Jupiter: {Longitude: 200, Speed: 0.08},
			domain.Venus:   {Longitude: 80, Speed: 1.1},
			domain.Saturn:  {Longitude: 320, Speed: 0.03},
			domain.Rahu:    {Longitude: 15, Speed: -0.05},
			domain.Ketu:    {Longitude: 195, Speed: -0.05},
		},
		Ascendant: 125,
		Midheaven: 35,
		RAMC:      33,
		Obliquity: 23.44,
	}}
}

func testMoment(t *testing.T) domain.BirthMoment {
	t.Helper()
	m, err := domain.NewBirthMoment(
		time.Date(1995, 4, 10, 6, 30, 0, 0, time.UTC), 19.076, 72.8777)
	require.NoError(t, err)
	return m
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{}.Validate())
	assert.NoError(t, DefaultOptions().Validate())

	err := Options{Ayanamsa: "bogus"}.Validate()
	var inputErr *domain.InputError
	require.ErrorAs(t, err, &inputErr)

	err = Options{NodeMode: "sidereal"}.Validate()
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	err = Options{Vargas: []int{5}}.Validate()
	require.ErrorAs(t, err, &cfgErr)

	err = Options{HorizonYears: -1}.Validate()
	require.ErrorAs(t, err, &cfgErr)
}

func TestComputeFullPipeline(t *testing.T) {
	svc := NewService(fixedSource(), zerolog.Nop())

	k, err := svc.Compute(testMoment(t), Options{})
	require.NoError(t, err)
	require.NotNil(t, k)

	assert.NotEmpty(t, k.ID)
	assert.Equal(t, chart.AyanamsaLahiri, k.Options.Ayanamsa)
	assert.Equal(t, chart.WholeSign, k.Options.HouseSystem)

	// Chart carries all nine grahas, each housed.
	require.Len(t, k.Chart.Positions, 9)
	for _, pos := range k.Chart.Positions {
		assert.GreaterOrEqual(t, pos.House, 1)
		assert.LessOrEqual(t, pos.House, 12)
	}

	// The Saptavarga set is computed by default.
	assert.Len(t, k.Vargas, 7)
	for _, n := range []int{1, 2, 3, 7, 9, 12, 30} {
		require.Contains(t, k.Vargas, n)
		assert.Len(t, k.Vargas[n].Signs, 9)
	}

	// D1 mirrors the rashi chart exactly.
	for _, pos := range k.Chart.Positions {
		assert.Equal(t, pos.Sign, k.Vargas[1].Signs[pos.Planet])
	}

	// Dasha timeline starts at or before birth and covers the horizon.
	require.NotNil(t, k.Dashas)
	require.NotEmpty(t, k.Dashas.Periods)
	first := k.Dashas.Periods[0]
	assert.False(t, first.Start.After(testMoment(t).UTC()))
	assert.Equal(t, dasha.Mahadasha, first.Level)

	require.Len(t, k.Strengths, 9)
	for _, s := range k.Strengths {
		assert.GreaterOrEqual(t, s.Total, 0.0)
		assert.LessOrEqual(t, s.Total, 1.0)
	}

	assert.NotEmpty(t, k.Matches)
	assert.NotZero(t, k.Panchang.Tithi.Index)
}

func TestComputeIsDeterministic(t *testing.T) {
	svc := NewService(fixedSource(), zerolog.Nop())
	moment := testMoment(t)

	a, err := svc.Compute(moment, Options{})
	require.NoError(t, err)
	b, err := svc.Compute(moment, Options{})
	require.NoError(t, err)

	// Everything except the correlation id must be bit-identical.
	a.ID, b.ID = "", ""
	assert.Equal(t, a.Chart, b.Chart)
	assert.Equal(t, a.Vargas, b.Vargas)
	assert.Equal(t, a.Dashas, b.Dashas)
	assert.Equal(t, a.Strengths, b.Strengths)
	assert.Equal(t, a.Matches, b.Matches)
}

func TestComputeRejectsNodeModeMismatch(t *testing.T) {
	// A mean-node source cannot honor a true-node request; the check fires
	// before the ephemeris data is ever touched.
	src := ephemeris.NewMeeusSource(t.TempDir(), ephemeris.NodeMean, zerolog.Nop())
	svc := NewService(src, zerolog.Nop())

	_, err := svc.Compute(testMoment(t), Options{NodeMode: ephemeris.NodeTrue})
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	// Sources that expose no node mode accept any request.
	static := NewService(fixedSource(), zerolog.Nop())
	_, err = static.Compute(testMoment(t), Options{NodeMode: ephemeris.NodeTrue})
	require.NoError(t, err)
}

func TestComputeRejectsBadOptions(t *testing.T) {
	svc := NewService(fixedSource(), zerolog.Nop())
	_, err := svc.Compute(testMoment(t), Options{HouseSystem: "campanus"})
	var inputErr *domain.InputError
	require.ErrorAs(t, err, &inputErr)
}
