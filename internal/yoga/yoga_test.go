package yoga

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihira/jyotish/internal/chart"
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/ephemeris"
	"github.com/mihira/jyotish/internal/strength"
	"github.com/mihira/jyotish/internal/varga"
)

// buildContext assembles an evaluation context from fixed sidereal
// longitudes under the whole-sign system.
func buildContext(t *testing.T, ascendant float64, longitudes map[domain.Planet]float64) *Context {
	t.Helper()
	moment, err := domain.NewBirthMoment(
		time.Date(1976, 2, 28, 3, 45, 0, 0, time.FixedZone("IST", 5*3600+1800)),
		28.613939, 77.209021)
	require.NoError(t, err)

	bodies := make(map[domain.Planet]ephemeris.Body, len(domain.Planets))
	for _, p := range domain.Planets {
		bodies[p] = ephemeris.Body{Longitude: longitudes[p], Speed: 1}
	}
	c, err := chart.FromPositions(moment, ascendant, bodies, chart.Options{})
	require.NoError(t, err)

	vargas := map[int]*varga.DivisionalChart{}
	return &Context{
		Chart:     c,
		Vargas:    vargas,
		Strengths: strength.Compute(c, vargas),
	}
}

func findMatch(matches []Match, name string) *Match {
	for i := range matches {
		if matches[i].Name == name {
			return &matches[i]
		}
	}
	return nil
}

func TestRegistryShape(t *testing.T) {
	rules := Rules()
	assert.GreaterOrEqual(t, len(rules), 150)

	names := map[string]bool{}
	for _, r := range rules {
		require.NotEmpty(t, r.Name)
		require.NotNil(t, r.Detect, "rule %s has no predicate", r.Name)
		assert.NotEmpty(t, r.Category, "rule %s has no category", r.Name)
		assert.NotEmpty(t, r.Impact, "rule %s has no impact", r.Name)
		assert.NotEmpty(t, r.Importance, "rule %s has no importance", r.Name)
		assert.False(t, names[r.Name], "duplicate rule name %s", r.Name)
		names[r.Name] = true
	}
}

// Known non-formation: the 28-Feb-1976 03:45 IST Delhi chart has an Aries
// ascendant with planets spread across the kendras, so Vaapi cannot form.
func TestVaapiNonFormation(t *testing.T) {
	ctx := buildContext(t, 15, map[domain.Planet]float64{ // Aries ascendant
		domain.Sun:     315.6, // Aquarius, house 11
		domain.Moon:    247.0, // Sagittarius, house 9
		domain.Mars:    62.0,  // Gemini, house 3
		domain.Mercury: 301.5, // Aquarius, house 11
		domain.Venus:   280.2, // Capricorn, house 10: a kendra occupant
		domain.Jupiter: 336.0, // Pisces, house 12
		domain.Saturn:  93.0,  // Cancer, house 4: a kendra occupant
		domain.Rahu:    193.0, // Libra, house 7
		domain.Ketu:    13.0,  // Aries, house 1
	})
	require.Equal(t, domain.Aries, ctx.Chart.Houses.AscSign)

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	assert.Nil(t, findMatch(matches, "Vaapi Yoga"))
}

func TestVaapiFormation(t *testing.T) {
	// All seven classical planets in panaphara houses from a Cancer
	// ascendant: houses 2, 5, 8, 11 are Leo, Scorpio, Aquarius, Taurus.
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     125, // Leo, house 2
		domain.Moon:    215, // Scorpio, house 5
		domain.Mars:    130, // Leo, house 2
		domain.Mercury: 310, // Aquarius, house 8
		domain.Venus:   45,  // Taurus, house 11
		domain.Jupiter: 50,  // Taurus, house 11
		domain.Saturn:  318, // Aquarius, house 8
		domain.Rahu:    10,
		domain.Ketu:    190,
	})

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	m := findMatch(matches, "Vaapi Yoga")
	require.NotNil(t, m)
	assert.Equal(t, CategoryNabhasa, m.Category)
	assert.Len(t, m.Participants, 7)
}

// Cancer ascendant places Taurus on the 11th; its lord Venus standing in the
// 4th house is a kendra placement, not a dusthana, so Daridra must not form.
func TestDaridraNonFormation(t *testing.T) {
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    130,
		domain.Mercury: 310,
		domain.Venus:   190, // Libra, house 4
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})
	require.Equal(t, domain.Venus, ctx.Chart.HouseLord(11))
	require.Equal(t, 4, ctx.Chart.HouseOf(domain.Venus))

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	assert.Nil(t, findMatch(matches, "Daridra Yoga"))
}

func TestDaridraFormation(t *testing.T) {
	// Same ascendant with Venus sunk in the 12th (Gemini).
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    130,
		domain.Mercury: 310,
		domain.Venus:   75, // Gemini, house 12
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	m := findMatch(matches, "Daridra Yoga")
	require.NotNil(t, m)
	assert.Equal(t, Negative, m.Impact)
	assert.Equal(t, []domain.Planet{domain.Venus}, m.Participants)
}

func TestGajakesari(t *testing.T) {
	// Jupiter in Libra, Moon in Cancer: the 4th from the Moon, a kendra.
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    100,
		domain.Mars:    130,
		domain.Mercury: 160,
		domain.Venus:   200,
		domain.Jupiter: 190,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	m := findMatch(matches, "Gajakesari Yoga")
	require.NotNil(t, m)
	assert.ElementsMatch(t, []domain.Planet{domain.Moon, domain.Jupiter}, m.Participants)
}

func TestRuchakaMahapurusha(t *testing.T) {
	// Mars exalted in Capricorn in the 7th from a Cancer ascendant.
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    298, // Capricorn 28, deep exaltation
		domain.Mercury: 160,
		domain.Venus:   200,
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})
	require.Equal(t, domain.DignityExalted, ctx.Chart.Position(domain.Mars).Dignity)

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	m := findMatch(matches, "Ruchaka Yoga")
	require.NotNil(t, m)
	assert.Equal(t, CategoryMahapurusha, m.Category)
	// Mars at its deepest exaltation degree scores the full dignity
	// component, so the match strength is well above the neutral band.
	assert.Greater(t, m.Strength, 0.5)
}

func TestKaalSarpaVariants(t *testing.T) {
	// Rahu in Leo (house 2 from Cancer ascendant), Ketu in Aquarius; all
	// classical planets within the Rahu-to-Ketu half.
	base := map[domain.Planet]float64{
		domain.Rahu:    125, // Leo
		domain.Ketu:    305, // Aquarius
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    170,
		domain.Mercury: 160,
		domain.Venus:   200,
		domain.Jupiter: 250,
		domain.Saturn:  290,
	}
	ctx := buildContext(t, 100, base)

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	m := findMatch(matches, "Kulika Kaal Sarpa Dosha")
	require.NotNil(t, m)
	assert.False(t, m.Cancelled)
	assert.Nil(t, findMatch(matches, "Partial Kaal Sarpa Dosha"))

	// One escapee downgrades to the partial form.
	base[domain.Jupiter] = 10 // Aries, outside the arc
	ctx = buildContext(t, 100, base)
	matches = NewDetector(zerolog.Nop()).Detect(ctx)
	assert.Nil(t, findMatch(matches, "Kulika Kaal Sarpa Dosha"))
	partial := findMatch(matches, "Partial Kaal Sarpa Dosha")
	require.NotNil(t, partial)
	assert.Contains(t, partial.Participants, domain.Jupiter)
}

func TestManglikTiers(t *testing.T) {
	// Mars in Capricorn from a Cancer ascendant: the 7th house from the
	// ascendant. Moon in Scorpio puts Mars in the 3rd from the Moon; Venus
	// in Cancer puts Mars in the 7th from Venus: two references, full grade.
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    285, // Capricorn 15
		domain.Mercury: 160,
		domain.Venus:   95,
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	m := findMatch(matches, "Manglik Dosha")
	require.NotNil(t, m)
	// Mars is exalted in Capricorn, which is a classical mitigation.
	assert.True(t, m.Cancelled)
	assert.Nil(t, findMatch(matches, "Partial Manglik Dosha"))
}

func TestGrahanIntensity(t *testing.T) {
	// Moon three degrees from Rahu: intensity 1 - 3/12.
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    13,
		domain.Mars:    130,
		domain.Mercury: 160,
		domain.Venus:   200,
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	m := findMatch(matches, "Chandra Grahan Dosha")
	require.NotNil(t, m)
	assert.InDelta(t, 0.75, m.Strength, 1e-9)
	assert.Nil(t, findMatch(matches, "Surya Grahan Dosha"))
}

func TestNityaAlwaysExactlyOne(t *testing.T) {
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    130,
		domain.Mercury: 310,
		domain.Venus:   190,
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})

	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	count := 0
	for _, m := range matches {
		if m.Category == CategoryNitya {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSankhyaAlwaysExactlyOne(t *testing.T) {
	ctx := buildContext(t, 100, map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    130,
		domain.Mercury: 310,
		domain.Venus:   190,
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	})

	sankhya := map[string]bool{
		"Gola Yoga": true, "Yuga Yoga": true, "Shoola Yoga": true,
		"Kedara Yoga": true, "Pasha Yoga": true, "Daama Yoga": true,
		"Veena Yoga": true,
	}
	matches := NewDetector(zerolog.Nop()).Detect(ctx)
	count := 0
	for _, m := range matches {
		if sankhya[m.Name] {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDetectIsDeterministic(t *testing.T) {
	longitudes := map[domain.Planet]float64{
		domain.Sun:     150,
		domain.Moon:    215,
		domain.Mars:    130,
		domain.Mercury: 310,
		domain.Venus:   190,
		domain.Jupiter: 50,
		domain.Saturn:  318,
		domain.Rahu:    10,
		domain.Ketu:    190,
	}
	a := NewDetector(zerolog.Nop()).Detect(buildContext(t, 100, longitudes))
	b := NewDetector(zerolog.Nop()).Detect(buildContext(t, 100, longitudes))
	assert.Equal(t, a, b)
}
