package dasha

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihira/jyotish/internal/domain"
)

func TestNakshatraIndex(t *testing.T) {
	tests := []struct {
		name     string
		lon      float64
		wantIdx  int
		wantFrac float64
	}{
		{"ashwini start", 0, 0, 0},
		{"ashwini middle", 6.6666666667, 0, 0.5},
		{"bharani start", 13.3333333333, 1, 0},
		{"revati end", 359.999, 26, 0.99992},
		{"wraparound", 360, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, frac := NakshatraIndex(tt.lon)
			assert.Equal(t, tt.wantIdx, idx)
			assert.InDelta(t, tt.wantFrac, frac, 1e-4)
		})
	}
}

func TestDashaOrderSumsTo120(t *testing.T) {
	sum := 0.0
	for _, entry := range dashaOrder {
		sum += entry.Years
	}
	assert.Equal(t, TotalYears, sum)
}

func TestComputeStartsWithNakshatraRuler(t *testing.T) {
	birth := time.Date(1990, 6, 15, 12, 0, 0, 0, time.UTC)

	// Moon at 0 deg Aries: Ashwini, ruled by Ketu, zero balance consumed.
	tl, err := Compute(0, birth, 120)
	require.NoError(t, err)
	require.NotEmpty(t, tl.Periods)

	first := tl.Periods[0]
	assert.Equal(t, domain.Ketu, first.Planet)
	assert.Equal(t, Mahadasha, first.Level)
	assert.True(t, first.Start.Equal(birth), "zero balance means the dasha starts at birth")

	// Cycle order after Ketu.
	want := []domain.Planet{domain.Ketu, domain.Venus, domain.Sun, domain.Moon, domain.Mars}
	for i, p := range want {
		assert.Equal(t, p, tl.Periods[i].Planet)
	}
}

func TestComputeBalanceAtBirth(t *testing.T) {
	birth := time.Date(1990, 6, 15, 12, 0, 0, 0, time.UTC)

	// Moon halfway through Ashwini: half of Ketu's 7 years consumed, so the
	// running Mahadasha began 3.5 dasha years before birth.
	tl, err := Compute(nakshatraSpan/2, birth, 120)
	require.NoError(t, err)

	first := tl.Periods[0]
	assert.Equal(t, domain.Ketu, first.Planet)

	wantStart := birth.Add(-time.Duration(3.5 * 365.25 * 24 * float64(time.Hour)))
	assert.WithinDuration(t, wantStart, first.Start, time.Second)
	assert.WithinDuration(t, birth.Add(time.Duration(3.5*365.25*24*float64(time.Hour))), first.End, time.Second)
}

func TestMahadashaCycleTotals(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	tl, err := Compute(0, birth, 120)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tl.Periods), 9)

	total := time.Duration(0)
	for _, p := range tl.Periods[:9] {
		total += p.Duration()
	}
	want := time.Duration(120 * 365.25 * 24 * float64(time.Hour))
	assert.InDelta(t, float64(want), float64(total), float64(time.Second))
}

func TestAntardashaSubdivision(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	tl, err := Compute(0, birth, 120)
	require.NoError(t, err)

	for _, maha := range tl.Periods {
		require.Len(t, maha.Sub, 9)

		// First Antardasha belongs to the Mahadasha lord.
		assert.Equal(t, maha.Planet, maha.Sub[0].Planet)

		// Children tile the parent exactly.
		assert.True(t, maha.Sub[0].Start.Equal(maha.Start))
		assert.True(t, maha.Sub[8].End.Equal(maha.End))
		for i := 1; i < 9; i++ {
			assert.True(t, maha.Sub[i].Start.Equal(maha.Sub[i-1].End),
				"antardashas must be contiguous in %s", maha.Planet)
		}

		// Proportional sizing: the lord's own Antardasha is
		// years(lord)/120 of the Mahadasha.
		var lordYears float64
		for _, entry := range dashaOrder {
			if entry.Planet == maha.Planet {
				lordYears = entry.Years
			}
		}
		want := float64(maha.Duration()) * lordYears / TotalYears
		assert.InDelta(t, want, float64(maha.Sub[0].Duration()), float64(time.Second))
	}
}

func TestPratyantardashaContiguity(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	tl, err := Compute(100, birth, 30)
	require.NoError(t, err)

	for _, maha := range tl.Periods {
		for _, antar := range maha.Sub {
			require.Len(t, antar.Sub, 9)
			assert.Equal(t, antar.Planet, antar.Sub[0].Planet)
			assert.True(t, antar.Sub[0].Start.Equal(antar.Start))
			assert.True(t, antar.Sub[8].End.Equal(antar.End))
			for i := 1; i < 9; i++ {
				assert.True(t, antar.Sub[i].Start.Equal(antar.Sub[i-1].End))
			}
		}
	}
}

func TestActive(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	tl, err := Compute(0, birth, 120)
	require.NoError(t, err)

	// At birth the Ketu Mahadasha, Ketu Antardasha and Ketu
	// Pratyantardasha are all running.
	active := tl.Active(birth)
	require.Len(t, active, 3)
	assert.Equal(t, Mahadasha, active[0].Level)
	assert.Equal(t, Antardasha, active[1].Level)
	assert.Equal(t, Pratyantardasha, active[2].Level)
	for _, p := range active {
		assert.Equal(t, domain.Ketu, p.Planet)
	}

	// Ten years in, Venus Mahadasha (Ketu's 7 years are over).
	later := birth.Add(time.Duration(10 * 365.25 * 24 * float64(time.Hour)))
	active = tl.Active(later)
	require.NotEmpty(t, active)
	assert.Equal(t, domain.Venus, active[0].Planet)

	// Before the timeline start nothing is active.
	assert.Nil(t, tl.Active(birth.Add(-time.Hour)))
}

func TestComputeLongHorizon(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	// 400 dasha years is more than three full cycles and well past what a
	// single time.Duration can hold.
	tl, err := Compute(0, birth, 400)
	require.NoError(t, err)
	require.NotEmpty(t, tl.Periods)

	horizon := birth.AddDate(0, 0, 400*36525/100)
	last := tl.Periods[len(tl.Periods)-1]
	assert.False(t, last.End.Before(horizon), "timeline must cover the whole horizon")

	assert.Equal(t, domain.Ketu, tl.Periods[0].Planet)
	for i := 1; i < len(tl.Periods); i++ {
		assert.True(t, tl.Periods[i].Start.Equal(tl.Periods[i-1].End),
			"mahadashas must stay contiguous across cycles")
	}
}

func TestComputeStopsAtHorizon(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	// Moon at 0 deg: the 120-year horizon holds exactly one full cycle; the
	// tenth Mahadasha would start on the horizon itself and is not emitted.
	tl, err := Compute(0, birth, 120)
	require.NoError(t, err)
	require.Len(t, tl.Periods, 9)

	horizon := birth.AddDate(0, 0, 120*36525/100)
	for _, p := range tl.Periods {
		assert.True(t, p.Start.Before(horizon))
	}
	assert.True(t, tl.Periods[8].End.Equal(horizon))
}

func TestComputeRejectsBadHorizon(t *testing.T) {
	_, err := Compute(0, time.Now(), 0)
	require.Error(t, err)
	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
