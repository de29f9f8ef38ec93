package muhurta

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/engine"
	"github.com/mihira/jyotish/internal/ephemeris"
)

func testScanner() *Scanner {
	source := &ephemeris.StaticSource{Set: ephemeris.BodySet{
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
	return NewScanner(engine.NewService(source, zerolog.Nop()), zerolog.Nop())
}

func TestScanValidation(t *testing.T) {
	s := testScanner()
	from := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	_, err := s.Scan(context.Background(), Request{From: from, To: from, Step: time.Hour})
	var inputErr *domain.InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = s.Scan(context.Background(), Request{From: from, To: from.Add(time.Hour), Step: 0})
	require.ErrorAs(t, err, &inputErr)
}

func TestScanAggregates(t *testing.T) {
	s := testScanner()
	from := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	res, err := s.Scan(context.Background(), Request{
		From:        from,
		To:          from.Add(3 * time.Hour),
		Step:        time.Hour,
		Latitude:    19.076,
		Longitude:   72.8777,
		Parallelism: 2,
	})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 3)

	// Sorted by score descending, instant ascending on ties.
	for i := 1; i < len(res.Candidates); i++ {
		prev, cur := res.Candidates[i-1], res.Candidates[i]
		assert.True(t, prev.Score > cur.Score ||
			(prev.Score == cur.Score && prev.Instant.Before(cur.Instant)))
	}

	assert.Equal(t, res.Candidates[0].Score, res.Summary.Best)
	assert.Equal(t, res.Candidates[2].Score, res.Summary.Worst)

	// A static ephemeris gives every candidate the same score.
	assert.Equal(t, res.Summary.Best, res.Summary.Worst)
	assert.Equal(t, res.Summary.Best, res.Summary.Mean)
	assert.Equal(t, 0.0, res.Summary.StdDev)
}

func TestScanHonorsCancellation(t *testing.T) {
	s := testScanner()
	from := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx, Request{
		From:      from,
		To:        from.Add(24 * time.Hour),
		Step:      time.Minute,
		Latitude:  19.076,
		Longitude: 72.8777,
	})
	require.Error(t, err)
}
