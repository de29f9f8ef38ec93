package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignOf(t *testing.T) {
	testCases := []struct {
		longitude float64
		expected  Sign
		name      string
	}{
		{0, Aries, "zero is Aries"},
		{29.999, Aries, "just under first boundary"},
		{30, Taurus, "boundary belongs to the next sign"},
		{359.999, Pisces, "end of zodiac"},
		{360, Aries, "wraps"},
		{-15, Pisces, "negative wraps"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SignOf(tc.longitude))
		})
	}
}

func TestSign_QualityAndElement(t *testing.T) {
	assert.Equal(t, Movable, Aries.Quality())
	assert.Equal(t, Fixed, Taurus.Quality())
	assert.Equal(t, Dual, Gemini.Quality())
	assert.Equal(t, Movable, Capricorn.Quality())

	assert.Equal(t, Fire, Leo.Element())
	assert.Equal(t, Earth, Virgo.Element())
	assert.Equal(t, Air, Aquarius.Element())
	assert.Equal(t, Water, Pisces.Element())
}

func TestSign_Lord(t *testing.T) {
	assert.Equal(t, Mars, Aries.Lord())
	assert.Equal(t, Venus, Taurus.Lord())
	assert.Equal(t, Moon, Cancer.Lord())
	assert.Equal(t, Sun, Leo.Lord())
	assert.Equal(t, Jupiter, Pisces.Lord())
	assert.Equal(t, Saturn, Aquarius.Lord())
}

func TestSign_Add(t *testing.T) {
	assert.Equal(t, Cancer, Aries.Add(3))
	assert.Equal(t, Aries, Pisces.Add(1))
	assert.Equal(t, Pisces, Aries.Add(-1))
	assert.Equal(t, Aries, Aries.Add(12))
	assert.Equal(t, Aries, Aries.Add(-24))
}

func TestSignDistance(t *testing.T) {
	assert.Equal(t, 1, SignDistance(Aries, Aries))
	assert.Equal(t, 2, SignDistance(Aries, Taurus))
	assert.Equal(t, 12, SignDistance(Aries, Pisces))
	assert.Equal(t, 7, SignDistance(Libra, Aries))
}

func TestNorm360(t *testing.T) {
	assert.InDelta(t, 0, Norm360(720), 1e-12)
	assert.InDelta(t, 350, Norm360(-10), 1e-12)
	assert.InDelta(t, 123.456, Norm360(123.456), 1e-12)
}

func TestSeparation(t *testing.T) {
	assert.InDelta(t, 20, Separation(10, 350), 1e-12)
	assert.InDelta(t, 180, Separation(0, 180), 1e-12)
	assert.InDelta(t, 0, Separation(90, 90), 1e-12)
}

func TestWithinArc(t *testing.T) {
	// Arc crossing 0 Aries
	assert.True(t, WithinArc(350, 300, 30))
	assert.True(t, WithinArc(10, 300, 30))
	assert.False(t, WithinArc(30, 300, 30), "end is exclusive")
	assert.True(t, WithinArc(300, 300, 30), "start is inclusive")
	assert.False(t, WithinArc(100, 300, 30))
}

func TestNewBirthMoment(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	civil := time.Date(1976, 2, 28, 3, 45, 0, 0, ist)

	t.Run("valid", func(t *testing.T) {
		moment, err := NewBirthMoment(civil, 28.613939, 77.209021)
		require.NoError(t, err)
		assert.Equal(t, 28.613939, moment.Latitude)

		// 03:45 IST is 22:15 UT on the previous day
		utc := moment.UTC()
		assert.Equal(t, 27, utc.Day())
		assert.Equal(t, 22, utc.Hour())
		assert.Equal(t, 15, utc.Minute())
	})

	t.Run("rejects bad latitude", func(t *testing.T) {
		_, err := NewBirthMoment(civil, 91, 0)
		require.Error(t, err)
		var inputErr *InputError
		assert.True(t, errors.As(err, &inputErr))
		assert.Equal(t, "latitude", inputErr.Field)
	})

	t.Run("rejects bad longitude", func(t *testing.T) {
		_, err := NewBirthMoment(civil, 0, -181)
		var inputErr *InputError
		assert.True(t, errors.As(err, &inputErr))
	})

	t.Run("rejects zero time", func(t *testing.T) {
		_, err := NewBirthMoment(time.Time{}, 0, 0)
		assert.Error(t, err)
	})
}

func TestClassicalPlanets(t *testing.T) {
	assert.Len(t, ClassicalPlanets, 7)
	for _, p := range ClassicalPlanets {
		assert.False(t, p.IsNode())
	}
	assert.True(t, Rahu.IsNode())
	assert.True(t, Ketu.IsNode())
}
