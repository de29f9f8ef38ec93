package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTithiOf(t *testing.T) {
	tests := []struct {
		name       string
		sun, moon  float64
		wantIndex  int
		wantName   string
		wantPaksha string
	}{
		{"new moon starts shukla pratipada", 10, 10, 1, "Pratipada", "Shukla"},
		{"just under one tithi", 10, 21.999, 1, "Pratipada", "Shukla"},
		{"boundary opens dwitiya", 10, 22, 2, "Dwitiya", "Shukla"},
		{"full moon", 10, 190, 15, "Purnima", "Shukla"},
		{"krishna pratipada", 10, 202, 16, "Pratipada", "Krishna"},
		{"amavasya", 10, 9, 30, "Amavasya", "Krishna"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TithiOf(tt.sun, tt.moon)
			assert.Equal(t, tt.wantIndex, got.Index)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantPaksha, got.Paksha)
		})
	}
}

func TestNakshatraOf(t *testing.T) {
	got := NakshatraOf(0)
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, "Ashwini", got.Name)
	assert.Equal(t, 1, got.Pada)

	// 13deg20' opens Bharani; 3deg20' into it is the second pada.
	got = NakshatraOf(360.0/27 + 360.0/108)
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, "Bharani", got.Name)
	assert.Equal(t, 2, got.Pada)

	got = NakshatraOf(359.999)
	assert.Equal(t, 27, got.Index)
	assert.Equal(t, "Revati", got.Name)
	assert.Equal(t, 4, got.Pada)
}

func TestNityaOf(t *testing.T) {
	// Zero elongation is Vishkambha, inauspicious.
	got := NityaOf(100, 100)
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, "Vishkambha", got.Name)
	assert.False(t, got.Auspicious)

	// One full segment of elongation opens Preeti.
	got = NityaOf(100, 100+360.0/27)
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, "Preeti", got.Name)
	assert.True(t, got.Auspicious)

	// Elongation wraps mod 360.
	assert.Equal(t, NityaIndex(350, 10), NityaIndex(0, 20))
}

func TestKaranaOf(t *testing.T) {
	tests := []struct {
		name      string
		sun, moon float64
		wantName  string
		moving    bool
	}{
		{"first half-tithi is kimstughna", 0, 0, "Kimstughna", false},
		{"second half-tithi is bava", 0, 6, "Bava", true},
		{"eighth half-tithi wraps to bava", 0, 48, "Bava", true},
		{"shakuni", 0, 342, "Shakuni", false},
		{"naga closes the cycle", 0, 355, "Naga", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KaranaOf(tt.sun, tt.moon)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.moving, got.Moving)
		})
	}
}

func TestVaraOf(t *testing.T) {
	// 2024-01-01 was a Monday.
	got := VaraOf(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "Somavara", got.Name)

	got = VaraOf(time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "Ravivara", got.Name)
}

func TestCompute(t *testing.T) {
	p := Compute(10, 190, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "Purnima", p.Tithi.Name)
	assert.Equal(t, "Somavara", p.Vara.Name)
	assert.Equal(t, 15, p.Nakshatra.Index) // Moon at 190 sits in Swati
	assert.Equal(t, "Swati", p.Nakshatra.Name)
}
