// Package dasha computes Vimshottari planetary period timelines. The zodiac
// splits into 27 nakshatras of 13deg20' ruled by nine planets in a fixed
// cycle whose full allotments sum to 120 years; the Moon's birth nakshatra
// fixes the first period and its consumed balance, and every deeper level is
// the same proportional subdivision starting at the parent's planet.
package dasha

import (
	"math"
	"time"

	"github.com/mihira/jyotish/internal/domain"
)

// Level identifies the subdivision depth of a period.
type Level string

const (
	Mahadasha       Level = "MAHADASHA"
	Antardasha      Level = "ANTARDASHA"
	Pratyantardasha Level = "PRATYANTARDASHA"
)

// Period is one planetary period. Children are owned by their parent; the
// parent linkage is positional, keeping the tree serialization-safe.
type Period struct {
	Planet domain.Planet `json:"planet"`
	Level  Level         `json:"level"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Sub    []Period      `json:"sub,omitempty"`
}

// Duration of the period.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// dashaOrder is the fixed cyclic ruler sequence with full-cycle allotments
// in years. The cycle sums to exactly 120.
var dashaOrder = []struct {
	Planet domain.Planet
	Years  float64
}{
	{domain.Ketu, 7},
	{domain.Venus, 20},
	{domain.Sun, 6},
	{domain.Moon, 10},
	{domain.Mars, 7},
	{domain.Rahu, 18},
	{domain.Jupiter, 16},
	{domain.Saturn, 19},
	{domain.Mercury, 17},
}

// TotalYears is the length of one complete Vimshottari cycle.
const TotalYears = 120.0

const nakshatraSpan = 360.0 / 27 // 13deg20'

// NakshatraIndex returns the 0-based nakshatra of a sidereal longitude and
// the fraction elapsed within it. Segments are half-open, so a longitude
// exactly on a boundary starts the next nakshatra with zero elapse.
func NakshatraIndex(longitude float64) (int, float64) {
	lon := domain.Norm360(longitude)
	idx := int(lon / nakshatraSpan)
	if idx > 26 { // longitude touching 360 from rounding
		idx = 26
	}
	frac := (lon - float64(idx)*nakshatraSpan) / nakshatraSpan
	return idx, frac
}

// Timeline is the ordered sequence of Mahadashas covering the horizon.
type Timeline struct {
	Birth    time.Time `json:"birth"`
	MoonLong float64   `json:"moon_longitude"`
	Periods  []Period  `json:"periods"`
}

// Compute builds the Vimshottari timeline from the Moon's sidereal longitude
// at birth, out to horizonYears after birth. Period boundaries are exact
// date arithmetic: every boundary is derived cumulatively from the timeline
// start, and each child ring is pinned to its parent's endpoints, so the
// levels are contiguous by construction.
func Compute(moonLongitude float64, birth time.Time, horizonYears float64) (*Timeline, error) {
	if horizonYears <= 0 {
		return nil, domain.NewConfigurationError("dasha horizon must be positive, got %.2f", horizonYears)
	}

	birth = birth.UTC()
	nakIdx, frac := NakshatraIndex(moonLongitude)
	startIdx := nakIdx % len(dashaOrder)

	horizon := addYears(birth, horizonYears)

	// The first Mahadasha began before birth: the elapsed fraction of the
	// nakshatra is the consumed fraction of the ruler's full allotment.
	firstYears := dashaOrder[startIdx].Years
	timelineStart := addYears(birth, -frac*firstYears)

	tl := &Timeline{Birth: birth, MoonLong: domain.Norm360(moonLongitude)}

	elapsed := 0.0 // years since timelineStart
	for i := 0; ; i++ {
		entry := dashaOrder[(startIdx+i)%len(dashaOrder)]
		start := addYears(timelineStart, elapsed)
		if !start.Before(horizon) {
			break
		}
		end := addYears(timelineStart, elapsed+entry.Years)
		elapsed += entry.Years

		if !end.After(birth) {
			// Defensive; the first period always straddles birth.
			continue
		}

		maha := Period{
			Planet: entry.Planet,
			Level:  Mahadasha,
			Start:  start,
			End:    end,
		}
		maha.Sub = subdivide(maha, Antardasha)
		for j := range maha.Sub {
			maha.Sub[j].Sub = subdivide(maha.Sub[j], Pratyantardasha)
		}
		tl.Periods = append(tl.Periods, maha)
	}

	return tl, nil
}

// subdivide splits a period into nine children following the cycle from the
// period's own planet, each sized proportionally to its full-cycle
// allotment. The last child always ends exactly at the parent end.
func subdivide(parent Period, level Level) []Period {
	startIdx := 0
	for i, entry := range dashaOrder {
		if entry.Planet == parent.Planet {
			startIdx = i
			break
		}
	}

	total := parent.End.Sub(parent.Start)
	children := make([]Period, 0, len(dashaOrder))

	cumYears := 0.0
	prevEnd := parent.Start
	for i := 0; i < len(dashaOrder); i++ {
		entry := dashaOrder[(startIdx+i)%len(dashaOrder)]
		cumYears += entry.Years

		end := parent.Start.Add(time.Duration(float64(total) * cumYears / TotalYears))
		if i == len(dashaOrder)-1 {
			end = parent.End
		}

		children = append(children, Period{
			Planet: entry.Planet,
			Level:  level,
			Start:  prevEnd,
			End:    end,
		})
		prevEnd = end
	}

	return children
}

// Active returns the periods at every level containing the instant, outermost
// first, or nil when the instant falls outside the timeline.
func (tl *Timeline) Active(at time.Time) []Period {
	for _, maha := range tl.Periods {
		if !within(at, maha) {
			continue
		}
		out := []Period{maha}
		for _, antar := range maha.Sub {
			if !within(at, antar) {
				continue
			}
			out = append(out, antar)
			for _, praty := range antar.Sub {
				if within(at, praty) {
					out = append(out, praty)
					break
				}
			}
			break
		}
		return out
	}
	return nil
}

// within uses half-open period membership: [start, end).
func within(at time.Time, p Period) bool {
	return !at.Before(p.Start) && at.Before(p.End)
}

// addYears advances a UTC instant by fractional dasha years. Whole 365.25-day
// days go through AddDate so the arithmetic stays exact at any horizon; only
// the sub-day remainder passes through a time.Duration, which would overflow
// past roughly 292 years in one jump.
func addYears(t time.Time, years float64) time.Time {
	days, frac := math.Modf(years * 365.25)
	return t.AddDate(0, 0, int(days)).Add(time.Duration(math.Round(frac * 24 * float64(time.Hour))))
}
