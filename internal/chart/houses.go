package chart

import (
	"math"

	"github.com/mihira/jyotish/internal/domain"
)

// HouseSystem identifies the cusp-computation strategy for a chart.
// Whole-sign is the classical default; every system must resolve each planet
// to exactly one house.
type HouseSystem string

const (
	WholeSign HouseSystem = "whole_sign"
	Equal     HouseSystem = "equal"
	Placidus  HouseSystem = "placidus"
)

// Valid reports whether the identifier names a supported house system.
func (h HouseSystem) Valid() bool {
	switch h {
	case WholeSign, Equal, Placidus:
		return true
	}
	return false
}

// houseFrame carries the geometry a cusp strategy needs. Angles are degrees;
// AscTropical/MCTropical are tropical, the ayanamsa converts to sidereal.
type houseFrame struct {
	AscTropical float64
	MCTropical  float64
	RAMC        float64
	Obliquity   float64
	Latitude    float64
	Ayanamsa    float64
}

func (f houseFrame) ascSidereal() float64 {
	return domain.Norm360(f.AscTropical - f.Ayanamsa)
}

// buildLayout computes the house layout for the chosen system.
func buildLayout(system HouseSystem, frame houseFrame) (HouseLayout, error) {
	asc := frame.ascSidereal()
	ascSign := domain.SignOf(asc)

	layout := HouseLayout{
		System:    system,
		Ascendant: asc,
		AscSign:   ascSign,
		AscDegree: math.Mod(asc, 30),
	}

	switch system {
	case WholeSign:
		for i := 0; i < 12; i++ {
			sign := ascSign.Add(i)
			layout.Cusps[i] = float64(sign-1) * 30
			layout.Signs[i] = sign
		}
	case Equal:
		for i := 0; i < 12; i++ {
			cusp := domain.Norm360(asc + float64(i)*30)
			layout.Cusps[i] = cusp
			layout.Signs[i] = domain.SignOf(cusp)
		}
	case Placidus:
		cusps, err := placidusCusps(frame)
		if err != nil {
			return HouseLayout{}, err
		}
		layout.Cusps = cusps
		for i := 0; i < 12; i++ {
			layout.Signs[i] = domain.SignOf(cusps[i])
		}
	default:
		return HouseLayout{}, domain.NewInputError("house_system", "unknown identifier %q", system)
	}

	return layout, nil
}

// houseOf assigns a sidereal longitude to a house under the layout.
// Whole-sign placement is purely sign arithmetic; cusp systems use half-open
// containment [cusp_i, cusp_i+1).
func (l *HouseLayout) houseOf(longitude float64) int {
	if l.System == WholeSign {
		return domain.SignDistance(l.AscSign, domain.SignOf(longitude))
	}
	for i := 0; i < 12; i++ {
		next := l.Cusps[(i+1)%12]
		if domain.WithinArc(longitude, l.Cusps[i], next) {
			return i + 1
		}
	}
	// Unreachable for a valid cusp ring; degenerate input falls to house 1.
	return 1
}

// placidusCusps computes the Placidus cusps by bisecting the
// meridian-distance / semi-arc ratio between the meridian and the horizon,
// then converts to sidereal. The system is undefined within the polar
// circles.
func placidusCusps(frame houseFrame) ([12]float64, error) {
	var cusps [12]float64

	if math.Abs(frame.Latitude) >= 66.5 {
		return cusps, domain.NewConfigurationError(
			"placidus houses undefined at latitude %.4f", frame.Latitude)
	}

	asc := frame.AscTropical
	mc := frame.MCTropical
	ic := domain.Norm360(mc + 180)

	tropical := [12]float64{}
	tropical[0] = asc
	tropical[9] = mc

	// Cusps 11 and 12 divide the diurnal semi-arc between MC and ascendant;
	// cusps 2 and 3 divide the nocturnal semi-arc between ascendant and IC.
	tropical[10] = placidusSolve(frame, mc, asc, 1.0/3, true)
	tropical[11] = placidusSolve(frame, mc, asc, 2.0/3, true)
	tropical[1] = placidusSolve(frame, asc, ic, 2.0/3, false)
	tropical[2] = placidusSolve(frame, asc, ic, 1.0/3, false)

	// Opposite cusps complete the ring.
	for _, i := range []int{0, 1, 2, 9, 10, 11} {
		tropical[(i+6)%12] = domain.Norm360(tropical[i] + 180)
	}

	for i, t := range tropical {
		cusps[i] = domain.Norm360(t - frame.Ayanamsa)
	}
	return cusps, nil
}

// placidusSolve bisects over the zodiacal arc [from, to] for the tropical
// longitude whose meridian distance equals fraction f of its semi-arc.
// Diurnal cusps measure from the MC against the diurnal semi-arc, nocturnal
// cusps from the IC against the nocturnal semi-arc. The objective is negative
// at from and positive at to throughout the bracket.
func placidusSolve(frame houseFrame, from, to float64, f float64, diurnal bool) float64 {
	arc := domain.Elongation(to, from)

	g := func(lon float64) float64 {
		md, sa := placidusGeometry(frame, lon, diurnal)
		if diurnal {
			// md runs 0 at the MC to +sa at the rising point.
			return md - f*sa
		}
		// md runs -sa at the rising point to 0 at the IC.
		return md + f*sa
	}

	lo, hi := 0.0, arc
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if g(domain.Norm360(from+mid)) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return domain.Norm360(from + (lo+hi)/2)
}

// placidusGeometry returns the signed meridian distance and semi-arc for a
// tropical longitude. Diurnal cusps measure distance from the MC (0 at
// culmination, +semi-arc at the rising point); nocturnal cusps from the IC
// (-semi-arc at the rising point, 0 at the IC).
func placidusGeometry(frame houseFrame, tropical float64, diurnal bool) (md, sa float64) {
	deg := math.Pi / 180

	lonRad := tropical * deg
	epsRad := frame.Obliquity * deg
	phiRad := frame.Latitude * deg

	ra := domain.Norm360(math.Atan2(math.Sin(lonRad)*math.Cos(epsRad), math.Cos(lonRad)) / deg)
	dec := math.Asin(math.Sin(epsRad) * math.Sin(lonRad))

	// Ascensional difference; clamped at the polar-circle guard boundary.
	x := math.Tan(phiRad) * math.Tan(dec)
	x = math.Max(-1, math.Min(1, x))
	ad := math.Asin(x) / deg

	if diurnal {
		return signed180(ra - frame.RAMC), 90 + ad
	}
	return signed180(ra - frame.RAMC - 180), 90 - ad
}

func signed180(deg float64) float64 {
	d := domain.Norm360(deg)
	if d > 180 {
		d -= 360
	}
	return d
}
