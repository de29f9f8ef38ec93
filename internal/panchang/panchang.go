// Package panchang derives the five classical limbs of the Vedic calendar
// from a chart's Sun and Moon longitudes and the civil weekday: tithi, vara,
// nakshatra, nitya yoga and karana. Everything here is a pure function of
// its inputs; every segment lookup uses half-open [start, end) intervals.
package panchang

import (
	"time"

	"github.com/mihira/jyotish/internal/domain"
)

const (
	tithiSpan     = 12.0       // degrees of Moon-Sun elongation per tithi
	karanaSpan    = 6.0        // half a tithi
	nakshatraSpan = 360.0 / 27 // 13deg20'
	padaSpan      = nakshatraSpan / 4
)

// Tithi is one of the 30 lunar days.
type Tithi struct {
	Index  int    `json:"index"` // 1..30
	Name   string `json:"name"`
	Paksha string `json:"paksha"` // Shukla or Krishna
}

// Vara is the weekday.
type Vara struct {
	Index int    `json:"index"` // 0 = Sunday
	Name  string `json:"name"`
}

// Nakshatra is the Moon's lunar mansion with its quarter.
type Nakshatra struct {
	Index int    `json:"index"` // 1..27
	Name  string `json:"name"`
	Pada  int    `json:"pada"` // 1..4
}

// NityaYoga is the 27-fold soli-lunar yoga.
type NityaYoga struct {
	Index      int    `json:"index"` // 1..27
	Name       string `json:"name"`
	Auspicious bool   `json:"auspicious"`
}

// Karana is the half-tithi.
type Karana struct {
	Index  int    `json:"index"` // 1..60
	Name   string `json:"name"`
	Moving bool   `json:"moving"` // chara karanas repeat; the four fixed ones do not
}

// Panchang bundles the five limbs for one instant.
type Panchang struct {
	Tithi     Tithi     `json:"tithi"`
	Vara      Vara      `json:"vara"`
	Nakshatra Nakshatra `json:"nakshatra"`
	Yoga      NityaYoga `json:"yoga"`
	Karana    Karana    `json:"karana"`
}

var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "",
}

var varaNames = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara",
	"Guruvara", "Shukravara", "Shanivara",
}

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// NityaNames lists the 27 nitya yogas in segment order.
var NityaNames = [27]string{
	"Vishkambha", "Preeti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarma", "Dhriti", "Shoola", "Ganda", "Vriddhi", "Dhruva", "Vyaghata",
	"Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha",
	"Shiva", "Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra",
	"Vaidhriti",
}

// The classically inauspicious nitya yogas, by 1-based index.
var nityaInauspicious = map[int]bool{
	1: true, 6: true, 9: true, 10: true, 13: true,
	15: true, 17: true, 19: true, 27: true,
}

var movingKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// Compute derives the full panchang from sidereal Sun and Moon longitudes
// and the civil instant (for the weekday).
func Compute(sunLon, moonLon float64, civil time.Time) Panchang {
	return Panchang{
		Tithi:     TithiOf(sunLon, moonLon),
		Vara:      VaraOf(civil),
		Nakshatra: NakshatraOf(moonLon),
		Yoga:      NityaOf(sunLon, moonLon),
		Karana:    KaranaOf(sunLon, moonLon),
	}
}

// TithiOf returns the lunar day for the given Sun/Moon longitudes.
func TithiOf(sunLon, moonLon float64) Tithi {
	idx := segment(domain.Elongation(moonLon, sunLon), tithiSpan, 30)
	name := ""
	paksha := "Shukla"
	if idx >= 15 {
		paksha = "Krishna"
	}
	switch {
	case idx == 14:
		name = "Purnima"
	case idx == 29:
		name = "Amavasya"
	default:
		name = tithiNames[idx%15]
	}
	return Tithi{Index: idx + 1, Name: name, Paksha: paksha}
}

// VaraOf returns the weekday limb for a civil instant in its own location.
func VaraOf(civil time.Time) Vara {
	idx := int(civil.Weekday())
	return Vara{Index: idx, Name: varaNames[idx]}
}

// NakshatraOf returns the lunar mansion and pada of a sidereal longitude.
func NakshatraOf(lon float64) Nakshatra {
	lon = domain.Norm360(lon)
	idx := segment(lon, nakshatraSpan, 27)
	pada := segment(lon-float64(idx)*nakshatraSpan, padaSpan, 4)
	return Nakshatra{Index: idx + 1, Name: nakshatraNames[idx], Pada: pada + 1}
}

// NityaOf returns the nitya yoga, a piecewise-constant function of the
// Moon-Sun elongation over equal 13deg20' segments.
func NityaOf(sunLon, moonLon float64) NityaYoga {
	idx := segment(domain.Elongation(moonLon, sunLon), nakshatraSpan, 27)
	return NityaYoga{
		Index:      idx + 1,
		Name:       NityaNames[idx],
		Auspicious: !nityaInauspicious[idx+1],
	}
}

// NityaIndex returns only the 1-based segment for the elongation; yoga rule
// predicates key on it.
func NityaIndex(sunLon, moonLon float64) int {
	return segment(domain.Elongation(moonLon, sunLon), nakshatraSpan, 27) + 1
}

// KaranaOf returns the half-tithi. The first half-tithi and the last three
// carry the four fixed karanas; the 56 between cycle through the seven
// moving ones.
func KaranaOf(sunLon, moonLon float64) Karana {
	idx := segment(domain.Elongation(moonLon, sunLon), karanaSpan, 60)
	k := Karana{Index: idx + 1}
	switch {
	case idx == 0:
		k.Name = "Kimstughna"
	case idx == 57:
		k.Name = "Shakuni"
	case idx == 58:
		k.Name = "Chatushpada"
	case idx == 59:
		k.Name = "Naga"
	default:
		k.Name = movingKaranas[(idx-1)%7]
		k.Moving = true
	}
	return k
}

// segment maps a value in [0,360) to its half-open bucket of the given span,
// clamped against float noise at the wrap point.
func segment(value, span float64, buckets int) int {
	idx := int(domain.Norm360(value) / span)
	if idx >= buckets {
		idx = buckets - 1
	}
	return idx
}
