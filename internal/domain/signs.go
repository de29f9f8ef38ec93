package domain

// Sign is a zodiac sign number, 1 (Aries) through 12 (Pisces).
// Sign arithmetic is always 1-based and modular: there is no sign 0.
type Sign int

const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Quality is the zodiacal mobility group of a sign.
type Quality string

const (
	Movable Quality = "MOVABLE" // Chara
	Fixed   Quality = "FIXED"   // Sthira
	Dual    Quality = "DUAL"    // Dvisvabhava
)

// Element is the classical element of a sign.
type Element string

const (
	Fire  Element = "FIRE"
	Earth Element = "EARTH"
	Air   Element = "AIR"
	Water Element = "WATER"
)

var signNames = [13]string{"", "Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces"}

// signLords maps each sign to its ruling planet.
var signLords = [13]Planet{
	"", Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// Valid reports whether the sign number is in [1,12].
func (s Sign) Valid() bool {
	return s >= 1 && s <= 12
}

// String returns the sign's display name.
func (s Sign) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return signNames[s]
}

// Lord returns the ruling planet of the sign.
func (s Sign) Lord() Planet {
	return signLords[s]
}

// Quality returns the mobility group: Aries/Cancer/Libra/Capricorn movable,
// Taurus/Leo/Scorpio/Aquarius fixed, the rest dual.
func (s Sign) Quality() Quality {
	switch (int(s) - 1) % 3 {
	case 0:
		return Movable
	case 1:
		return Fixed
	default:
		return Dual
	}
}

// Element returns the classical element, cycling Fire/Earth/Air/Water from Aries.
func (s Sign) Element() Element {
	switch (int(s) - 1) % 4 {
	case 0:
		return Fire
	case 1:
		return Earth
	case 2:
		return Air
	default:
		return Water
	}
}

// Odd reports whether the sign is odd (male): Aries, Gemini, Leo, ...
func (s Sign) Odd() bool {
	return int(s)%2 == 1
}

// Add advances the sign by n places (n may be negative), wrapping mod 12.
func (s Sign) Add(n int) Sign {
	v := (int(s) - 1 + n) % 12
	if v < 0 {
		v += 12
	}
	return Sign(v + 1)
}

// SignOf returns the sign containing a longitude in [0,360).
func SignOf(longitude float64) Sign {
	return Sign(int(Norm360(longitude)/30) + 1)
}

// SignDistance counts signs from a to b inclusive of b, 1..12.
// SignDistance(s, s) == 1, matching house counting from an ascendant.
func SignDistance(from, to Sign) int {
	d := (int(to) - int(from)) % 12
	if d < 0 {
		d += 12
	}
	return d + 1
}
