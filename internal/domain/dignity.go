package domain

// Dignity is the sign-relationship state of a planet. The same lookup serves
// the rasi chart and every divisional chart.
type Dignity string

const (
	DignityExalted     Dignity = "EXALTED"
	DignityOwn         Dignity = "OWN"
	DignityFriend      Dignity = "FRIEND"
	DignityNeutral     Dignity = "NEUTRAL"
	DignityEnemy       Dignity = "ENEMY"
	DignityDebilitated Dignity = "DEBILITATED"
)

// exaltation holds each planet's exaltation sign and deep-exaltation degree.
// The debilitation sign is always the seventh from exaltation, with the same
// deep degree.
var exaltation = map[Planet]struct {
	Sign   Sign
	Degree float64
}{
	Sun:     {Aries, 10},
	Moon:    {Taurus, 3},
	Mars:    {Capricorn, 28},
	Mercury: {Virgo, 15},
	Jupiter: {Cancer, 5},
	Venus:   {Pisces, 27},
	Saturn:  {Libra, 20},
	Rahu:    {Taurus, 20},
	Ketu:    {Scorpio, 20},
}

// ownSigns lists signs a planet rules, with the node co-rulerships used by
// the dignity tables.
var ownSigns = map[Planet][]Sign{
	Sun:     {Leo},
	Moon:    {Cancer},
	Mars:    {Aries, Scorpio},
	Mercury: {Gemini, Virgo},
	Jupiter: {Sagittarius, Pisces},
	Venus:   {Taurus, Libra},
	Saturn:  {Capricorn, Aquarius},
	Rahu:    {Aquarius},
	Ketu:    {Scorpio},
}

// Natural friendship (naisargika maitri) tables.
var naturalFriends = map[Planet][]Planet{
	Sun:     {Moon, Mars, Jupiter},
	Moon:    {Sun, Mercury},
	Mars:    {Sun, Moon, Jupiter},
	Mercury: {Sun, Venus},
	Jupiter: {Sun, Moon, Mars},
	Venus:   {Mercury, Saturn},
	Saturn:  {Mercury, Venus},
	Rahu:    {Mercury, Venus, Saturn},
	Ketu:    {Mars, Venus, Saturn},
}

var naturalEnemies = map[Planet][]Planet{
	Sun:     {Venus, Saturn},
	Moon:    {},
	Mars:    {Mercury},
	Mercury: {Moon},
	Jupiter: {Mercury, Venus},
	Venus:   {Sun, Moon},
	Saturn:  {Sun, Moon, Mars},
	Rahu:    {Sun, Moon, Mars},
	Ketu:    {Sun, Moon},
}

// ExaltationSign returns a planet's exaltation sign.
func ExaltationSign(p Planet) Sign {
	return exaltation[p].Sign
}

// DebilitationSign returns a planet's debilitation sign, the seventh from
// exaltation.
func DebilitationSign(p Planet) Sign {
	return exaltation[p].Sign.Add(6)
}

// DebilitationPoint returns the absolute longitude of the deep-debilitation
// degree, used for proportional positional strength.
func DebilitationPoint(p Planet) float64 {
	e := exaltation[p]
	return Norm360(float64(e.Sign.Add(6)-1)*30 + e.Degree)
}

// OwnSign reports whether the planet rules the sign.
func OwnSign(p Planet, s Sign) bool {
	for _, own := range ownSigns[p] {
		if own == s {
			return true
		}
	}
	return false
}

// Relation returns the natural relationship of planet p toward other.
func Relation(p, other Planet) Dignity {
	for _, f := range naturalFriends[p] {
		if f == other {
			return DignityFriend
		}
	}
	for _, e := range naturalEnemies[p] {
		if e == other {
			return DignityEnemy
		}
	}
	return DignityNeutral
}

// DignityOf resolves the dignity state of a planet in a sign: exaltation and
// debilitation take precedence, then rulership, then the natural relation to
// the sign's lord.
func DignityOf(p Planet, s Sign) Dignity {
	if exaltation[p].Sign == s {
		return DignityExalted
	}
	if DebilitationSign(p) == s {
		return DignityDebilitated
	}
	if OwnSign(p, s) {
		return DignityOwn
	}
	return Relation(p, s.Lord())
}
