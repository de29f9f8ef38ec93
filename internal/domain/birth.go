package domain

import "time"

// BirthMoment is the validated input to a chart computation: a civil
// wall-clock instant carrying its own time.Location, plus geographic
// coordinates. Immutable once constructed.
type BirthMoment struct {
	Civil     time.Time `json:"civil"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// NewBirthMoment validates and constructs a BirthMoment.
// Latitude must be within ±90, longitude within ±180, and the civil time
// must be non-zero and carry a location (offset or IANA zone).
func NewBirthMoment(civil time.Time, latitude, longitude float64) (BirthMoment, error) {
	if civil.IsZero() {
		return BirthMoment{}, NewInputError("civil", "birth time is required")
	}
	if latitude < -90 || latitude > 90 {
		return BirthMoment{}, NewInputError("latitude", "%.6f outside [-90, 90]", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return BirthMoment{}, NewInputError("longitude", "%.6f outside [-180, 180]", longitude)
	}
	return BirthMoment{Civil: civil, Latitude: latitude, Longitude: longitude}, nil
}

// UTC returns the birth instant converted to Universal Time.
func (b BirthMoment) UTC() time.Time {
	return b.Civil.UTC()
}
