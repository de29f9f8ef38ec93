package ephemeris

import "github.com/mihira/jyotish/internal/domain"

// StaticSource returns a fixed BodySet regardless of the requested instant.
// It exists for callers that already hold externally computed positions and
// for deterministic tests of the downstream pipeline.
type StaticSource struct {
	Set BodySet
}

// Positions implements Source. The returned set is a copy; mutating it does
// not affect the source.
func (s *StaticSource) Positions(jd, latitude, longitude float64) (*BodySet, error) {
	out := s.Set
	out.Bodies = make(map[domain.Planet]Body, len(s.Set.Bodies))
	for p, b := range s.Set.Bodies {
		out.Bodies[p] = b
	}
	return &out, nil
}
