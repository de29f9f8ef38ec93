package cache

import (
	"github.com/rs/zerolog"

	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/engine"
)

// Service is the read-through wrapper: cache hit or compute-and-store.
type Service struct {
	store  *Store
	engine *engine.Service
	log    zerolog.Logger
}

// NewService wraps an engine service with the store.
func NewService(store *Store, eng *engine.Service, log zerolog.Logger) *Service {
	return &Service{
		store:  store,
		engine: eng,
		log:    log.With().Str("component", "cache_service").Logger(),
	}
}

// Compute returns the cached kundli when present, otherwise runs the
// pipeline and stores the result. A cache failure never fails the request;
// the pipeline result wins.
func (s *Service) Compute(moment domain.BirthMoment, opts engine.Options) (*engine.Kundli, error) {
	key := Key(moment, opts)

	if cached, err := s.store.Get(key); err != nil {
		s.log.Warn().Err(err).Msg("Cache read failed, computing")
	} else if cached != nil {
		s.log.Debug().Str("key", key).Msg("Cache hit")
		return cached, nil
	}

	k, err := s.engine.Compute(moment, opts)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(key, k); err != nil {
		s.log.Warn().Err(err).Msg("Cache write failed")
	}
	return k, nil
}
