package cache

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Maintenance runs the scheduled purge of expired cache rows.
type Maintenance struct {
	store    *Store
	cron     *cron.Cron
	schedule string
	log      zerolog.Logger
}

// NewMaintenance creates the purge job. The schedule uses standard cron
// syntax, e.g. "@hourly".
func NewMaintenance(store *Store, schedule string, log zerolog.Logger) *Maintenance {
	return &Maintenance{
		store:    store,
		cron:     cron.New(),
		schedule: schedule,
		log:      log.With().Str("component", "cache_maintenance").Logger(),
	}
}

// Start purges once, then registers and starts the purge schedule. The
// immediate pass keeps short-lived processes from accumulating expired rows
// the schedule never gets to see.
func (m *Maintenance) Start() error {
	if _, err := m.cron.AddFunc(m.schedule, m.purge); err != nil {
		return err
	}
	m.purge()
	m.cron.Start()
	m.log.Info().Str("schedule", m.schedule).Msg("Cache maintenance started")
	return nil
}

// Stop stops the schedule, waiting for a running purge to finish.
func (m *Maintenance) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info().Msg("Cache maintenance stopped")
}

func (m *Maintenance) purge() {
	removed, err := m.store.Purge()
	if err != nil {
		m.log.Error().Err(err).Msg("Cache purge failed")
		return
	}
	if removed > 0 {
		m.log.Debug().Int64("removed", removed).Msg("Purged expired cache rows")
	}
}
