package cache

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihira/jyotish/internal/engine"
)

func TestMaintenancePurgesOnStart(t *testing.T) {
	store, err := NewStore(testDB(t), -time.Hour, zerolog.Nop())
	require.NoError(t, err)

	eng := testEngine()
	moment := testMoment(t)
	k, err := eng.Compute(moment, engine.Options{})
	require.NoError(t, err)

	// A negative TTL makes the row expired the moment it lands.
	require.NoError(t, store.Put(Key(moment, engine.Options{}), k))

	m := NewMaintenance(store, "@hourly", zerolog.Nop())
	require.NoError(t, m.Start())
	m.Stop()

	// Start already swept the expired row; a second purge finds nothing.
	removed, err := store.Purge()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestMaintenanceRejectsBadSchedule(t *testing.T) {
	store, err := NewStore(testDB(t), time.Hour, zerolog.Nop())
	require.NoError(t, err)

	m := NewMaintenance(store, "not a schedule", zerolog.Nop())
	assert.Error(t, m.Start())
}
