// Package cache layers a read-through kundli cache over the engine. The
// engine itself stays cache-agnostic: identical inputs always produce an
// equivalent Kundli, so serving a stored copy is indistinguishable from
// recomputing, apart from the correlation id.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mihira/jyotish/internal/database"
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/engine"
)

// Store persists msgpack-encoded kundlis keyed by the canonical input hash.
type Store struct {
	db  *database.DB
	ttl time.Duration
	log zerolog.Logger
}

// NewStore creates the store and its table.
func NewStore(db *database.DB, ttl time.Duration, log zerolog.Logger) (*Store, error) {
	s := &Store{
		db:  db,
		ttl: ttl,
		log: log.With().Str("component", "cache").Logger(),
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kundli_cache (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		)`); err != nil {
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	return s, nil
}

// Key builds the canonical cache key: SHA-256 over the UTC instant, the
// coordinates at fixed precision and every option that changes the output.
func Key(moment domain.BirthMoment, opts engine.Options) string {
	vargas := append([]int(nil), opts.Vargas...)
	sort.Ints(vargas)
	parts := make([]string, 0, len(vargas))
	for _, n := range vargas {
		parts = append(parts, strconv.Itoa(n))
	}

	canonical := fmt.Sprintf("%s|%.6f|%.6f|%s|%s|%s|%s|%.2f",
		moment.UTC().Format(time.RFC3339Nano),
		moment.Latitude,
		moment.Longitude,
		opts.Ayanamsa,
		opts.HouseSystem,
		opts.NodeMode,
		strings.Join(parts, ","),
		opts.HorizonYears,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached kundli for the key, or nil on a miss. Expired rows
// are misses; the maintenance job removes them.
func (s *Store) Get(key string) (*engine.Kundli, error) {
	var blob []byte
	err := s.db.QueryRow(
		`SELECT value FROM kundli_cache WHERE key = ? AND expires_at > ?`,
		key, time.Now().Unix(),
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache row: %w", err)
	}

	var k engine.Kundli
	if err := msgpack.Unmarshal(blob, &k); err != nil {
		return nil, fmt.Errorf("failed to decode cached kundli: %w", err)
	}
	return &k, nil
}

// Put stores a kundli under the key with the store's TTL.
func (s *Store) Put(key string, k *engine.Kundli) error {
	blob, err := msgpack.Marshal(k)
	if err != nil {
		return fmt.Errorf("failed to encode kundli: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO kundli_cache (key, value, expires_at) VALUES (?, ?, ?)`,
		key, blob, time.Now().Add(s.ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache row: %w", err)
	}
	return nil
}

// Purge deletes expired rows and returns how many were removed.
func (s *Store) Purge() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM kundli_cache WHERE expires_at <= ?`, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	return res.RowsAffected()
}
