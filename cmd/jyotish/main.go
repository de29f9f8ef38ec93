// Command jyotish computes sidereal birth charts, divisional charts, dasha
// timelines, panchang and yoga/dosha detection from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mihira/jyotish/internal/cache"
	"github.com/mihira/jyotish/internal/chart"
	"github.com/mihira/jyotish/internal/config"
	"github.com/mihira/jyotish/internal/database"
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/engine"
	"github.com/mihira/jyotish/internal/ephemeris"
	"github.com/mihira/jyotish/pkg/logger"
)

var (
	flagDatetime string
	flagLat      float64
	flagLon      float64
	flagTimezone string

	flagAyanamsa    string
	flagHouseSystem string
	flagVargas      []int
)

var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Sidereal chart and dasha computation",
	Long:  "jyotish computes Vedic birth charts: placements, divisional charts, Vimshottari dashas, panchang and classical yoga/dosha detection.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatetime, "datetime", "", "birth date and wall-clock time, RFC3339 without offset (e.g. 1976-02-28T03:45:00)")
	rootCmd.PersistentFlags().Float64Var(&flagLat, "lat", 0, "latitude, degrees north")
	rootCmd.PersistentFlags().Float64Var(&flagLon, "lon", 0, "longitude, degrees east")
	rootCmd.PersistentFlags().StringVar(&flagTimezone, "tz", "UTC", "IANA timezone of the birth place (e.g. Asia/Kolkata)")
	rootCmd.PersistentFlags().StringVar(&flagAyanamsa, "ayanamsa", "", "ayanamsa: lahiri, raman or krishnamurti")
	rootCmd.PersistentFlags().StringVar(&flagHouseSystem, "houses", "", "house system: whole_sign, equal or placidus")
	rootCmd.PersistentFlags().IntSliceVar(&flagVargas, "vargas", nil, "divisional charts to compute (e.g. 9,10,60)")
}

// app bundles the wired services for one CLI invocation: the ephemeris-backed
// engine, the read-through kundli cache over it, and the cache maintenance job.
type app struct {
	cfg         *config.Config
	log         zerolog.Logger
	engine      *engine.Service
	kundlis     *cache.Service
	maintenance *cache.Maintenance
	db          *database.DB
}

// setup wires config, logging, the ephemeris-backed engine and the sqlite
// cache around it. Callers must Close the returned app.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.Pretty})

	source := ephemeris.NewMeeusSource(cfg.VSOP87Dir, ephemeris.NodeMode(cfg.NodeMode), log)
	eng := engine.NewService(source, log)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	store, err := cache.NewStore(db, time.Duration(cfg.CacheTTLHours)*time.Hour, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	maintenance := cache.NewMaintenance(store, "@hourly", log)
	if err := maintenance.Start(); err != nil {
		db.Close()
		return nil, err
	}

	return &app{
		cfg:         cfg,
		log:         log,
		engine:      eng,
		kundlis:     cache.NewService(store, eng, log),
		maintenance: maintenance,
		db:          db,
	}, nil
}

// Close stops the maintenance schedule and releases the cache database.
func (a *app) Close() {
	a.maintenance.Stop()
	if err := a.db.Close(); err != nil {
		a.log.Warn().Err(err).Msg("Closing cache database failed")
	}
}

// parseMoment builds the validated birth moment from the shared flags.
func parseMoment() (domain.BirthMoment, error) {
	if flagDatetime == "" {
		return domain.BirthMoment{}, domain.NewInputError("datetime", "required, e.g. --datetime 1976-02-28T03:45:00")
	}
	loc, err := time.LoadLocation(flagTimezone)
	if err != nil {
		return domain.BirthMoment{}, domain.NewInputError("tz", "unknown timezone %q", flagTimezone)
	}
	civil, err := time.ParseInLocation("2006-01-02T15:04:05", flagDatetime, loc)
	if err != nil {
		return domain.BirthMoment{}, domain.NewInputError("datetime", "expected YYYY-MM-DDTHH:MM:SS, got %q", flagDatetime)
	}
	return domain.NewBirthMoment(civil, flagLat, flagLon)
}

// options merges config defaults with flag overrides.
func options(cfg *config.Config) engine.Options {
	opts := engine.Options{
		Ayanamsa:     chart.Ayanamsa(cfg.Ayanamsa),
		HouseSystem:  chart.HouseSystem(cfg.HouseSystem),
		NodeMode:     ephemeris.NodeMode(cfg.NodeMode),
		HorizonYears: float64(cfg.DashaYears),
	}
	if flagAyanamsa != "" {
		opts.Ayanamsa = chart.Ayanamsa(flagAyanamsa)
	}
	if flagHouseSystem != "" {
		opts.HouseSystem = chart.HouseSystem(flagHouseSystem)
	}
	if len(flagVargas) > 0 {
		opts.Vargas = flagVargas
	}
	return opts
}

// compute runs the cached pipeline for the shared flags.
func compute() (*engine.Kundli, error) {
	a, err := setup()
	if err != nil {
		return nil, err
	}
	defer a.Close()

	moment, err := parseMoment()
	if err != nil {
		return nil, err
	}
	return a.kundlis.Compute(moment, options(a.cfg))
}

// emit prints a result as indented JSON.
func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
