package history

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN keeps the history in memory for the lifetime of the process
const DefaultDSN = "file::memory:?cache=shared"

// Run is one finished run
type Run struct {
	gorm.Model
	Vehicle  string `gorm:"index"`
	Reason   string
	Distance int
	Coins    int
	TopSpeed int
	Score    int `gorm:"index"`
	Ticks    uint64
	Upgrades datatypes.JSONType[vehicle.Upgrades]
}

// Store records finished runs in SQLite
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the database and migrates the schema
func Open(dsn string, log zerolog.Logger) (*Store, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("set %q: %w", pragma, err)
		}
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	log = log.With().Str("component", "history").Logger()
	log.Debug().Str("dsn", dsn).Msg("history store ready")
	return &Store{db: db, log: log}, nil
}

// Record saves a finished run together with the upgrade levels it was driven with
func (s *Store) Record(sum sim.Summary, levels vehicle.Upgrades) (*Run, error) {
	run := &Run{
		Vehicle:  string(sum.Vehicle),
		Reason:   string(sum.Reason),
		Distance: sum.Distance,
		Coins:    sum.Coins,
		TopSpeed: sum.TopSpeed,
		Score:    sum.Score,
		Ticks:    sum.Ticks,
		Upgrades: datatypes.NewJSONType(levels),
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// Best returns the highest scoring runs, best first
func (s *Store) Best(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("score DESC").Order("id ASC").Limit(limit).Find(&runs).Error
	return runs, err
}

// Recent returns the latest runs, newest first
func (s *Store) Recent(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("id DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

// BestFor returns the best run with the given vehicle, or nil if it was never driven
func (s *Store) BestFor(id vehicle.ID) (*Run, error) {
	var run Run
	err := s.db.Where("vehicle = ?", string(id)).Order("score DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Count returns the number of recorded runs
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&Run{}).Count(&n).Error
	return n, err
}

// Close releases the underlying connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Tracker records every run the simulation ends
type Tracker struct {
	sim.NopObserver
	store  *Store
	levels func() vehicle.Upgrades
}

// NewTracker creates an observer that writes to store. levels reports the
// upgrade levels in effect for the run.
func NewTracker(store *Store, levels func() vehicle.Upgrades) *Tracker {
	return &Tracker{store: store, levels: levels}
}

func (t *Tracker) OnRunEnded(sum sim.Summary) {
	levels := vehicle.BaseUpgrades()
	if t.levels != nil {
		levels = t.levels()
	}
	if _, err := t.store.Record(sum, levels); err != nil {
		t.store.log.Error().Err(err).Msg("failed to record run")
	}
}
