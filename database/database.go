package database

import (
	"fmt"

	"github.com/lshigami/Tarsius/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the sqlite database backing the key-value store.
// An empty path opens a shared in-memory database so the service can run
// without any local state (useful for demos and tests).
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.Path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
		log.Warn().Msg("No database path configured, using in-memory storage")
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %q: %w", dsn, err)
	}

	log.Info().Str("dsn", dsn).Msg("Database connection established")
	return db, nil
}
