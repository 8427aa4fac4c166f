package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/onehealthlab/evidence-map/internal/platform/logger"
	"github.com/onehealthlab/evidence-map/internal/types"
)

// SQLiteService owns the in-memory database holding the long-form table.
// The table is filled once at startup and read-only afterwards; nothing is
// persisted across runs.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(log *logger.Logger, dsn string) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		serviceLog.Error("Failed to open sqlite", "error", err, "dsn", dsn)
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// An in-memory sqlite database lives only as long as a connection to it;
	// pin the pool to a single connection so the data survives idle periods.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	serviceLog.Info("sqlite ready", "dsn", dsn)
	return &SQLiteService{db: gdb, log: serviceLog}, nil
}

func (s *SQLiteService) DB() *gorm.DB { return s.db }

func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating sqlite tables...")
	if err := s.db.AutoMigrate(&types.Article{}); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
