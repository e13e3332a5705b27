// Package storage implements the persistence gateway on top of GORM.
// It is the only place that talks to durable storage: a dumb store plus
// identifier issuance and reference resolution. Field-level rules are the
// domain validation engine's job, not this package's.
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/insurely/sales-service/internal/platform/config"
)

// Database holds the database connection shared by the entity repositories.
type Database struct {
	db *gorm.DB
}

// Open connects to the configured database, applies the schema, and returns
// the shared handle. Supported drivers: sqlite (local, tests) and postgres.
func Open(cfg *config.StorageConfig) (*Database, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := db.AutoMigrate(&CustomerModel{}, &QuotationModel{}, &SubscriptionModel{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &Database{db: db}, nil
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	return sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (d *Database) Name() string {
	return "storage"
}

// Check implements ports.HealthChecker by pinging the database.
func (d *Database) Check(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	return sqlDB.PingContext(ctx)
}
