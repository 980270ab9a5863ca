package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/twofasvc/internal/infrastructure/repositories"
)

// Open creates a database connection for the configured driver. SQLite is
// the default for local development (the DSN is a file path); Postgres for
// production. TranslateError is required so unique-index violations surface
// as gorm.ErrDuplicatedKey regardless of driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), config)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(dsn), config)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// AutoMigrate performs database migration for all required tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}
