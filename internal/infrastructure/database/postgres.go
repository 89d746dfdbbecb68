package database

import (
	"fmt"

	"github.com/kamalkharel2002/trackship/internal/infrastructure/repositories"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a new database connection. TranslateError is on so unique
// violations come back as gorm.ErrDuplicatedKey instead of a raw pg error.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for the auth tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	if err := db.AutoMigrate(&repositories.DBRefreshToken{}); err != nil {
		return fmt.Errorf("failed to migrate refresh_tokens table: %w", err)
	}
	return nil
}
