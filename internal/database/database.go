package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lus-labeler-backend/internal/config"
	"lus-labeler-backend/internal/models"
)

// InitDB opens the database connection and creates missing tables.
func InitDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The patients table is migrated but not served by any endpoint yet.
	if err := db.AutoMigrate(&models.Patient{}, &models.HistoryEntry{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Successfully connected to the database")
	return db, nil
}
