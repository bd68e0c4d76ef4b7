package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"vitatrack/internal/models"
)

// Open connects to the configured database and runs migrations.
// Supported dialects: sqlite3 and postgres.
func Open(dialect, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all tracked entities.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Evaluation{},
		&models.Exercise{},
		&models.Food{},
		&models.NutritionPlan{},
		&models.WorkoutPlan{},
		&models.ProgressEntry{},
		&models.WaterIntake{},
		&models.ChatMessage{},
		&models.Notification{},
		&models.ForumPost{},
		&models.HealthMetric{},
		&models.PatternAlert{},
	).Error
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
