package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finance-manager-be/models"
)

// Connect opens the Postgres database and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	if !strings.Contains(dsn, "sslmode") {
		dsn += "?sslmode=require"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all entities. Exposed separately
// so tests can migrate an in-memory database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Budget{},
		&models.BudgetCategory{},
		&models.Transaction{},
		&models.Income{},
		&models.Expense{},
		&models.Goal{},
		&models.Reminder{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
