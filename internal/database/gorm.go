package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"techstore/internal/config"
)

// GormStore is the PostgreSQL-backed Store implementation
type GormStore struct {
	db *gorm.DB
}

// NewConnection opens the database connection and configures the pool
func NewConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate runs schema auto-migration for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Product{},
		&PCConfiguration{},
		&PS5Configuration{},
		&Order{},
		&OrderItem{},
		&Repair{},
		&QuoteRequest{},
	)
}

// NewGormStore creates a Store backed by the given gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}
