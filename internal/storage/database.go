package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"plutusgrip-client/internal/config"
	"plutusgrip-client/internal/models"
)

// DB wraps the local sqlite database holding the persisted session state.
type DB struct {
	*gorm.DB
	config *config.StorageConfig
}

// Open opens (creating if necessary) the credential database at the
// configured path and migrates its schema.
func Open(cfg *config.StorageConfig) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	store := &DB{
		DB:     db,
		config: cfg,
	}

	if err := store.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate credential store: %w", err)
	}

	return store, nil
}

// AutoMigrate creates or updates the credential schema.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.CredentialRecord{},
	)
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
