package storage

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"plutusgrip-client/internal/config"
)

// SetupTestDB opens an in-memory credential store for tests.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to open test credential store: %v", err)
	}

	testDB := &DB{
		DB:     db,
		config: &config.StorageConfig{},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test credential store: %v", err)
	}

	return testDB
}
