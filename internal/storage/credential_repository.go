package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plutusgrip-client/internal/models"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
)

// CredentialRepositoryInterface defines the persistence contract of the
// session store. It is deliberately a plain key-value surface: the
// read-through semantics live one layer up in the session package.
type CredentialRepositoryInterface interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(keys ...string) error
}

// CredentialRepository handles database operations for credential records
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &CredentialRepository{
		db: db,
	}
}

// Get retrieves the value stored under key
func (r *CredentialRepository) Get(key string) (string, error) {
	record := &models.CredentialRecord{}
	if err := r.db.First(record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCredentialNotFound
		}
		return "", fmt.Errorf("failed to read credential %q: %w", key, err)
	}

	return record.Value, nil
}

// Set stores value under key, replacing any previous value
func (r *CredentialRepository) Set(key, value string) error {
	record := &models.CredentialRecord{
		Key:   key,
		Value: value,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to write credential %q: %w", key, err)
	}

	return nil
}

// Delete removes the given keys in a single transaction. Missing keys are
// not an error.
func (r *CredentialRepository) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := r.db.Where("key IN ?", keys).Delete(&models.CredentialRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}

	return nil
}
