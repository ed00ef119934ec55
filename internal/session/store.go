package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"plutusgrip-client/internal/models"
	"plutusgrip-client/internal/storage"
)

// Store is the persistent session state shared by every part of the
// client: access token, refresh token and the cached user record.
//
// The in-memory fields are advisory mirrors only. The authoritative value
// is always re-read from the backing repository on each access, so a
// login flow writing new tokens is never shadowed by a stale cached nil.
type Store struct {
	repo   storage.CredentialRepositoryInterface
	cipher *Cipher
	logger *slog.Logger

	mu              sync.Mutex
	mirroredAccess  string
	mirroredRefresh string
}

// NewStore builds a session store over repo. A non-empty passphrase turns
// on at-rest encryption; the scrypt salt is created on first use and kept
// in the store itself. Inconsistent persisted state (a user record
// without an access token) is repaired by clearing everything.
func NewStore(repo storage.CredentialRepositoryInterface, passphrase string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		repo:   repo,
		logger: logger,
	}

	if passphrase != "" {
		salt, err := s.loadOrCreateSalt()
		if err != nil {
			return nil, err
		}
		s.cipher, err = NewCipher(passphrase, salt)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repairInconsistentState(); err != nil {
		return nil, err
	}

	return s, nil
}

// AccessToken returns the current access token, or "" when absent.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.read(models.CredentialKeyAccessToken)
	if token != s.mirroredAccess {
		s.mirroredAccess = token
		s.logger.Debug("access token refreshed from store")
	}
	return token
}

// RefreshToken returns the current refresh token, or "" when absent.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.read(models.CredentialKeyRefreshToken)
	if token != s.mirroredRefresh {
		s.mirroredRefresh = token
		s.logger.Debug("refresh token refreshed from store")
	}
	return token
}

// SetTokens persists both tokens. Both writes complete before any
// subsequent request reads them.
func (s *Store) SetTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(models.CredentialKeyAccessToken, accessToken); err != nil {
		return err
	}
	if err := s.write(models.CredentialKeyRefreshToken, refreshToken); err != nil {
		return err
	}

	s.mirroredAccess = accessToken
	s.mirroredRefresh = refreshToken
	return nil
}

// SetAccessToken persists a renewed access token. The refresh token is
// not rotated by the backend and stays untouched.
func (s *Store) SetAccessToken(accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(models.CredentialKeyAccessToken, accessToken); err != nil {
		return err
	}
	s.mirroredAccess = accessToken
	return nil
}

// ClearTokens removes both tokens and the user record. This is the single
// choke point for logout and forced re-authentication.
func (s *Store) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *Store) clearLocked() error {
	err := s.repo.Delete(
		models.CredentialKeyAccessToken,
		models.CredentialKeyRefreshToken,
		models.CredentialKeyUser,
	)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mirroredAccess = ""
	s.mirroredRefresh = ""
	s.logger.Debug("session cleared")
	return nil
}

// User returns the cached user record, or nil when absent. A record that
// no longer parses is treated as absence: the whole session is cleared
// and the client falls back to unauthenticated.
func (s *Store) User() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.read(models.CredentialKeyUser)
	if raw == "" {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("corrupted user record, clearing session", "error", err)
		if clearErr := s.clearLocked(); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}

	return &user, nil
}

// SetUser persists the user record.
func (s *Store) SetUser(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(models.CredentialKeyUser, string(data))
}

// IsAuthenticated reports whether an access token is present in
// persistent storage at the time of the check.
func (s *Store) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// read returns the decrypted value for key, or "" when the key is absent
// or unreadable.
func (s *Store) read(key string) string {
	value, err := s.repo.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrCredentialNotFound) {
			s.logger.Warn("failed to read credential", "key", key, "error", err)
		}
		return ""
	}

	if s.cipher != nil {
		plaintext, err := s.cipher.Decrypt(value)
		if err != nil {
			s.logger.Warn("failed to decrypt credential", "key", key, "error", err)
			return ""
		}
		return plaintext
	}

	return value
}

func (s *Store) write(key, value string) error {
	if s.cipher != nil {
		sealed, err := s.cipher.Encrypt(value)
		if err != nil {
			return fmt.Errorf("failed to encrypt credential %q: %w", key, err)
		}
		value = sealed
	}
	return s.repo.Set(key, value)
}

// loadOrCreateSalt reads the key-derivation salt, generating and
// persisting one on first use. The salt is stored unencrypted.
func (s *Store) loadOrCreateSalt() ([]byte, error) {
	encoded, err := s.repo.Get(models.CredentialKeySalt)
	if err == nil {
		salt, decodeErr := base64.StdEncoding.DecodeString(encoded)
		if decodeErr != nil {
			return nil, fmt.Errorf("corrupted store salt: %w", decodeErr)
		}
		return salt, nil
	}
	if !errors.Is(err, storage.ErrCredentialNotFound) {
		return nil, err
	}

	salt, err := NewSalt()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Set(models.CredentialKeySalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, err
	}
	return salt, nil
}

// repairInconsistentState enforces the invariant that a persisted user
// record implies an access token.
func (s *Store) repairInconsistentState() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.read(models.CredentialKeyUser) != "" && s.read(models.CredentialKeyAccessToken) == "" {
		s.logger.Warn("user record present without access token, clearing session")
		return s.clearLocked()
	}
	return nil
}
