package session

import "plutusgrip-client/internal/models"

// StoreInterface is the session-state contract the API client depends on.
// Getters are read-through: every call consults persistent storage, never
// the in-memory mirror alone.
type StoreInterface interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(accessToken, refreshToken string) error
	SetAccessToken(accessToken string) error
	ClearTokens() error
	User() (*models.User, error)
	SetUser(user *models.User) error
	IsAuthenticated() bool
}
