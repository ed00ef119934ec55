package models

import "time"

// Credential store keys. The trio mirrors what the web client keeps in
// browser storage; is_consistent over them means "user implies
// access_token".
const (
	CredentialKeyAccessToken  = "access_token"
	CredentialKeyRefreshToken = "refresh_token"
	CredentialKeyUser         = "user"
	CredentialKeySalt         = "store_salt"
)

// CredentialRecord is one persisted key-value pair of the local session
// store.
type CredentialRecord struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName overrides the default gorm table name.
func (CredentialRecord) TableName() string {
	return "credentials"
}
