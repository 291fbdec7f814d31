package models

import "time"

// LegacyKey is the server-side copy of a key that was created by the
// single-device build, registered once so it can be recovered later.
// There is at most one record per user.
type LegacyKey struct {
	UserID        int64     `json:"user_id"`
	EncryptionKey string    `json:"encryption_key"`
	LegacyEmail   string    `json:"legacy_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the LegacyKey model.
func (l LegacyKey) TableName() string {
	return "encryption_legacy"
}
