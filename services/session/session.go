// Package session manages opaque server-side session tokens. Tokens live
// for seven days; expiry is evaluated lazily on every resolve, never by a
// background sweep.
package session

import (
	"log"
	"time"

	"padho/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenTTL is how long a freshly minted session stays valid.
const TokenTTL = 7 * 24 * time.Hour

// Create mints a new random session token for the user and persists it.
func Create(db *gorm.DB, userID string) (*models.UserSession, error) {
	return CreateWithToken(db, userID, uuid.NewString())
}

// CreateWithToken persists a session bound to a caller-supplied token value
// (the identity-provider flow hands us the token to use).
func CreateWithToken(db *gorm.DB, userID, token string) (*models.UserSession, error) {
	s := &models.UserSession{
		ID:           uuid.NewString(),
		UserID:       userID,
		SessionToken: token,
		ExpiresAt:    time.Now().UTC().Add(TokenTTL),
		CreatedAt:    time.Now().UTC(),
	}

	if err := db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// Resolve looks a token up and returns its user. Returns nil when the
// session is absent or expired, or when the user record has been deleted
// since the session was created (fails closed).
func Resolve(db *gorm.DB, token string) *models.User {
	var s models.UserSession
	if err := db.Where("session_token = ?", token).First(&s).Error; err != nil {
		return nil
	}

	if !time.Now().UTC().Before(s.ExpiresAt) {
		return nil
	}

	var user models.User
	if err := db.Where("id = ?", s.UserID).First(&user).Error; err != nil {
		return nil
	}

	return &user
}

// Revoke deletes the session record; no-op if the token is unknown.
func Revoke(db *gorm.DB, token string) {
	if err := db.Where("session_token = ?", token).Delete(&models.UserSession{}).Error; err != nil {
		log.Printf("Error revoking session: %v", err)
	}
}
