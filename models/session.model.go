package models

import "time"

// UserSession is an opaque server-side session token. A session is valid
// while now < ExpiresAt; expired rows stay behind until a logout deletes
// them, expiry is only ever checked at read time.
type UserSession struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	SessionToken string    `json:"session_token" gorm:"uniqueIndex;not null"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
