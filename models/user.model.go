package models

import "time"

// Roles a user may hold
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture"`
	PasswordHash string    `json:"-"` // never serialized
	Role         string    `json:"role" gorm:"default:'student'"`
	CreatedAt    time.Time `json:"created_at"`
}
