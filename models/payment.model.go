package models

import "time"

// Payment is an append-only record; nothing ever updates one.
type Payment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type" gorm:"default:'course'"`      // course, subscription
	Status    string    `json:"status" gorm:"default:'completed'"` // completed, pending, failed
	CreatedAt time.Time `json:"created_at"`
}
