package models

import "time"

// Review holds one rating per (user, course); the unique index closes the
// race the duplicate pre-check alone would leave open.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"index:idx_reviews_user_course,unique;not null"`
	UserID    string    `json:"user_id" gorm:"index:idx_reviews_user_course,unique;not null"`
	UserName  string    `json:"user_name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
