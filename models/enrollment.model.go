package models

import "time"

// Enrollment tracks a user's registration in a course with a progress
// percentage. The composite unique index backs up the handler's duplicate
// pre-check at the store level.
type Enrollment struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	UserID              string    `json:"user_id" gorm:"index:idx_enrollments_user_course,unique;not null"`
	CourseID            string    `json:"course_id" gorm:"index:idx_enrollments_user_course,unique;not null"`
	Progress            float64   `json:"progress" gorm:"default:0"` // percentage (0-100)
	LastWatchedLessonID string    `json:"last_watched_lesson_id"`
	EnrolledAt          time.Time `json:"enrolled_at"`
}
