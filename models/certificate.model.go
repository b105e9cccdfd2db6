package models

import "time"

// Certificate is issued once a user's enrollment progress reaches 100.
type Certificate struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"index:idx_certificates_user_course,unique;not null"`
	CourseID       string    `json:"course_id" gorm:"index:idx_certificates_user_course,unique;not null"`
	CourseTitle    string    `json:"course_title"`
	CertificateURL string    `json:"certificate_url"`
	IssuedAt       time.Time `json:"issued_at"`
}
