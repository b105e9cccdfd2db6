package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course is owned by exactly one instructor. Rating, TotalRatings and
// TotalEnrollments are derived counters maintained by the review and
// enrollment handlers.
type Course struct {
	ID               string         `json:"id" gorm:"primaryKey"`
	Title            string         `json:"title"`
	Description      string         `json:"description" gorm:"type:text"`
	Category         string         `json:"category"`
	Language         string         `json:"language"`
	InstructorID     string         `json:"instructor_id" gorm:"index;not null"`
	InstructorName   string         `json:"instructor_name"`
	Thumbnail        string         `json:"thumbnail"`
	IntroVideo       string         `json:"intro_video"`
	Syllabus         string         `json:"syllabus" gorm:"type:text"`
	Price            float64        `json:"price" gorm:"default:0"`
	Rating           float64        `json:"rating" gorm:"default:0"`
	TotalRatings     int            `json:"total_ratings" gorm:"default:0"`
	Level            string         `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Duration         string         `json:"duration" gorm:"default:'4 weeks'"`
	Tags             datatypes.JSON `json:"tags"`
	Prerequisites    datatypes.JSON `json:"prerequisites"`
	TotalEnrollments int            `json:"total_enrollments" gorm:"default:0"`
	CreatedAt        time.Time      `json:"created_at"`
}
