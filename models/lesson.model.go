package models

import (
	"time"

	"gorm.io/datatypes"
)

type Lesson struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	CourseID    string         `json:"course_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Description string         `json:"description" gorm:"type:text"`
	VideoURL    string         `json:"video_url"`
	Order       int            `json:"order" gorm:"column:order_index;default:0"`
	Duration    string         `json:"duration" gorm:"default:'10 min'"`
	Resources   datatypes.JSON `json:"resources"`
	CreatedAt   time.Time      `json:"created_at"`
}
