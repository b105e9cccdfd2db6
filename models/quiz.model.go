package models

import (
	"time"

	"gorm.io/datatypes"
)

type Quiz struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	CourseID        string    `json:"course_id" gorm:"index"`
	Title           string    `json:"title"`
	Duration        int       `json:"duration" gorm:"default:30"` // minutes
	TotalMarks      int       `json:"total_marks" gorm:"default:100"`
	NegativeMarking bool      `json:"negative_marking" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
}

type Question struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	QuizID        string         `json:"quiz_id" gorm:"index;not null"`
	QuestionText  string         `json:"question_text" gorm:"type:text"`
	Type          string         `json:"type" gorm:"default:'mcq'"` // mcq, true_false, fill_blank
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `json:"correct_answer,omitempty"`
	Marks         int            `json:"marks" gorm:"default:1"`
}

// QuizResult is immutable once written; every submission creates a new row.
type QuizResult struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	UserID      string         `json:"user_id" gorm:"index;not null"`
	QuizID      string         `json:"quiz_id" gorm:"index;not null"`
	Score       float64        `json:"score"`
	Answers     datatypes.JSON `json:"answers"` // question id -> submitted answer
	CompletedAt time.Time      `json:"completed_at"`
}
