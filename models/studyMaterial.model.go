package models

import (
	"time"

	"gorm.io/datatypes"
)

type StudyMaterial struct {
	ID               string         `json:"id" gorm:"primaryKey"`
	Title            string         `json:"title"`
	FileURL          string         `json:"file_url"`
	Category         string         `json:"category"`
	Tags             datatypes.JSON `json:"tags"`
	Chapter          string         `json:"chapter"`
	UploadedBy       string         `json:"uploaded_by" gorm:"index"`
	PreviewAvailable bool           `json:"preview_available" gorm:"default:false"`
	Downloads        int            `json:"downloads" gorm:"default:0"`
	CreatedAt        time.Time      `json:"created_at"`
}
