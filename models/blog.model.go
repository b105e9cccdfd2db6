package models

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title"`
	Content     string         `json:"content" gorm:"type:text"`
	AuthorID    string         `json:"author_id" gorm:"index;not null"`
	AuthorName  string         `json:"author_name"`
	Tags        datatypes.JSON `json:"tags"`
	PublishedAt time.Time      `json:"published_at"`
}
