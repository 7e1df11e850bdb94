package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxPageViewIPLength        = 45
	MaxPageViewUserAgentLength = 500
)

// PageView is the raw log row written for every counted view
type PageView struct {
	ID          uuid.UUID   `gorm:"primaryKey;type:uuid"`
	ContentType ContentType `gorm:"type:varchar(20);not null;index:idx_page_views_content"`
	ContentID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_page_views_content"`
	IPAddress   string      `gorm:"type:varchar(45)"`
	UserAgent   string      `gorm:"type:varchar(500)"`
	ViewedAt    time.Time   `gorm:"not null;index"`
}

func (PageView) TableName() string {
	return "page_views"
}

// ViewStats aggregates page views of one content row
type ViewStats struct {
	ContentType ContentType
	ContentID   uuid.UUID
	Views       int64
}
