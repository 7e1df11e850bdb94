package models

import (
	"time"

	"github.com/google/uuid"
)

// SliderImage is one slide of the homepage carousel
type SliderImage struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title     string    `gorm:"type:varchar(200)"`
	Subtitle  string    `gorm:"type:varchar(300)"`
	ImageURL  string    `gorm:"type:text;not null"`
	LinkURL   string    `gorm:"type:text"`
	SortOrder int       `gorm:"not null;default:0;index"`
	IsActive  bool      `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SliderImage) TableName() string {
	return "slider_images"
}
