package models

import (
	"time"

	"github.com/google/uuid"
)

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

func (s ContentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ContentType names the two kinds of content rows that carry view counts
type ContentType string

const (
	ContentTypeNews         ContentType = "news"
	ContentTypeAnnouncement ContentType = "announcement"
)

func (t ContentType) IsValid() bool {
	return t == ContentTypeNews || t == ContentTypeAnnouncement
}

// BaseContent holds the columns shared by every content table.
// Slug is derived from Title at creation and never updated afterwards.
type BaseContent struct {
	ID            uuid.UUID     `gorm:"primaryKey;type:uuid"`
	Title         string        `gorm:"type:varchar(200);not null"`
	Slug          string        `gorm:"type:varchar(120);not null;uniqueIndex"`
	Content       string        `gorm:"type:text;not null"`
	Excerpt       string        `gorm:"type:text"`
	FeaturedImage string        `gorm:"type:text"`
	Status        ContentStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishedAt   *time.Time    `gorm:"index"`
	ViewCount     int64         `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (b *BaseContent) GetBase() *BaseContent {
	return b
}

func (b *BaseContent) IsPublished() bool {
	return b.Status == StatusPublished && b.PublishedAt != nil
}

// ContentEntity is implemented by pointers to every content model.
type ContentEntity interface {
	TableName() string
	GetBase() *BaseContent
	ContentType() ContentType

	// ValidateEntity reports entity-specific create rules
	ValidateEntity() []string

	// ValidateEntityUpdate reports entity-specific rules for the keys present in a partial update
	ValidateEntityUpdate(updates map[string]interface{}) []string
}
