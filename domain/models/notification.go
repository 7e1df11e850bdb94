package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationContact      NotificationType = "contact"
	NotificationSystem       NotificationType = "system"
	NotificationAnnouncement NotificationType = "announcement"
)

// Notification is an item in the admin panel inbox
type Notification struct {
	ID      uuid.UUID        `gorm:"primaryKey;type:uuid"`
	Type    NotificationType `gorm:"type:varchar(30);not null;index"`
	Title   string           `gorm:"type:varchar(200);not null"`
	Message string           `gorm:"type:text"`
	Link    string           `gorm:"type:text"`
	IsRead  bool             `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"index"`
}

func (Notification) TableName() string {
	return "notifications"
}
