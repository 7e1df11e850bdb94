package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// UserProfile is an admin-panel account
type UserProfile struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(150)"`
	Role         UserRole  `gorm:"type:varchar(20);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null"`
	LastLoginAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
