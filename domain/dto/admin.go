package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"fullName" validate:"max=150"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=150"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder" validate:"min=0"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder"`
}

type SliderRequest struct {
	Title    string `json:"title" validate:"max=200"`
	Subtitle string `json:"subtitle" validate:"max=300"`
	ImageURL string `json:"imageUrl" validate:"required,max=2048"`
	LinkURL  string `json:"linkUrl" validate:"omitempty,max=2048"`
	IsActive *bool  `json:"isActive"`
}

type SliderReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type SliderResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"imageUrl"`
	LinkURL   string    `json:"linkUrl"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
}

type NotificationResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Link         string    `json:"link,omitempty"`
	IsRead       bool      `json:"isRead"`
	CreatedAt    time.Time `json:"createdAt"`
	RelativeTime string    `json:"relativeTime"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Unread        int64                  `json:"unread"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ViewStatsResponse struct {
	ContentType string    `json:"contentType"`
	ContentID   uuid.UUID `json:"contentId"`
	Views       int64     `json:"views"`
}

type HomeResponse struct {
	Slides        []SliderResponse       `json:"slides"`
	RecentNews    []NewsResponse         `json:"recentNews"`
	Announcements []AnnouncementResponse `json:"announcements"`
}
