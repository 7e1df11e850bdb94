package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateNewsRequest is the admin payload for a new article. Content rules are
// enforced by the repository validator.
type CreateNewsRequest struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featuredImage" validate:"omitempty,max=2048"`
	Category      string     `json:"category"`
	Author        string     `json:"author" validate:"max=150"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"publishedAt"`
	ReadingTime   *int       `json:"readingTime" validate:"omitempty,min=0"`
}

type CreateAnnouncementRequest struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featuredImage" validate:"omitempty,max=2048"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

type NewsResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Content              string     `json:"content"`
	Excerpt              string     `json:"excerpt"`
	FeaturedImage        string     `json:"featuredImage"`
	Category             string     `json:"category"`
	Author               string     `json:"author"`
	ReadingTime          int        `json:"readingTime"`
	Status               string     `json:"status"`
	PublishedAt          *time.Time `json:"publishedAt"`
	PublishedAtFormatted string     `json:"publishedAtFormatted"`
	PublishedRelative    string     `json:"publishedRelative"`
	ViewCount            int64      `json:"viewCount"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type AnnouncementResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Content              string     `json:"content"`
	Excerpt              string     `json:"excerpt"`
	FeaturedImage        string     `json:"featuredImage"`
	Priority             string     `json:"priority"`
	PriorityBadgeClass   string     `json:"priorityBadgeClass"`
	ShowAsNotification   bool       `json:"showAsNotification"`
	Status               string     `json:"status"`
	PublishedAt          *time.Time `json:"publishedAt"`
	PublishedAtFormatted string     `json:"publishedAtFormatted"`
	PublishedRelative    string     `json:"publishedRelative"`
	ViewCount            int64      `json:"viewCount"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// TrackViewRequest is the body of POST /api/track-view
type TrackViewRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type TrackViewResponse struct {
	Success      bool   `json:"success"`
	NewViewCount int64  `json:"newViewCount"`
	Message      string `json:"message"`
}

type TrackViewErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type TrackViewHealthResponse struct {
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Error     string     `json:"error,omitempty"`
}
