package dto

import (
	"math"
	"time"

	"school-cms/domain/models"
	"school-cms/domain/validation"
	"school-cms/pkg/dates"
)

func NewsToResponse(news *models.News, now time.Time) NewsResponse {
	return NewsResponse{
		ID:                   news.ID,
		Title:                news.Title,
		Slug:                 news.Slug,
		Content:              news.Content,
		Excerpt:              news.Excerpt,
		FeaturedImage:        news.FeaturedImage,
		Category:             news.Category,
		Author:               news.Author,
		ReadingTime:          news.ReadingTime,
		Status:               string(news.Status),
		PublishedAt:          news.PublishedAt,
		PublishedAtFormatted: dates.FormatPtr(news.PublishedAt),
		PublishedRelative:    dates.RelativePtr(news.PublishedAt, now),
		ViewCount:            news.ViewCount,
		CreatedAt:            news.CreatedAt,
		UpdatedAt:            news.UpdatedAt,
	}
}

func NewsListToResponse(items []models.News, now time.Time) []NewsResponse {
	out := make([]NewsResponse, len(items))
	for i := range items {
		out[i] = NewsToResponse(&items[i], now)
	}
	return out
}

// AnnouncementToResponse takes the badge class and notification flag from the caller's service
func AnnouncementToResponse(a *models.Announcement, badgeClass string, showAsNotification bool, now time.Time) AnnouncementResponse {
	return AnnouncementResponse{
		ID:                   a.ID,
		Title:                a.Title,
		Slug:                 a.Slug,
		Content:              a.Content,
		Excerpt:              a.Excerpt,
		FeaturedImage:        a.FeaturedImage,
		Priority:             string(a.Priority),
		PriorityBadgeClass:   badgeClass,
		ShowAsNotification:   showAsNotification,
		Status:               string(a.Status),
		PublishedAt:          a.PublishedAt,
		PublishedAtFormatted: dates.FormatPtr(a.PublishedAt),
		PublishedRelative:    dates.RelativePtr(a.PublishedAt, now),
		ViewCount:            a.ViewCount,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func CreateNewsRequestToNews(req *CreateNewsRequest) *models.News {
	news := &models.News{
		BaseContent: models.BaseContent{
			Title:         req.Title,
			Content:       req.Content,
			Excerpt:       req.Excerpt,
			FeaturedImage: req.FeaturedImage,
			Status:        models.ContentStatus(req.Status),
			PublishedAt:   req.PublishedAt,
		},
		Category: req.Category,
		Author:   req.Author,
	}
	if req.ReadingTime != nil {
		news.ReadingTime = *req.ReadingTime
	}
	return news
}

func CreateAnnouncementRequestToAnnouncement(req *CreateAnnouncementRequest) *models.Announcement {
	priority := models.AnnouncementPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityNormal
	}
	return &models.Announcement{
		BaseContent: models.BaseContent{
			Title:         req.Title,
			Content:       req.Content,
			Excerpt:       req.Excerpt,
			FeaturedImage: req.FeaturedImage,
			Status:        models.ContentStatus(req.Status),
			PublishedAt:   req.PublishedAt,
		},
		Priority: priority,
	}
}

func UserToResponse(user *models.UserProfile) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

func CategoryToResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
	}
}

func SliderToResponse(s *models.SliderImage) SliderResponse {
	return SliderResponse{
		ID:        s.ID,
		Title:     s.Title,
		Subtitle:  s.Subtitle,
		ImageURL:  s.ImageURL,
		LinkURL:   s.LinkURL,
		SortOrder: s.SortOrder,
		IsActive:  s.IsActive,
	}
}

func SliderListToResponse(items []models.SliderImage) []SliderResponse {
	out := make([]SliderResponse, len(items))
	for i := range items {
		out[i] = SliderToResponse(&items[i])
	}
	return out
}

func NotificationToResponse(n *models.Notification, now time.Time) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		Link:         n.Link,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
		RelativeTime: dates.RelativeTime(n.CreatedAt, now),
	}
}

// updateColumns maps camelCase request keys to column names. Keys not listed
// pass through unchanged and are dropped later by the repository allow-list.
var updateColumns = map[string]string{
	"featuredImage": "featured_image",
	"publishedAt":   "published_at",
	"readingTime":   "reading_time",
}

// UpdateRequestToUpdates converts a decoded JSON patch body into column updates.
// publishedAt must be RFC 3339 or null; whole JSON numbers become ints.
func UpdateRequestToUpdates(body map[string]interface{}) (validation.Updates, error) {
	updates := make(validation.Updates, len(body))
	for key, value := range body {
		column, ok := updateColumns[key]
		if !ok {
			column = key
		}

		switch v := value.(type) {
		case float64:
			if v == math.Trunc(v) {
				value = int(v)
			}
		case string:
			if column == "published_at" {
				if v == "" {
					value = nil
					break
				}
				parsed, err := time.Parse(time.RFC3339, v)
				if err != nil {
					return nil, &validation.Error{Messages: []string{"publishedAt must be an RFC 3339 timestamp"}}
				}
				value = parsed
			}
		}
		updates[column] = value
	}
	return updates, nil
}
