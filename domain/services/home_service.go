package services

import (
	"context"

	"school-cms/domain/models"
)

const HomeRecentNews = 3

type HomeData struct {
	Slides        []models.SliderImage
	RecentNews    []models.News
	Announcements []models.Announcement
}

type HomeService interface {
	GetHome(ctx context.Context) (*HomeData, error)
}
