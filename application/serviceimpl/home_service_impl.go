package serviceimpl

import (
	"context"

	"school-cms/domain/services"
)

type HomeServiceImpl struct {
	sliderService       services.SliderService
	newsService         services.NewsService
	announcementService services.AnnouncementService
}

func NewHomeService(
	sliderService services.SliderService,
	newsService services.NewsService,
	announcementService services.AnnouncementService,
) services.HomeService {
	return &HomeServiceImpl{
		sliderService:       sliderService,
		newsService:         newsService,
		announcementService: announcementService,
	}
}

func (s *HomeServiceImpl) GetHome(ctx context.Context) (*services.HomeData, error) {
	slides, err := s.sliderService.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	news, err := s.newsService.GetRecent(ctx, services.HomeRecentNews)
	if err != nil {
		return nil, err
	}

	announcements, err := s.announcementService.GetNotificationAnnouncements(ctx)
	if err != nil {
		return nil, err
	}

	return &services.HomeData{
		Slides:        slides,
		RecentNews:    news,
		Announcements: announcements,
	}, nil
}
