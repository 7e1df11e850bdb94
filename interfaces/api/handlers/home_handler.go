package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/services"
	"school-cms/pkg/utils"
)

type HomeHandler struct {
	homeService   services.HomeService
	announcements *AnnouncementHandler
}

func NewHomeHandler(homeService services.HomeService, announcements *AnnouncementHandler) *HomeHandler {
	return &HomeHandler{
		homeService:   homeService,
		announcements: announcements,
	}
}

// GetHome returns the slider, the latest news and the banner announcements
func (h *HomeHandler) GetHome(c *fiber.Ctx) error {
	data, err := h.homeService.GetHome(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load homepage")
	}

	now := time.Now()
	return utils.SuccessResponse(c, "Homepage retrieved successfully", dto.HomeResponse{
		Slides:        dto.SliderListToResponse(data.Slides),
		RecentNews:    dto.NewsListToResponse(data.RecentNews, now),
		Announcements: h.announcements.toResponses(data.Announcements, now),
	})
}
