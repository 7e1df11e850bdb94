package handlers

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/services"
	"school-cms/pkg/utils"
)

type ViewStatsHandler struct {
	viewService services.ViewTrackingService
}

func NewViewStatsHandler(viewService services.ViewTrackingService) *ViewStatsHandler {
	return &ViewStatsHandler{viewService: viewService}
}

// TopContent lists the most viewed rows from the page-view log.
// GET /api/v1/admin/stats/views?days=7&limit=10
func (h *ViewStatsHandler) TopContent(c *fiber.Ctx) error {
	stats, err := h.viewService.TopContent(c.UserContext(), c.QueryInt("days", 7), c.QueryInt("limit", 10))
	if err != nil {
		return serviceError(c, err, "Failed to load view statistics")
	}

	resp := make([]dto.ViewStatsResponse, len(stats))
	for i, s := range stats {
		resp[i] = dto.ViewStatsResponse{
			ContentType: string(s.ContentType),
			ContentID:   s.ContentID,
			Views:       s.Views,
		}
	}
	return utils.SuccessResponse(c, "View statistics retrieved successfully", resp)
}
