package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/models"
	"school-cms/domain/services"
	"school-cms/pkg/listing"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

// List returns published news, filtered and paginated.
// GET /api/v1/news?search=&category=&page=&per_page=
func (h *NewsHandler) List(c *fiber.Ctx) error {
	page, err := h.newsService.List(c.UserContext(), listQuery(c, "category"))
	if err != nil {
		return serviceError(c, err, "Failed to load news")
	}

	now := time.Now()
	resp := listing.Map(page, func(n models.News) dto.NewsResponse {
		return dto.NewsToResponse(&n, now)
	})
	return utils.SuccessResponse(c, "News retrieved successfully", resp)
}

func (h *NewsHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.newsService.GetCategories(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load categories")
	}
	return utils.SuccessResponse(c, "Categories retrieved successfully", categories)
}

// GetBySlug returns one published article. Drafts are reported as missing.
func (h *NewsHandler) GetBySlug(c *fiber.Ctx) error {
	news, err := h.newsService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return serviceError(c, err, "Failed to load news")
	}
	if !news.IsPublished() {
		return utils.NotFoundResponse(c, "News not found")
	}
	return utils.SuccessResponse(c, "News retrieved successfully", dto.NewsToResponse(news, time.Now()))
}

// AdminList returns every article regardless of status, newest first
func (h *NewsHandler) AdminList(c *fiber.Ctx) error {
	items, err := h.newsService.GetAll(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load news")
	}
	return utils.SuccessResponse(c, "News retrieved successfully", dto.NewsListToResponse(items, time.Now()))
}

func (h *NewsHandler) AdminGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	news, err := h.newsService.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "Failed to load news")
	}
	return utils.SuccessResponse(c, "News retrieved successfully", dto.NewsToResponse(news, time.Now()))
}

func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	news := dto.CreateNewsRequestToNews(&req)

	var created *models.News
	var err error
	if req.ReadingTime == nil {
		created, err = h.newsService.CreateWithReadingTime(c.UserContext(), news)
	} else {
		created, err = h.newsService.Create(c.UserContext(), news)
	}
	if err != nil {
		return serviceError(c, err, "Failed to create news")
	}

	logger.Content("news_created", "News article created", map[string]interface{}{
		"id":   created.ID.String(),
		"slug": created.Slug,
	})
	return utils.CreatedResponse(c, "News created successfully", dto.NewsToResponse(created, time.Now()))
}

// Update applies a partial update. Keys are camelCase response field names.
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, err := dto.UpdateRequestToUpdates(body)
	if err != nil {
		return serviceError(c, err, "Failed to update news")
	}

	news, err := h.newsService.Update(c.UserContext(), id, updates)
	if err != nil {
		return serviceError(c, err, "Failed to update news")
	}
	return utils.SuccessResponse(c, "News updated successfully", dto.NewsToResponse(news, time.Now()))
}

func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	if err := h.newsService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to delete news")
	}
	return utils.SuccessResponse(c, "News deleted successfully", nil)
}
