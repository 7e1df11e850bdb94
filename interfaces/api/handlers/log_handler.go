package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

// LogHandler exposes today's structured log files to admins
type LogHandler struct{}

func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

// GetLogs returns log entries, newest first.
// GET /api/v1/admin/logs?lines=&level=&category=&search=
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	opts := logger.ReadLogsOptions{
		Lines:    c.QueryInt("lines", 100),
		Level:    logger.Level(c.Query("level")),
		Category: logger.Category(c.Query("category")),
		Search:   c.Query("search"),
	}

	entries, err := logger.ReadLogs(opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read logs", err)
	}

	return utils.SuccessResponse(c, "Logs retrieved successfully", fiber.Map{
		"entries": entries,
		"count":   len(entries),
		"filters": fiber.Map{
			"lines":    opts.Lines,
			"level":    opts.Level,
			"category": opts.Category,
			"search":   opts.Search,
		},
	})
}

func (h *LogHandler) GetLogFiles(c *fiber.Ctx) error {
	files, err := logger.ListLogFiles()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list log files", err)
	}

	return utils.SuccessResponse(c, "Log files retrieved successfully", fiber.Map{
		"files":  files,
		"logDir": logger.GetLogDir(),
	})
}

// GetLogStats counts today's entries by level and category
func (h *LogHandler) GetLogStats(c *fiber.Ctx) error {
	entries, _ := logger.ReadLogs(logger.ReadLogsOptions{Lines: 1000})

	byLevel := map[logger.Level]int{
		logger.LevelDebug: 0,
		logger.LevelInfo:  0,
		logger.LevelWarn:  0,
		logger.LevelError: 0,
	}
	byCategory := make(map[logger.Category]int, len(logger.AllCategories))
	for _, entry := range entries {
		byLevel[entry.Level]++
		byCategory[entry.Category]++
	}

	var totalSize int64
	files, _ := logger.ListLogFiles()
	for _, f := range files {
		if info, err := os.Stat(filepath.Join(logger.GetLogDir(), f)); err == nil {
			totalSize += info.Size()
		}
	}

	return utils.SuccessResponse(c, "Log statistics retrieved successfully", fiber.Map{
		"totalEntries":   len(entries),
		"byLevel":        byLevel,
		"byCategory":     byCategory,
		"totalFiles":     len(files),
		"totalSizeBytes": totalSize,
	})
}
