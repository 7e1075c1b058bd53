package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"question-bank-service/internal/app/service"
	"question-bank-service/internal/transport/httpserver/dto"
)

// AdminHandler handles admin-related HTTP requests.
type AdminHandler struct {
	importService *service.ImportService
	logger        *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(importSvc *service.ImportService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		importService: importSvc,
		logger:        logger,
	}
}

// ImportAll handles POST /api/v1/admin/import
func (h *AdminHandler) ImportAll(c *fiber.Ctx) error {
	h.logger.Info("manual import triggered")

	results := h.importService.ImportAll(c.Context())

	return c.JSON(dto.FromImportResults(results))
}

// Feeds handles GET /api/v1/admin/feeds
func (h *AdminHandler) Feeds(c *fiber.Ctx) error {
	feeds := h.importService.Feeds()
	statuses := make([]dto.FeedStatusResponse, len(feeds))

	for i, f := range feeds {
		status := dto.FeedStatusResponse{Name: f.Name(), Healthy: true}
		if err := f.HealthCheck(c.Context()); err != nil {
			status.Healthy = false
			status.Error = err.Error()
		}
		statuses[i] = status
	}

	return c.JSON(fiber.Map{"feeds": statuses})
}
