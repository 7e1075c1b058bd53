package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"question-bank-service/internal/app/service"
	"question-bank-service/internal/domain"
	"question-bank-service/internal/transport/httpserver/dto"
)

// FacetHandler serves the facet directory listings.
type FacetHandler struct {
	service *service.FacetService
	logger  *zap.Logger
}

// NewFacetHandler creates a new FacetHandler.
func NewFacetHandler(svc *service.FacetService, logger *zap.Logger) *FacetHandler {
	return &FacetHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/facets/:kind
func (h *FacetHandler) List(c *fiber.Ctx) error {
	kind, ok := domain.ParseFacetKind(c.Params("kind"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "unknown facet kind",
			Code:  "NOT_FOUND",
		})
	}

	facets, err := h.service.List(c.Context(), kind)
	if err != nil {
		h.logger.Error("facet list failed", zap.String("kind", string(kind)), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to list facets",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromFacets(kind, facets))
}
