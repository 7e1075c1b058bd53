// Package handler provides HTTP handlers for the API.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"question-bank-service/internal/app/service"
	"question-bank-service/internal/domain"
	"question-bank-service/internal/transport/httpserver/dto"
	"question-bank-service/internal/validator"
)

// QuestionHandler handles question-related HTTP requests.
type QuestionHandler struct {
	service   *service.SearchService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(svc *service.SearchService, v *validator.Validator, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Search handles GET /api/v1/questions
func (h *QuestionHandler) Search(c *fiber.Ctx) error {
	var req dto.QuestionSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	criteria := req.ToCriteria()
	result, err := h.service.Search(c.Context(), criteria)
	if err != nil {
		h.logger.Error("question search failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "search failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromSearchResult(result, criteria.Mode))
}

// GetByID handles GET /api/v1/questions/:id
func (h *QuestionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	// A malformed identifier cannot exist in the bank, so it is a plain
	// not-found rather than a client error.
	if !domain.IsObjectID(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "question not found",
			Code:  "NOT_FOUND",
		})
	}

	question, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("get question by id failed", zap.String("id", id), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to get question",
			Code:  "INTERNAL_ERROR",
		})
	}

	if question == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "question not found",
			Code:  "NOT_FOUND",
		})
	}

	return c.JSON(dto.FromDomainQuestion(question, domain.ModeFull))
}
