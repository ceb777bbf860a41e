package handlers

import (
	"nourish-backend/domain"
	"nourish-backend/internal/api/presenters"
	"nourish-backend/pkg/insight"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InsightHandler interface {
		GetImpactInsights(c *fiber.Ctx) error
		GetExpirationRisks(c *fiber.Ctx) error
		GenerateMealPlan(c *fiber.Ctx) error
		Chat(c *fiber.Ctx) error
	}

	insightHandler struct {
		insightService insight.InsightService
		validator      *validator.Validate
	}
)

func NewInsightHandler(insightService insight.InsightService, validator *validator.Validate) InsightHandler {
	return &insightHandler{
		insightService: insightService,
		validator:      validator,
	}
}

func (h *insightHandler) GetImpactInsights(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.insightService.GetImpactInsights(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInsights, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInsights)
}

func (h *insightHandler) GetExpirationRisks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.insightService.GetExpirationRisks(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRisks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRisks)
}

func (h *insightHandler) GenerateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.insightService.GenerateMealPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}

func (h *insightHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChatReply, err)
	}

	res, err := h.insightService.Chat(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChatReply, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChatReply)
}
