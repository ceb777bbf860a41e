package handlers

import (
	"nourish-backend/domain"
	"nourish-backend/internal/api/presenters"
	"nourish-backend/pkg/community"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommunityHandler interface {
		CreatePost(c *fiber.Ctx) error
		GetPosts(c *fiber.Ctx) error
		ClaimPost(c *fiber.Ctx) error
		ClosePost(c *fiber.Ctx) error
	}

	communityHandler struct {
		communityService community.CommunityService
		validator        *validator.Validate
	}
)

func NewCommunityHandler(communityService community.CommunityService, validator *validator.Validate) CommunityHandler {
	return &communityHandler{
		communityService: communityService,
		validator:        validator,
	}
}

func (h *communityHandler) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := domain.CreatePostRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}
	if image, err := c.FormFile("image"); err == nil {
		req.Image = image
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	res, err := h.communityService.CreatePost(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePost)
}

func (h *communityHandler) GetPosts(c *fiber.Ctx) error {
	status := c.Query("status")

	res, err := h.communityService.GetPosts(c.Context(), status)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPosts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPosts)
}

func (h *communityHandler) ClaimPost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := domain.ClaimPostRequest{PostID: c.Params("id")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimPost, err)
	}

	if err := h.communityService.ClaimPost(c.Context(), req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimPost, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClaimPost)
}

func (h *communityHandler) ClosePost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("id")

	if err := h.communityService.ClosePost(c.Context(), postID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClosePost, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClosePost)
}
