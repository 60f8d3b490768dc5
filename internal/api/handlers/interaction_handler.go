package handlers

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/internal/api/presenters"
	"Recipedia-Backend/pkg/interaction"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InteractionHandler interface {
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
		MarkTried(c *fiber.Ctx) error
		UnmarkTried(c *fiber.Ctx) error
		RateRecipe(c *fiber.Ctx) error
		RemoveRating(c *fiber.Ctx) error
		BulkSave(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
	}

	interactionHandler struct {
		interactionService interaction.InteractionService
		validator          *validator.Validate
	}
)

func NewInteractionHandler(interactionService interaction.InteractionService, validator *validator.Validate) InteractionHandler {
	return &interactionHandler{
		interactionService: interactionService,
		validator:          validator,
	}
}

func interactionError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrParseUUID), errors.Is(err, domain.ErrInvalidRating):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}

func (h *interactionHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.interactionService.SetSaved(c.Context(), userID, recipeID, true); err != nil {
		return interactionError(c, domain.MessageFailedSaveRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveRecipe)
}

func (h *interactionHandler) UnsaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.interactionService.SetSaved(c.Context(), userID, recipeID, false); err != nil {
		return interactionError(c, domain.MessageFailedUnsaveRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}

func (h *interactionHandler) MarkTried(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.interactionService.SetTried(c.Context(), userID, recipeID, true); err != nil {
		return interactionError(c, domain.MessageFailedMarkTried, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkTried)
}

func (h *interactionHandler) UnmarkTried(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.interactionService.SetTried(c.Context(), userID, recipeID, false); err != nil {
		return interactionError(c, domain.MessageFailedMarkTried, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnmarkTried)
}

func (h *interactionHandler) RateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.RateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	if err := h.interactionService.SetRating(c.Context(), userID, recipeID, req.Rating); err != nil {
		return interactionError(c, domain.MessageFailedRateRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

func (h *interactionHandler) RemoveRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.interactionService.RemoveRating(c.Context(), userID, recipeID); err != nil {
		return interactionError(c, domain.MessageFailedRateRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveRating)
}

func (h *interactionHandler) BulkSave(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BulkSaveRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkSave, err)
	}

	if err := h.interactionService.BulkSave(c.Context(), userID, req.RecipeIDs); err != nil {
		// An unknown recipe fails the whole batch before any write.
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkSave, err)
		}
		return interactionError(c, domain.MessageFailedBulkSave, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessBulkSave)
}

func (h *interactionHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultListLimit)))
	if err != nil {
		limit = domain.DefaultListLimit
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		offset = 0
	}

	res, err := h.interactionService.GetSavedRecipes(c.Context(), userID, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSaved, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSaved)
}
