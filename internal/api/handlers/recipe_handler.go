package handlers

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/internal/api/presenters"
	"Recipedia-Backend/pkg/recipe"
	"Recipedia-Backend/pkg/recommendation"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecommendations(c *fiber.Ctx) error
		GetFilters(c *fiber.Ctx) error

		AdminGetRecipes(c *fiber.Ctx) error
		AdminGetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		ToggleStatus(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService         recipe.RecipeService
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, recommendationService recommendation.RecommendationService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:         recipeService,
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func parseListQuery(c *fiber.Ctx) domain.RecipeListQuery {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultListLimit)))
	if err != nil {
		limit = domain.DefaultListLimit
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		offset = 0
	}

	return domain.RecipeListQuery{
		Search:   c.Query("search", ""),
		Status:   c.Query("status", ""),
		MealType: c.Query("mealType", ""),
		DishType: c.Query("dishType", ""),
		Limit:    limit,
		Offset:   offset,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	query := parseListQuery(c)
	query.ActiveOnly = true

	res, err := h.recipeService.ListRecipes(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, domain.DefaultRatingDiscovery)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecommendations(c *fiber.Ctx) error {
	userID := c.Query("userId", "")
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, domain.ErrUserNotFound)
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultListLimit)))
	if err != nil {
		limit = domain.DefaultListLimit
	}

	res, err := h.recommendationService.GetRecommendations(c.Context(), userID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recipeHandler) GetFilters(c *fiber.Ctx) error {
	res, err := h.recipeService.GetFilters(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFilters, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFilters)
}

func (h *recipeHandler) AdminGetRecipes(c *fiber.Ctx) error {
	query := parseListQuery(c)

	res, err := h.recipeService.ListRecipes(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) AdminGetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, domain.DefaultRatingAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) ToggleStatus(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	isActive, err := h.recipeService.ToggleStatus(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleStatus, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"is_active": isActive}, fiber.StatusOK, domain.MessageSuccessToggleStatus)
}
