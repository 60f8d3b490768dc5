package recipe

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"Recipedia-Backend/pkg/interaction"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, query domain.RecipeListQuery) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, id string, fallbackRating float64) (domain.RecipeResponse, error)
		GetFilters(ctx context.Context) (domain.RecipeFiltersResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id string) error
		ToggleStatus(ctx context.Context, id string) (bool, error)
	}

	recipeService struct {
		recipeRepository      RecipeRepository
		interactionRepository interaction.InteractionRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, interactionRepository interaction.InteractionRepository) RecipeService {
	return &recipeService{
		recipeRepository:      recipeRepository,
		interactionRepository: interactionRepository,
	}
}

// DeriveTotalTime reproduces the write-time total derivation: an
// explicit value always wins; otherwise prep + cook when both are
// present, and null (not zero) when either is absent.
func DeriveTotalTime(prep, cook, explicit *int) *int {
	if explicit != nil {
		return explicit
	}
	if prep != nil && cook != nil {
		total := *prep + *cook
		return &total
	}
	return nil
}

func (s *recipeService) ListRecipes(ctx context.Context, query domain.RecipeListQuery) (domain.RecipeListResponse, error) {
	query.Limit = domain.ClampLimit(query.Limit)
	query.Offset = domain.ClampOffset(query.Offset)

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, query)
	if err != nil {
		return domain.RecipeListResponse{}, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}

	items := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, domain.ToRecipeResponse(r))
	}

	return domain.RecipeListResponse{
		Recipes: items,
		Total:   count,
		Limit:   query.Limit,
		Offset:  query.Offset,
		HasMore: int64(query.Offset+len(items)) < count,
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, fallbackRating float64) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	stats, err := s.interactionRepository.GetRecipeStats(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	response := domain.ToRecipeResponse(recipe)
	response.AverageRating = stats.AverageRating
	if stats.RatingCount == 0 {
		response.AverageRating = fallbackRating
	}
	response.SaveCount = stats.SaveCount
	response.TriedCount = stats.TriedCount
	return response, nil
}

func (s *recipeService) GetFilters(ctx context.Context) (domain.RecipeFiltersResponse, error) {
	mealTypes, dishTypes, err := s.recipeRepository.GetFilterValues(ctx)
	if err != nil {
		return domain.RecipeFiltersResponse{}, err
	}
	return domain.RecipeFiltersResponse{
		MealTypes: mealTypes,
		DishTypes: dishTypes,
	}, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		ID:               uuid.New(),
		Title:            req.Title,
		Description:      req.Description,
		PrepTimeMinutes:  req.PrepTimeMinutes,
		CookTimeMinutes:  req.CookTimeMinutes,
		TotalTimeMinutes: DeriveTotalTime(req.PrepTimeMinutes, req.CookTimeMinutes, req.TotalTimeMinutes),
		Servings:         req.Servings,
		Difficulty:       req.Difficulty,
		ImageURL:         req.ImageURL,
		MealType:         req.MealType,
		DishType:         req.DishType,
		IsActive:         true,
		Instructions:     req.Instructions,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	if len(req.RestrictionIDs) > 0 {
		restrictionIDs := make([]uuid.UUID, 0, len(req.RestrictionIDs))
		for _, id := range req.RestrictionIDs {
			restrictionUUID, err := uuid.Parse(id)
			if err != nil {
				return domain.RecipeResponse{}, domain.ErrParseUUID
			}
			restrictionIDs = append(restrictionIDs, restrictionUUID)
		}
		if err := s.recipeRepository.ReplaceRestrictions(ctx, recipe, restrictionIDs); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return domain.ToRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.Difficulty != "" {
		recipe.Difficulty = req.Difficulty
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	if req.MealType != "" {
		recipe.MealType = req.MealType
	}
	if req.DishType != "" {
		recipe.DishType = req.DishType
	}
	if req.Instructions != "" {
		recipe.Instructions = req.Instructions
	}
	recipe.TotalTimeMinutes = DeriveTotalTime(recipe.PrepTimeMinutes, recipe.CookTimeMinutes, req.TotalTimeMinutes)

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) ToggleStatus(ctx context.Context, id string) (bool, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecipeNotFound
		}
		return false, err
	}

	recipe.IsActive = !recipe.IsActive
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return false, err
	}
	return recipe.IsActive, nil
}
