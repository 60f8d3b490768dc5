package domain

import (
	"Recipedia-Backend/entities"
)

// ToRecipeResponse shapes a recipe row for the API without metrics;
// callers fill the aggregate fields when they have them.
func ToRecipeResponse(recipe *entities.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:               recipe.ID.String(),
		Title:            recipe.Title,
		Description:      recipe.Description,
		PrepTimeMinutes:  recipe.PrepTimeMinutes,
		CookTimeMinutes:  recipe.CookTimeMinutes,
		TotalTimeMinutes: recipe.TotalTimeMinutes,
		Servings:         recipe.Servings,
		Difficulty:       recipe.Difficulty,
		ImageURL:         recipe.ImageURL,
		MealType:         recipe.MealType,
		DishType:         recipe.DishType,
		IsActive:         recipe.IsActive,
		Instructions:     recipe.Instructions,
		CreatedAt:        recipe.CreatedAt,
		UpdatedAt:        recipe.UpdatedAt,
	}
}
