package domain

import (
	"errors"
	"time"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100

	// Empty-rating fallback differs by call site: admin and listing
	// surfaces report 0, end-user discovery surfaces report 4.5. Both
	// are long-standing product behavior and kept as-is.
	DefaultRatingAdmin     = 0.0
	DefaultRatingDiscovery = 4.5

	StatusActive   = "active"
	StatusInactive = "inactive"
	FilterAll      = "All"
)

// ClampLimit bounds client-supplied page sizes to [1, MaxListLimit];
// zero or negative falls back to the default.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

var (
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetFilters      = "recipe filters retrieved successfully"

	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetFilters      = "failed to retrieve recipe filters"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// RecipeListQuery is the normalized filter set built from untrusted
	// query-string input. Limit and Offset are clamped by the service
	// before reaching the repository.
	RecipeListQuery struct {
		Search     string
		Status     string
		MealType   string
		DishType   string
		Limit      int
		Offset     int
		ActiveOnly bool
	}

	CreateRecipeRequest struct {
		Title            string   `json:"title" validate:"required"`
		Description      string   `json:"description" validate:"omitempty"`
		PrepTimeMinutes  *int     `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes  *int     `json:"cook_time_minutes" validate:"omitempty,min=0"`
		TotalTimeMinutes *int     `json:"total_time_minutes" validate:"omitempty,min=0"`
		Servings         int      `json:"servings" validate:"omitempty,min=1"`
		Difficulty       string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		ImageURL         string   `json:"image_url" validate:"omitempty,url"`
		MealType         string   `json:"meal_type" validate:"omitempty"`
		DishType         string   `json:"dish_type" validate:"omitempty"`
		Instructions     string   `json:"instructions" validate:"omitempty"`
		RestrictionIDs   []string `json:"restriction_ids" validate:"omitempty,dive,uuid"`
	}

	UpdateRecipeRequest struct {
		Title            string `json:"title" validate:"omitempty"`
		Description      string `json:"description" validate:"omitempty"`
		PrepTimeMinutes  *int   `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes  *int   `json:"cook_time_minutes" validate:"omitempty,min=0"`
		TotalTimeMinutes *int   `json:"total_time_minutes" validate:"omitempty,min=0"`
		Servings         int    `json:"servings" validate:"omitempty,min=1"`
		Difficulty       string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		ImageURL         string `json:"image_url" validate:"omitempty,url"`
		MealType         string `json:"meal_type" validate:"omitempty"`
		DishType         string `json:"dish_type" validate:"omitempty"`
		Instructions     string `json:"instructions" validate:"omitempty"`
	}

	RecipeResponse struct {
		ID               string    `json:"id"`
		Title            string    `json:"title"`
		Description      string    `json:"description"`
		PrepTimeMinutes  *int      `json:"prep_time_minutes"`
		CookTimeMinutes  *int      `json:"cook_time_minutes"`
		TotalTimeMinutes *int      `json:"total_time_minutes"`
		Servings         int       `json:"servings"`
		Difficulty       string    `json:"difficulty"`
		ImageURL         string    `json:"image_url,omitempty"`
		MealType         string    `json:"meal_type"`
		DishType         string    `json:"dish_type"`
		IsActive         bool      `json:"is_active"`
		Instructions     string    `json:"instructions,omitempty"`
		AverageRating    float64   `json:"average_rating"`
		SaveCount        int64     `json:"save_count"`
		TriedCount       int64     `json:"tried_count"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Total   int64            `json:"total"`
		Limit   int              `json:"limit"`
		Offset  int              `json:"offset"`
		HasMore bool             `json:"has_more"`
	}

	RecipeFiltersResponse struct {
		MealTypes []string `json:"meal_types"`
		DishTypes []string `json:"dish_types"`
	}
)
