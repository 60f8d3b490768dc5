package domain

import (
	"errors"
)

var (
	MessageSuccessSaveRecipe   = "recipe saved successfully"
	MessageSuccessUnsaveRecipe = "recipe removed from saved"
	MessageSuccessMarkTried    = "recipe marked as tried"
	MessageSuccessUnmarkTried  = "recipe unmarked as tried"
	MessageSuccessRateRecipe   = "recipe rated successfully"
	MessageSuccessRemoveRating = "rating removed successfully"
	MessageSuccessBulkSave     = "recipes saved successfully"
	MessageSuccessGetSaved     = "saved recipes retrieved successfully"

	MessageFailedSaveRecipe   = "failed to save recipe"
	MessageFailedUnsaveRecipe = "failed to remove recipe from saved"
	MessageFailedMarkTried    = "failed to mark recipe as tried"
	MessageFailedRateRecipe   = "failed to rate recipe"
	MessageFailedBulkSave     = "failed to save recipes"
	MessageFailedGetSaved     = "failed to retrieve saved recipes"

	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type (
	RateRecipeRequest struct {
		Rating int `json:"rating" validate:"required,min=1,max=5"`
	}

	BulkSaveRequest struct {
		RecipeIDs []string `json:"recipe_ids" validate:"required,min=1,dive,uuid"`
	}

	// RecipeStats are the per-recipe aggregates computed on read from
	// the interaction ledger, never stored.
	RecipeStats struct {
		AverageRating float64
		RatingCount   int64
		SaveCount     int64
		TriedCount    int64
	}

	AggregateMetricsResponse struct {
		AverageRating float64 `json:"average_rating"`
		SaveCount     int64   `json:"save_count"`
		TriedCount    int64   `json:"tried_count"`
	}
)
