package domain

import (
	"errors"
)

var (
	MessageSuccessAdminLogin   = "admin login successful"
	MessageSuccessGetStats     = "recipe statistics retrieved successfully"
	MessageSuccessToggleStatus = "recipe status toggled successfully"

	MessageFailedAdminLogin   = "failed to login as admin"
	MessageFailedGetStats     = "failed to retrieve recipe statistics"
	MessageFailedToggleStatus = "failed to toggle recipe status"

	ErrAdminNotFound = errors.New("admin not found")
)

type (
	AdminLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AdminResponse struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Role      string `json:"role"`
	}

	AdminLoginResponse struct {
		Token string        `json:"token"`
		Admin AdminResponse `json:"admin"`
	}

	RecipeStatsOverviewResponse struct {
		TotalRecipes    int64   `json:"total_recipes"`
		ActiveRecipes   int64   `json:"active_recipes"`
		InactiveRecipes int64   `json:"inactive_recipes"`
		TotalSaves      int64   `json:"total_saves"`
		TotalTried      int64   `json:"total_tried"`
		TotalRatings    int64   `json:"total_ratings"`
		AverageRating   float64 `json:"average_rating"`
	}
)
