package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title            string    `json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	PrepTimeMinutes  *int      `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes  *int      `json:"cook_time_minutes,omitempty"`
	TotalTimeMinutes *int      `json:"total_time_minutes,omitempty"`
	Servings         int       `json:"servings"`
	Difficulty       string    `json:"difficulty"` // "Easy", "Medium", "Hard"
	ImageURL         string    `json:"image_url,omitempty"`
	MealType         string    `json:"meal_type"`
	DishType         string    `json:"dish_type"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	Instructions     string    `gorm:"type:text" json:"instructions"`

	// Restrictions a recipe violates; used to exclude it from
	// recommendations for users holding one of them.
	Restrictions []*DietaryRestriction `gorm:"many2many:recipe_restrictions" json:"restrictions,omitempty"`
	Timestamp
}

type DietaryRestriction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description,omitempty"`

	Timestamp
}
