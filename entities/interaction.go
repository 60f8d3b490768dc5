package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecipeInteraction holds every interaction facet a user has with a
// recipe in a single row. The facets are independent: a row may be
// saved, tried and rated at once, and clearing one facet nulls its
// fields without touching the others or deleting the row.
type RecipeInteraction struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_interaction_user_recipe" json:"user_id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_interaction_user_recipe" json:"recipe_id"`

	IsSaved bool       `json:"is_saved"`
	SavedAt *time.Time `gorm:"type:timestamp" json:"saved_at,omitempty"`

	IsTried bool       `json:"is_tried"`
	TriedAt *time.Time `gorm:"type:timestamp" json:"tried_at,omitempty"`

	Rating  *int       `gorm:"check:rating >= 1 AND rating <= 5" json:"rating,omitempty"`
	RatedAt *time.Time `gorm:"type:timestamp" json:"rated_at,omitempty"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
