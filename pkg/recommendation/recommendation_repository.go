package recommendation

import (
	"Recipedia-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecommendationRepository interface {
		GetPreferenceByUserID(ctx context.Context, userID string) (*entities.UserPreference, error)
		GetCandidateRecipes(ctx context.Context, userID string, restrictionIDs []uuid.UUID) ([]*entities.Recipe, error)
	}

	recommendationRepository struct {
		db *gorm.DB
	}
)

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) GetPreferenceByUserID(ctx context.Context, userID string) (*entities.UserPreference, error) {
	var preference entities.UserPreference
	if err := r.db.WithContext(ctx).
		Preload("Restrictions").
		Where("user_id = ?", userID).
		First(&preference).Error; err != nil {
		return nil, err
	}
	return &preference, nil
}

// GetCandidateRecipes returns active recipes the user has neither
// saved nor tried. Restriction filtering only applies when the user
// holds restrictions; an empty list skips the clause entirely rather
// than filtering against nothing.
func (r *recommendationRepository) GetCandidateRecipes(ctx context.Context, userID string, restrictionIDs []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	q := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("is_active = ?", true).
		Where(`id NOT IN (
			SELECT recipe_id FROM recipe_interactions
			WHERE user_id = ? AND (is_saved = ? OR is_tried = ?)
		)`, userID, true, true)

	if len(restrictionIDs) > 0 {
		q = q.Where(`id NOT IN (
			SELECT recipe_id FROM recipe_restrictions
			WHERE dietary_restriction_id IN ?
		)`, restrictionIDs)
	}

	if err := q.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
