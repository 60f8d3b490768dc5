package interaction

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InteractionRepository interface {
		GetByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entities.RecipeInteraction, error)
		CreateInteraction(ctx context.Context, interaction *entities.RecipeInteraction) error
		UpdateInteraction(ctx context.Context, interaction *entities.RecipeInteraction) error
		GetRecipeStats(ctx context.Context, recipeID string) (domain.RecipeStats, error)
		GetStatsForRecipes(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]domain.RecipeStats, error)
		GetSavedRecipes(ctx context.Context, userID string, limit, offset int) ([]*entities.Recipe, int64, error)
	}

	interactionRepository struct {
		db *gorm.DB
	}
)

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) GetByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entities.RecipeInteraction, error) {
	var interaction entities.RecipeInteraction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&interaction).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) CreateInteraction(ctx context.Context, interaction *entities.RecipeInteraction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) UpdateInteraction(ctx context.Context, interaction *entities.RecipeInteraction) error {
	return r.db.WithContext(ctx).Save(interaction).Error
}

// GetRecipeStats aggregates the interaction ledger for one recipe.
// The caller decides what an empty rating set means; here it comes
// back as average 0 with RatingCount 0.
func (r *interactionRepository) GetRecipeStats(ctx context.Context, recipeID string) (domain.RecipeStats, error) {
	var stats domain.RecipeStats

	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeInteraction{}).
		Where("recipe_id = ? AND rating IS NOT NULL", recipeID).
		Count(&stats.RatingCount).Error; err != nil {
		return domain.RecipeStats{}, err
	}

	if stats.RatingCount > 0 {
		if err := r.db.WithContext(ctx).
			Model(&entities.RecipeInteraction{}).
			Where("recipe_id = ? AND rating IS NOT NULL", recipeID).
			Select("AVG(rating)").
			Scan(&stats.AverageRating).Error; err != nil {
			return domain.RecipeStats{}, err
		}
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeInteraction{}).
		Where("recipe_id = ? AND is_saved = ?", recipeID, true).
		Distinct("user_id").
		Count(&stats.SaveCount).Error; err != nil {
		return domain.RecipeStats{}, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeInteraction{}).
		Where("recipe_id = ? AND is_tried = ?", recipeID, true).
		Distinct("user_id").
		Count(&stats.TriedCount).Error; err != nil {
		return domain.RecipeStats{}, err
	}

	return stats, nil
}

type recipeStatsRow struct {
	RecipeID      uuid.UUID
	AverageRating float64
	RatingCount   int64
	SaveCount     int64
	TriedCount    int64
}

// GetStatsForRecipes aggregates a batch of recipes in one grouped
// query; recipes with no ledger rows are simply absent from the map.
func (r *interactionRepository) GetStatsForRecipes(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]domain.RecipeStats, error) {
	stats := make(map[uuid.UUID]domain.RecipeStats, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return stats, nil
	}

	var rows []recipeStatsRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeInteraction{}).
		Select(`recipe_id,
			COALESCE(AVG(rating), 0) AS average_rating,
			COUNT(rating) AS rating_count,
			COUNT(DISTINCT CASE WHEN is_saved THEN user_id END) AS save_count,
			COUNT(DISTINCT CASE WHEN is_tried THEN user_id END) AS tried_count`).
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.RecipeID] = domain.RecipeStats{
			AverageRating: row.AverageRating,
			RatingCount:   row.RatingCount,
			SaveCount:     row.SaveCount,
			TriedCount:    row.TriedCount,
		}
	}
	return stats, nil
}

func (r *interactionRepository) GetSavedRecipes(ctx context.Context, userID string, limit, offset int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN recipe_interactions ON recipes.id = recipe_interactions.recipe_id").
		Where("recipe_interactions.user_id = ? AND recipe_interactions.is_saved = ?", userID, true).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_interactions ON recipes.id = recipe_interactions.recipe_id").
		Where("recipe_interactions.user_id = ? AND recipe_interactions.is_saved = ?", userID, true).
		Offset(offset).
		Limit(limit).
		Order("recipe_interactions.saved_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}
