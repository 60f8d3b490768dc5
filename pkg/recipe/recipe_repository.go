package recipe

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, query domain.RecipeListQuery) ([]*entities.Recipe, int64, error)
		DeleteRecipe(ctx context.Context, id string) error
		CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
		GetFilterValues(ctx context.Context) ([]string, []string, error)
		ReplaceRestrictions(ctx context.Context, recipe *entities.Recipe, restrictionIDs []uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes applies the conjunctive filter set and returns one page
// plus the total count under the same predicate. Ordering is creation
// time descending only; clients cannot supply a sort.
func (r *recipeRepository) GetRecipes(ctx context.Context, query domain.RecipeListQuery) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	q := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if query.Search != "" {
		term := "%" + query.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", term, term)
	}
	if query.MealType != "" && query.MealType != domain.FilterAll {
		q = q.Where("meal_type = ?", query.MealType)
	}
	if query.DishType != "" && query.DishType != domain.FilterAll {
		q = q.Where("dish_type = ?", query.DishType)
	}

	// End-user listings only ever see active rows; admin listings map
	// the status filter onto is_active.
	if query.ActiveOnly {
		q = q.Where("is_active = ?", true)
	} else if query.Status == domain.StatusActive {
		q = q.Where("is_active = ?", true)
	} else if query.Status == domain.StatusInactive {
		q = q.Where("is_active = ?", false)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.
		Offset(query.Offset).
		Limit(query.Limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// DeleteRecipe hard-deletes a recipe. Dependent rows are removed first
// on a best-effort basis: a failure there is logged and swallowed so
// the delete itself still goes through.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&entities.RecipeInteraction{}).Error; err != nil {
		log.Printf("failed to delete interactions for recipe %s: %v", id, err)
	}

	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM recipe_restrictions WHERE recipe_id = ?", id).Error; err != nil {
		log.Printf("failed to delete restriction links for recipe %s: %v", id, err)
	}

	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetFilterValues(ctx context.Context) ([]string, []string, error) {
	var mealTypes, dishTypes []string

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("is_active = ? AND meal_type <> ''", true).
		Distinct().
		Order("meal_type").
		Pluck("meal_type", &mealTypes).Error; err != nil {
		return nil, nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("is_active = ? AND dish_type <> ''", true).
		Distinct().
		Order("dish_type").
		Pluck("dish_type", &dishTypes).Error; err != nil {
		return nil, nil, err
	}

	return mealTypes, dishTypes, nil
}

func (r *recipeRepository) ReplaceRestrictions(ctx context.Context, recipe *entities.Recipe, restrictionIDs []uuid.UUID) error {
	restrictions := make([]*entities.DietaryRestriction, 0, len(restrictionIDs))
	for _, id := range restrictionIDs {
		restrictions = append(restrictions, &entities.DietaryRestriction{ID: id})
	}
	return r.db.WithContext(ctx).
		Model(recipe).
		Association("Restrictions").
		Replace(restrictions)
}
