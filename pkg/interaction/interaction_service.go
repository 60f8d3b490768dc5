package interaction

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RecipeCatalog is the slice of the recipe store this package
	// needs; satisfied by recipe.RecipeRepository.
	RecipeCatalog interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	}

	InteractionService interface {
		SetSaved(ctx context.Context, userID, recipeID string, saved bool) error
		SetTried(ctx context.Context, userID, recipeID string, tried bool) error
		SetRating(ctx context.Context, userID, recipeID string, rating int) error
		RemoveRating(ctx context.Context, userID, recipeID string) error
		BulkSave(ctx context.Context, userID string, recipeIDs []string) error
		GetAggregateMetrics(ctx context.Context, recipeID string, fallbackRating float64) (domain.AggregateMetricsResponse, error)
		GetSavedRecipes(ctx context.Context, userID string, limit, offset int) (domain.RecipeListResponse, error)
	}

	interactionService struct {
		interactionRepository InteractionRepository
		recipeCatalog         RecipeCatalog
	}
)

func NewInteractionService(interactionRepository InteractionRepository, recipeCatalog RecipeCatalog) InteractionService {
	return &interactionService{
		interactionRepository: interactionRepository,
		recipeCatalog:         recipeCatalog,
	}
}

// upsert is the shared read-modify-write path for all three facets:
// fetch the (user, recipe) row, create it if absent, otherwise mutate
// only the requested facet and save. The check-then-write pair is not
// wrapped in a transaction; the unique index on (user_id, recipe_id)
// bounds the race window to a constraint error instead of a duplicate
// row.
func (s *interactionService) upsert(ctx context.Context, userID, recipeID string, mutate func(*entities.RecipeInteraction)) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeCatalog.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.apply(ctx, userUUID, recipeUUID, mutate)
}

// apply is the write half of the upsert; callers must have validated
// the recipe against the catalog already.
func (s *interactionService) apply(ctx context.Context, userUUID, recipeUUID uuid.UUID, mutate func(*entities.RecipeInteraction)) error {
	existing, err := s.interactionRepository.GetByUserAndRecipe(ctx, userUUID, recipeUUID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		interaction := &entities.RecipeInteraction{
			ID:       uuid.New(),
			UserID:   userUUID,
			RecipeID: recipeUUID,
		}
		mutate(interaction)
		return s.interactionRepository.CreateInteraction(ctx, interaction)
	}

	mutate(existing)
	return s.interactionRepository.UpdateInteraction(ctx, existing)
}

func markSaved(saved bool) func(*entities.RecipeInteraction) {
	return func(interaction *entities.RecipeInteraction) {
		interaction.IsSaved = saved
		if saved {
			now := time.Now()
			interaction.SavedAt = &now
		} else {
			interaction.SavedAt = nil
		}
	}
}

func (s *interactionService) SetSaved(ctx context.Context, userID, recipeID string, saved bool) error {
	return s.upsert(ctx, userID, recipeID, markSaved(saved))
}

func (s *interactionService) SetTried(ctx context.Context, userID, recipeID string, tried bool) error {
	return s.upsert(ctx, userID, recipeID, func(interaction *entities.RecipeInteraction) {
		interaction.IsTried = tried
		if tried {
			now := time.Now()
			interaction.TriedAt = &now
		} else {
			interaction.TriedAt = nil
		}
	})
}

func (s *interactionService) SetRating(ctx context.Context, userID, recipeID string, rating int) error {
	if rating < 1 || rating > 5 {
		return domain.ErrInvalidRating
	}
	return s.upsert(ctx, userID, recipeID, func(interaction *entities.RecipeInteraction) {
		now := time.Now()
		interaction.Rating = &rating
		interaction.RatedAt = &now
	})
}

// RemoveRating nulls the rating facet; the row stays for its other
// facets.
func (s *interactionService) RemoveRating(ctx context.Context, userID, recipeID string) error {
	return s.upsert(ctx, userID, recipeID, func(interaction *entities.RecipeInteraction) {
		interaction.Rating = nil
		interaction.RatedAt = nil
	})
}

// BulkSave validates the whole batch against the catalog before any
// write: one unknown recipe ID fails the entire request. The writes
// skip the per-recipe catalog check the single-facet path does, since
// the batch count already covered it.
func (s *interactionService) BulkSave(ctx context.Context, userID string, recipeIDs []string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	seen := make(map[uuid.UUID]struct{}, len(recipeIDs))
	unique := make([]uuid.UUID, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		recipeUUID, err := uuid.Parse(id)
		if err != nil {
			return domain.ErrParseUUID
		}
		if _, ok := seen[recipeUUID]; ok {
			continue
		}
		seen[recipeUUID] = struct{}{}
		unique = append(unique, recipeUUID)
	}

	count, err := s.recipeCatalog.CountByIDs(ctx, unique)
	if err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return domain.ErrRecipeNotFound
	}

	for _, recipeUUID := range unique {
		if err := s.apply(ctx, userUUID, recipeUUID, markSaved(true)); err != nil {
			return err
		}
	}
	return nil
}

// GetAggregateMetrics computes the derived per-recipe metrics. The
// fallback applies only when no ratings exist; callers pass 0 (admin
// surfaces) or 4.5 (end-user discovery), matching long-standing
// behavior on both sides.
func (s *interactionService) GetAggregateMetrics(ctx context.Context, recipeID string, fallbackRating float64) (domain.AggregateMetricsResponse, error) {
	stats, err := s.interactionRepository.GetRecipeStats(ctx, recipeID)
	if err != nil {
		return domain.AggregateMetricsResponse{}, err
	}

	average := stats.AverageRating
	if stats.RatingCount == 0 {
		average = fallbackRating
	}

	return domain.AggregateMetricsResponse{
		AverageRating: average,
		SaveCount:     stats.SaveCount,
		TriedCount:    stats.TriedCount,
	}, nil
}

func (s *interactionService) GetSavedRecipes(ctx context.Context, userID string, limit, offset int) (domain.RecipeListResponse, error) {
	limit = domain.ClampLimit(limit)
	offset = domain.ClampOffset(offset)

	recipes, count, err := s.interactionRepository.GetSavedRecipes(ctx, userID, limit, offset)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, domain.ToRecipeResponse(r))
	}

	return domain.RecipeListResponse{
		Recipes: items,
		Total:   count,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(items)) < count,
	}, nil
}
