package recommendation

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"Recipedia-Backend/pkg/interaction"
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecommendationService interface {
		GetRecommendations(ctx context.Context, userID string, limit int) (domain.RecommendationResponse, error)
	}

	recommendationService struct {
		recommendationRepository RecommendationRepository
		interactionRepository    interaction.InteractionRepository
	}
)

func NewRecommendationService(recommendationRepository RecommendationRepository, interactionRepository interaction.InteractionRepository) RecommendationService {
	return &recommendationService{
		recommendationRepository: recommendationRepository,
		interactionRepository:    interactionRepository,
	}
}

// GetRecommendations builds the personalized candidate list (recipes
// the user has not saved or tried, minus restriction violations) and
// ranks it by average rating, save count, then tried count. The final
// tie-break on recipe ID makes the ordering fully deterministic for a
// given catalog state.
func (s *recommendationService) GetRecommendations(ctx context.Context, userID string, limit int) (domain.RecommendationResponse, error) {
	limit = domain.ClampLimit(limit)

	var preference *entities.UserPreference
	preference, err := s.recommendationRepository.GetPreferenceByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecommendationResponse{}, err
		}
		preference = nil
	}

	var restrictionIDs []uuid.UUID
	if preference != nil {
		for _, restriction := range preference.Restrictions {
			restrictionIDs = append(restrictionIDs, restriction.ID)
		}
	}

	candidates, err := s.recommendationRepository.GetCandidateRecipes(ctx, userID, restrictionIDs)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	recipeIDs := make([]uuid.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		recipeIDs = append(recipeIDs, candidate.ID)
	}

	stats, err := s.interactionRepository.GetStatsForRecipes(ctx, recipeIDs)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	ranked := make([]domain.RecipeResponse, 0, len(candidates))
	for _, candidate := range candidates {
		response := domain.ToRecipeResponse(candidate)
		recipeStats, ok := stats[candidate.ID]
		if ok && recipeStats.RatingCount > 0 {
			response.AverageRating = recipeStats.AverageRating
		} else {
			// Discovery surfaces treat an unrated recipe as 4.5.
			response.AverageRating = domain.DefaultRatingDiscovery
		}
		response.SaveCount = recipeStats.SaveCount
		response.TriedCount = recipeStats.TriedCount
		ranked = append(ranked, response)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		if ranked[i].SaveCount != ranked[j].SaveCount {
			return ranked[i].SaveCount > ranked[j].SaveCount
		}
		if ranked[i].TriedCount != ranked[j].TriedCount {
			return ranked[i].TriedCount > ranked[j].TriedCount
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return domain.RecommendationResponse{
		Recipes:    ranked,
		Preference: toPreferenceResponse(preference),
		Total:      len(ranked),
	}, nil
}

func toPreferenceResponse(preference *entities.UserPreference) *domain.PreferenceResponse {
	if preference == nil {
		return nil
	}
	restrictions := make([]string, 0, len(preference.Restrictions))
	for _, restriction := range preference.Restrictions {
		restrictions = append(restrictions, restriction.Name)
	}
	return &domain.PreferenceResponse{
		ID:           preference.ID.String(),
		SkillLevel:   preference.SkillLevel,
		Servings:     preference.Servings,
		Restrictions: restrictions,
	}
}
