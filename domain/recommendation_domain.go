package domain

var (
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"
	MessageFailedGetRecommendations  = "failed to retrieve recommendations"
)

type (
	PreferenceResponse struct {
		ID           string   `json:"id"`
		SkillLevel   string   `json:"skill_level,omitempty"`
		Servings     int      `json:"servings,omitempty"`
		Restrictions []string `json:"restrictions"`
	}

	RecommendationResponse struct {
		Recipes    []RecipeResponse    `json:"recipes"`
		Preference *PreferenceResponse `json:"preference"`
		Total      int                 `json:"total"`
	}
)
