package recipe

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes   map[string]*entities.Recipe
	lastQuery domain.RecipeListQuery
	listed    []*entities.Recipe
	total     int64
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[string]*entities.Recipe)}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *recipe
	return &copied, nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, query domain.RecipeListQuery) ([]*entities.Recipe, int64, error) {
	f.lastQuery = query
	return f.listed, f.total, nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepository) CountByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := f.recipes[id.String()]; ok {
			count++
		}
	}
	return count, nil
}

func (f *fakeRecipeRepository) GetFilterValues(_ context.Context) ([]string, []string, error) {
	return []string{"Breakfast", "Dinner"}, []string{"Main Course"}, nil
}

func (f *fakeRecipeRepository) ReplaceRestrictions(_ context.Context, _ *entities.Recipe, _ []uuid.UUID) error {
	return nil
}

type stubInteractionRepository struct {
	stats map[string]domain.RecipeStats
}

func (s *stubInteractionRepository) GetByUserAndRecipe(_ context.Context, _, _ uuid.UUID) (*entities.RecipeInteraction, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubInteractionRepository) CreateInteraction(_ context.Context, _ *entities.RecipeInteraction) error {
	return nil
}

func (s *stubInteractionRepository) UpdateInteraction(_ context.Context, _ *entities.RecipeInteraction) error {
	return nil
}

func (s *stubInteractionRepository) GetRecipeStats(_ context.Context, recipeID string) (domain.RecipeStats, error) {
	return s.stats[recipeID], nil
}

func (s *stubInteractionRepository) GetStatsForRecipes(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]domain.RecipeStats, error) {
	return map[uuid.UUID]domain.RecipeStats{}, nil
}

func (s *stubInteractionRepository) GetSavedRecipes(_ context.Context, _ string, _, _ int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func intPtr(v int) *int { return &v }

func TestDeriveTotalTime(t *testing.T) {
	cases := []struct {
		name     string
		prep     *int
		cook     *int
		explicit *int
		want     *int
	}{
		{"prep plus cook", intPtr(10), intPtr(20), nil, intPtr(30)},
		{"missing prep", nil, intPtr(20), nil, nil},
		{"missing cook", intPtr(10), nil, nil, nil},
		{"explicit wins", intPtr(10), intPtr(20), intPtr(99), intPtr(99)},
		{"all absent", nil, nil, nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveTotalTime(tc.prep, tc.cook, tc.explicit)
			if tc.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestListRecipesClampsPagination(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, &stubInteractionRepository{})
	ctx := context.Background()

	cases := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"over max", 500, 0, domain.MaxListLimit, 0},
		{"zero limit", 0, 10, domain.DefaultListLimit, 10},
		{"negative offset", 20, -5, 20, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ListRecipes(ctx, domain.RecipeListQuery{Limit: tc.limit, Offset: tc.offset})
			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, repo.lastQuery.Limit)
			assert.Equal(t, tc.wantOffset, repo.lastQuery.Offset)
		})
	}
}

func TestListRecipesHasMore(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.listed = []*entities.Recipe{
		{ID: uuid.New(), Title: "Pancakes"},
		{ID: uuid.New(), Title: "Waffles"},
	}
	repo.total = 5
	svc := NewRecipeService(repo, &stubInteractionRepository{})

	result, err := svc.ListRecipes(context.Background(), domain.RecipeListQuery{Limit: 2, Offset: 0})
	require.NoError(t, err)

	assert.Len(t, result.Recipes, 2)
	assert.Equal(t, int64(5), result.Total)
	assert.True(t, result.HasMore)

	repo.total = 2
	result, err = svc.ListRecipes(context.Background(), domain.RecipeListQuery{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.False(t, result.HasMore)
}

func TestGetRecipeDetailRatingFallback(t *testing.T) {
	repo := newFakeRecipeRepository()
	stats := &stubInteractionRepository{stats: make(map[string]domain.RecipeStats)}
	svc := NewRecipeService(repo, stats)
	ctx := context.Background()

	recipeID := uuid.New()
	repo.recipes[recipeID.String()] = &entities.Recipe{ID: recipeID, Title: "Soup"}

	// No ratings yet: the caller-supplied default applies.
	detail, err := svc.GetRecipeDetail(ctx, recipeID.String(), domain.DefaultRatingDiscovery)
	require.NoError(t, err)
	assert.Equal(t, 4.5, detail.AverageRating)

	detail, err = svc.GetRecipeDetail(ctx, recipeID.String(), domain.DefaultRatingAdmin)
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.AverageRating)

	stats.stats[recipeID.String()] = domain.RecipeStats{AverageRating: 2.5, RatingCount: 2, SaveCount: 7}
	detail, err = svc.GetRecipeDetail(ctx, recipeID.String(), domain.DefaultRatingDiscovery)
	require.NoError(t, err)
	assert.Equal(t, 2.5, detail.AverageRating)
	assert.Equal(t, int64(7), detail.SaveCount)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), &stubInteractionRepository{})

	_, err := svc.GetRecipeDetail(context.Background(), uuid.NewString(), domain.DefaultRatingDiscovery)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCreateRecipeDerivesTotalTime(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, &stubInteractionRepository{})

	created, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:           "Stew",
		PrepTimeMinutes: intPtr(15),
		CookTimeMinutes: intPtr(45),
	})
	require.NoError(t, err)

	require.NotNil(t, created.TotalTimeMinutes)
	assert.Equal(t, 60, *created.TotalTimeMinutes)
}

func TestUpdateRecipeRederivesTotalTime(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, &stubInteractionRepository{})
	ctx := context.Background()

	recipeID := uuid.New()
	repo.recipes[recipeID.String()] = &entities.Recipe{
		ID:               recipeID,
		Title:            "Curry",
		PrepTimeMinutes:  intPtr(10),
		CookTimeMinutes:  intPtr(30),
		TotalTimeMinutes: intPtr(40),
	}

	err := svc.UpdateRecipe(ctx, recipeID.String(), domain.UpdateRecipeRequest{
		CookTimeMinutes: intPtr(50),
	})
	require.NoError(t, err)

	updated := repo.recipes[recipeID.String()]
	require.NotNil(t, updated.TotalTimeMinutes)
	assert.Equal(t, 60, *updated.TotalTimeMinutes)
}

func TestToggleStatusFlips(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, &stubInteractionRepository{})
	ctx := context.Background()

	recipeID := uuid.New()
	repo.recipes[recipeID.String()] = &entities.Recipe{ID: recipeID, IsActive: true}

	active, err := svc.ToggleStatus(ctx, recipeID.String())
	require.NoError(t, err)
	assert.False(t, active)

	active, err = svc.ToggleStatus(ctx, recipeID.String())
	require.NoError(t, err)
	assert.True(t, active)
}
