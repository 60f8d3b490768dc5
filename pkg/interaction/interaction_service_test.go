package interaction

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

type fakeInteractionRepository struct {
	records map[string]*entities.RecipeInteraction
	stats   map[string]domain.RecipeStats
}

func newFakeInteractionRepository() *fakeInteractionRepository {
	return &fakeInteractionRepository{
		records: make(map[string]*entities.RecipeInteraction),
		stats:   make(map[string]domain.RecipeStats),
	}
}

func key(userID, recipeID uuid.UUID) string {
	return userID.String() + "|" + recipeID.String()
}

func (f *fakeInteractionRepository) GetByUserAndRecipe(_ context.Context, userID, recipeID uuid.UUID) (*entities.RecipeInteraction, error) {
	record, ok := f.records[key(userID, recipeID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeInteractionRepository) CreateInteraction(_ context.Context, interaction *entities.RecipeInteraction) error {
	copied := *interaction
	f.records[key(interaction.UserID, interaction.RecipeID)] = &copied
	return nil
}

func (f *fakeInteractionRepository) UpdateInteraction(_ context.Context, interaction *entities.RecipeInteraction) error {
	copied := *interaction
	f.records[key(interaction.UserID, interaction.RecipeID)] = &copied
	return nil
}

func (f *fakeInteractionRepository) GetRecipeStats(_ context.Context, recipeID string) (domain.RecipeStats, error) {
	return f.stats[recipeID], nil
}

func (f *fakeInteractionRepository) GetStatsForRecipes(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]domain.RecipeStats, error) {
	return map[uuid.UUID]domain.RecipeStats{}, nil
}

func (f *fakeInteractionRepository) GetSavedRecipes(_ context.Context, _ string, _, _ int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

type fakeRecipeCatalog struct {
	known      map[uuid.UUID]bool
	getCalls   int
	countCalls int
}

func (f *fakeRecipeCatalog) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	f.getCalls++
	recipeUUID, err := uuid.Parse(id)
	if err != nil || !f.known[recipeUUID] {
		return nil, gorm.ErrRecordNotFound
	}
	return &entities.Recipe{ID: recipeUUID}, nil
}

func (f *fakeRecipeCatalog) CountByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	f.countCalls++
	var count int64
	for _, id := range ids {
		if f.known[id] {
			count++
		}
	}
	return count, nil
}

func newFakeRecipeCatalog(recipeIDs ...uuid.UUID) *fakeRecipeCatalog {
	catalog := &fakeRecipeCatalog{known: make(map[uuid.UUID]bool)}
	for _, id := range recipeIDs {
		catalog.known[id] = true
	}
	return catalog
}

func setupService(recipeIDs ...uuid.UUID) (InteractionService, *fakeInteractionRepository) {
	repo := newFakeInteractionRepository()
	return NewInteractionService(repo, newFakeRecipeCatalog(recipeIDs...)), repo
}

func TestSetSavedIsIdempotent(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()
	svc, repo := setupService(recipeID)
	ctx := context.Background()

	require.NoError(t, svc.SetSaved(ctx, userID.String(), recipeID.String(), true))
	require.NoError(t, svc.SetSaved(ctx, userID.String(), recipeID.String(), true))

	assert.Len(t, repo.records, 1)
	record := repo.records[key(userID, recipeID)]
	assert.True(t, record.IsSaved)
	assert.NotNil(t, record.SavedAt)
}

func TestSaveAndTriedShareOneRecord(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()
	svc, repo := setupService(recipeID)
	ctx := context.Background()

	require.NoError(t, svc.SetSaved(ctx, userID.String(), recipeID.String(), true))
	require.NoError(t, svc.SetTried(ctx, userID.String(), recipeID.String(), true))

	assert.Len(t, repo.records, 1)
	record := repo.records[key(userID, recipeID)]
	assert.True(t, record.IsSaved)
	assert.True(t, record.IsTried)
	assert.NotNil(t, record.SavedAt)
	assert.NotNil(t, record.TriedAt)
}

func TestUnsaveClearsFacetKeepsRow(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()
	svc, repo := setupService(recipeID)
	ctx := context.Background()

	require.NoError(t, svc.SetSaved(ctx, userID.String(), recipeID.String(), true))
	require.NoError(t, svc.SetTried(ctx, userID.String(), recipeID.String(), true))
	require.NoError(t, svc.SetSaved(ctx, userID.String(), recipeID.String(), false))

	assert.Len(t, repo.records, 1)
	record := repo.records[key(userID, recipeID)]
	assert.False(t, record.IsSaved)
	assert.Nil(t, record.SavedAt)
	// The tried facet is untouched.
	assert.True(t, record.IsTried)
	assert.NotNil(t, record.TriedAt)
}

func TestSetRatingRejectsOutOfRange(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()
	svc, repo := setupService(recipeID)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetRating(ctx, userID.String(), recipeID.String(), 0), domain.ErrInvalidRating)
	assert.ErrorIs(t, svc.SetRating(ctx, userID.String(), recipeID.String(), 6), domain.ErrInvalidRating)
	assert.Empty(t, repo.records)
}

func TestRemoveRatingKeepsOtherFacets(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()
	svc, repo := setupService(recipeID)
	ctx := context.Background()

	require.NoError(t, svc.SetSaved(ctx, userID.String(), recipeID.String(), true))
	require.NoError(t, svc.SetRating(ctx, userID.String(), recipeID.String(), 4))
	require.NoError(t, svc.RemoveRating(ctx, userID.String(), recipeID.String()))

	assert.Len(t, repo.records, 1)
	record := repo.records[key(userID, recipeID)]
	assert.Nil(t, record.Rating)
	assert.Nil(t, record.RatedAt)
	assert.True(t, record.IsSaved)
}

func TestSetSavedUnknownRecipe(t *testing.T) {
	svc, repo := setupService()
	ctx := context.Background()

	err := svc.SetSaved(ctx, uuid.NewString(), uuid.NewString(), true)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Empty(t, repo.records)
}

func TestBulkSaveAllOrNothing(t *testing.T) {
	userID := uuid.New()
	known := uuid.New()
	unknown := uuid.New()
	svc, repo := setupService(known)
	ctx := context.Background()

	err := svc.BulkSave(ctx, userID.String(), []string{known.String(), unknown.String()})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	// Validation fails before any write.
	assert.Empty(t, repo.records)
}

func TestBulkSaveDeduplicatesAndSaves(t *testing.T) {
	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	svc, repo := setupService(first, second)
	ctx := context.Background()

	err := svc.BulkSave(ctx, userID.String(), []string{
		first.String(), second.String(), first.String(),
	})
	require.NoError(t, err)

	assert.Len(t, repo.records, 2)
	assert.True(t, repo.records[key(userID, first)].IsSaved)
	assert.True(t, repo.records[key(userID, second)].IsSaved)
}

func TestBulkSaveChecksCatalogOnce(t *testing.T) {
	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	repo := newFakeInteractionRepository()
	catalog := newFakeRecipeCatalog(first, second)
	svc := NewInteractionService(repo, catalog)

	err := svc.BulkSave(context.Background(), userID.String(), []string{first.String(), second.String()})
	require.NoError(t, err)

	assert.Len(t, repo.records, 2)
	// The batch count covers existence; no per-recipe lookups follow.
	assert.Equal(t, 1, catalog.countCalls)
	assert.Zero(t, catalog.getCalls)
}

func TestAggregateMetricsFallbackPerCallSite(t *testing.T) {
	recipeID := uuid.New()
	svc, repo := setupService(recipeID)
	ctx := context.Background()

	repo.stats[recipeID.String()] = domain.RecipeStats{
		RatingCount: 0,
		SaveCount:   3,
		TriedCount:  1,
	}

	adminView, err := svc.GetAggregateMetrics(ctx, recipeID.String(), domain.DefaultRatingAdmin)
	require.NoError(t, err)
	assert.Equal(t, 0.0, adminView.AverageRating)

	discoveryView, err := svc.GetAggregateMetrics(ctx, recipeID.String(), domain.DefaultRatingDiscovery)
	require.NoError(t, err)
	assert.Equal(t, 4.5, discoveryView.AverageRating)
	assert.Equal(t, int64(3), discoveryView.SaveCount)
	assert.Equal(t, int64(1), discoveryView.TriedCount)
}

func TestAggregateMetricsUsesActualAverage(t *testing.T) {
	recipeID := uuid.New()
	svc, repo := setupService(recipeID)
	ctx := context.Background()

	repo.stats[recipeID.String()] = domain.RecipeStats{
		AverageRating: 3.25,
		RatingCount:   4,
		SaveCount:     10,
		TriedCount:    5,
	}

	metrics, err := svc.GetAggregateMetrics(ctx, recipeID.String(), domain.DefaultRatingDiscovery)
	require.NoError(t, err)
	assert.Equal(t, 3.25, metrics.AverageRating)
}
