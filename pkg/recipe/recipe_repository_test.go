package recipe

import (
	"Recipedia-Backend/domain"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures every statement GORM emits so tests can assert
// on the generated SQL itself.
type sqlRecorder struct {
	queries []string
}

func (r *sqlRecorder) record(_, actualSQL string) error {
	r.queries = append(r.queries, actualSQL)
	return nil
}

func newRecordedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sqlRecorder) {
	recorder := &sqlRecorder{}
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(recorder.record)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock, recorder
}

func expectListQueries(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func TestGetRecipesSearchPredicate(t *testing.T) {
	gormDB, mock, recorder := newRecordedDB(t)
	repo := NewRecipeRepository(gormDB)

	expectListQueries(mock)
	_, _, err := repo.GetRecipes(context.Background(), domain.RecipeListQuery{
		Search:   "pasta",
		MealType: "Dinner",
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, recorder.queries, 2)

	// Count and page run under the same predicate.
	for _, query := range recorder.queries {
		assert.Contains(t, query, "title ILIKE")
		assert.Contains(t, query, "description ILIKE")
		assert.Contains(t, query, "meal_type")
	}
	assert.Contains(t, recorder.queries[1], "created_at desc")
	assert.Contains(t, recorder.queries[1], "LIMIT")
}

func TestGetRecipesAllFilterSkipsExactMatch(t *testing.T) {
	gormDB, mock, recorder := newRecordedDB(t)
	repo := NewRecipeRepository(gormDB)

	expectListQueries(mock)
	_, _, err := repo.GetRecipes(context.Background(), domain.RecipeListQuery{
		MealType: domain.FilterAll,
		DishType: domain.FilterAll,
		Limit:    10,
	})
	require.NoError(t, err)

	assert.NotContains(t, recorder.queries[0], "meal_type")
	assert.NotContains(t, recorder.queries[0], "dish_type")
}

func TestGetRecipesActiveOnlyPinsIsActive(t *testing.T) {
	gormDB, mock, recorder := newRecordedDB(t)
	repo := NewRecipeRepository(gormDB)

	mock.ExpectQuery("").WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("").WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := repo.GetRecipes(context.Background(), domain.RecipeListQuery{
		ActiveOnly: true,
		// A stray status filter must not widen a public listing.
		Status: domain.StatusInactive,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.Contains(t, recorder.queries[0], "is_active")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipesStatusMapsToIsActive(t *testing.T) {
	gormDB, mock, recorder := newRecordedDB(t)
	repo := NewRecipeRepository(gormDB)

	mock.ExpectQuery("").WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("").WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := repo.GetRecipes(context.Background(), domain.RecipeListQuery{
		Status: domain.StatusInactive,
		Limit:  10,
	})
	require.NoError(t, err)
	assert.Contains(t, recorder.queries[0], "is_active")
	assert.NoError(t, mock.ExpectationsWereMet())

	recorder.queries = nil
	expectListQueries(mock)
	_, _, err = repo.GetRecipes(context.Background(), domain.RecipeListQuery{Limit: 10})
	require.NoError(t, err)
	// No status and no ActiveOnly: admin sees both states.
	assert.NotContains(t, recorder.queries[0], "is_active")
}
