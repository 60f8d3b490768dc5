package recommendation

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

func TestGetCandidateRecipesExcludesSavedAndTried(t *testing.T) {
	gormDB, mock, recorder := newRecordedDB(t)
	repo := NewRecommendationRepository(gormDB)

	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCandidateRecipes(context.Background(), uuid.NewString(), nil)
	require.NoError(t, err)
	require.Len(t, recorder.queries, 1)

	query := recorder.queries[0]
	assert.Contains(t, query, "is_active")
	assert.Contains(t, query, "NOT IN")
	assert.Contains(t, query, "recipe_interactions")
	assert.Contains(t, query, "is_saved")
	assert.Contains(t, query, "is_tried")
	// With no restrictions the exclusion clause must not appear at all.
	assert.NotContains(t, query, "recipe_restrictions")
	assert.Contains(t, query, "created_at desc")
}

func TestGetCandidateRecipesAppliesRestrictionFilter(t *testing.T) {
	gormDB, mock, recorder := newRecordedDB(t)
	repo := NewRecommendationRepository(gormDB)

	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCandidateRecipes(context.Background(), uuid.NewString(), []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	require.Len(t, recorder.queries, 1)

	query := recorder.queries[0]
	assert.Contains(t, query, "recipe_interactions")
	assert.Contains(t, query, "recipe_restrictions")
	assert.Contains(t, query, "dietary_restriction_id")
}
