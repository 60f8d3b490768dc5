package admin

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		GetAdminByEmail(ctx context.Context, email string) (*entities.Admin, error)
		GetRecipeStatsOverview(ctx context.Context) (domain.RecipeStatsOverviewResponse, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetAdminByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetRecipeStatsOverview(ctx context.Context) (domain.RecipeStatsOverviewResponse, error) {
	var stats domain.RecipeStatsOverviewResponse

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Count(&stats.TotalRecipes).Error; err != nil {
		return domain.RecipeStatsOverviewResponse{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveRecipes).Error; err != nil {
		return domain.RecipeStatsOverviewResponse{}, err
	}
	stats.InactiveRecipes = stats.TotalRecipes - stats.ActiveRecipes

	if err := r.db.WithContext(ctx).Model(&entities.RecipeInteraction{}).
		Where("is_saved = ?", true).
		Count(&stats.TotalSaves).Error; err != nil {
		return domain.RecipeStatsOverviewResponse{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.RecipeInteraction{}).
		Where("is_tried = ?", true).
		Count(&stats.TotalTried).Error; err != nil {
		return domain.RecipeStatsOverviewResponse{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.RecipeInteraction{}).
		Where("rating IS NOT NULL").
		Count(&stats.TotalRatings).Error; err != nil {
		return domain.RecipeStatsOverviewResponse{}, err
	}

	// Admin surfaces report 0 when nothing has been rated yet.
	if err := r.db.WithContext(ctx).Model(&entities.RecipeInteraction{}).
		Where("rating IS NOT NULL").
		Select("COALESCE(AVG(rating), 0)").
		Scan(&stats.AverageRating).Error; err != nil {
		return domain.RecipeStatsOverviewResponse{}, err
	}

	return stats, nil
}
