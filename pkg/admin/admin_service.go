package admin

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"Recipedia-Backend/internal/utils"
	"Recipedia-Backend/pkg/jwt"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	AdminService interface {
		Login(ctx context.Context, req domain.AdminLoginRequest) (domain.AdminLoginResponse, error)
		GetRecipeStatsOverview(ctx context.Context) (domain.RecipeStatsOverviewResponse, error)
	}

	adminService struct {
		adminRepository AdminRepository
		jwtService      jwt.JWTService
	}
)

func NewAdminService(adminRepository AdminRepository, jwtService jwt.JWTService) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		jwtService:      jwtService,
	}
}

func (s *adminService) Login(ctx context.Context, req domain.AdminLoginRequest) (domain.AdminLoginResponse, error) {
	admin, err := s.adminRepository.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AdminLoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AdminLoginResponse{}, err
	}

	if !utils.VerifyPassword(admin.Password, req.Password) {
		return domain.AdminLoginResponse{}, domain.ErrCredentialsInvalid
	}

	return domain.AdminLoginResponse{
		Token: s.jwtService.GenerateTokenAdmin(admin),
		Admin: toAdminResponse(admin),
	}, nil
}

func (s *adminService) GetRecipeStatsOverview(ctx context.Context) (domain.RecipeStatsOverviewResponse, error) {
	return s.adminRepository.GetRecipeStatsOverview(ctx)
}

func toAdminResponse(admin *entities.Admin) domain.AdminResponse {
	return domain.AdminResponse{
		ID:        admin.ID.String(),
		Email:     admin.Email,
		Username:  admin.Username,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      admin.Role,
	}
}
