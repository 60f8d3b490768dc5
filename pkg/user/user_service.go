package user

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/entities"
	"Recipedia-Backend/internal/utils"
	"Recipedia-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Verify(ctx context.Context, req domain.VerifyRequest) (domain.LoginResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

const verificationCodeTTL = 24 * time.Hour

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Register creates an unverified account and a pending-verification row
// holding a one-time numeric code. Login stays blocked until the code
// is confirmed; delivery of the code happens out of band.
func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	verification := &entities.PendingVerification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      fmt.Sprintf("%06d", rand.Intn(1000000)),
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}
	if err := s.userRepository.CreatePendingVerification(ctx, verification); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{UserID: user.ID.String()}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	// An outstanding pending-verification row blocks login regardless
	// of the password.
	if _, err := s.userRepository.GetPendingVerificationByUserID(ctx, user.ID); err == nil {
		return domain.LoginResponse{}, domain.ErrAccountNotVerified
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.LoginResponse{}, err
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String()),
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Verify(ctx context.Context, req domain.VerifyRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidVerificationCode
		}
		return domain.LoginResponse{}, err
	}

	verification, err := s.userRepository.GetPendingVerificationByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidVerificationCode
		}
		return domain.LoginResponse{}, err
	}

	if time.Now().After(verification.ExpiresAt) {
		return domain.LoginResponse{}, domain.ErrVerificationExpired
	}
	if verification.Code != req.Code {
		return domain.LoginResponse{}, domain.ErrInvalidVerificationCode
	}

	if err := s.userRepository.MarkUserVerified(ctx, user.ID); err != nil {
		return domain.LoginResponse{}, err
	}
	if err := s.userRepository.DeletePendingVerification(ctx, verification.ID); err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String()),
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
