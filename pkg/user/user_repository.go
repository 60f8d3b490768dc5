package user

import (
	"Recipedia-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		CheckEmailExists(ctx context.Context, email string) (bool, error)
		MarkUserVerified(ctx context.Context, userID uuid.UUID) error

		CreatePendingVerification(ctx context.Context, verification *entities.PendingVerification) error
		GetPendingVerificationByUserID(ctx context.Context, userID uuid.UUID) (*entities.PendingVerification, error)
		DeletePendingVerification(ctx context.Context, id uuid.UUID) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) MarkUserVerified(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("is_verified", true).Error
}

func (r *userRepository) CreatePendingVerification(ctx context.Context, verification *entities.PendingVerification) error {
	return r.db.WithContext(ctx).Create(verification).Error
}

func (r *userRepository) GetPendingVerificationByUserID(ctx context.Context, userID uuid.UUID) (*entities.PendingVerification, error) {
	var verification entities.PendingVerification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&verification).Error; err != nil {
		return nil, err
	}
	return &verification, nil
}

func (r *userRepository) DeletePendingVerification(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.PendingVerification{}).Error
}
