package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully, verification required"
	MessageSuccessLogin    = "login successful"
	MessageSuccessVerify   = "account verified successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedVerify   = "failed to verify account"

	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrCredentialsInvalid      = errors.New("invalid email or password")
	ErrUserNotFound            = errors.New("user not found")
	ErrAccountNotVerified      = errors.New("account pending verification")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationExpired     = errors.New("verification code expired")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,strongpassword"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"omitempty"`
	}

	RegisterResponse struct {
		UserID string `json:"userId"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	VerifyRequest struct {
		Email string `json:"email" validate:"required,email"`
		Code  string `json:"code" validate:"required,numeric"`
	}

	UserResponse struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
