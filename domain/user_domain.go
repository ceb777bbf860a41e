package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessSendVerifyMail = "verification email sent"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessForgotPass     = "password reset email sent"
	MessageSuccessResetPass      = "password reset successfully"
	MessageSuccessGetResources   = "resources retrieved successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedSendVerifyMail = "failed to send verification email"
	MessageFailedVerifyEmail    = "failed to verify email"
	MessageFailedForgotPass     = "failed to send password reset email"
	MessageFailedResetPass      = "failed to reset password"
	MessageFailedGetResources   = "failed to retrieve resources"

	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrVerifyTokenExpired  = errors.New("verification token expired")
	ErrResetTokenExpired   = errors.New("password reset token expired")
	ErrPasswordHashInvalid = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required,min=8"`
		FullName      string `json:"full_name" validate:"required"`
		HouseholdSize int    `json:"household_size" validate:"omitempty,min=1"`
		DietaryPref   string `json:"dietary_pref"`
		Location      string `json:"location"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		FullName      string `json:"full_name" validate:"omitempty"`
		HouseholdSize int    `json:"household_size" validate:"omitempty,min=1"`
		DietaryPref   string `json:"dietary_pref" validate:"omitempty"`
		Location      string `json:"location" validate:"omitempty"`
	}

	ProfileResponse struct {
		ID            string  `json:"id"`
		Email         string  `json:"email"`
		FullName      string  `json:"full_name"`
		HouseholdSize int     `json:"household_size"`
		DietaryPref   string  `json:"dietary_pref"`
		Location      string  `json:"location"`
		TotalExpenses float64 `json:"total_expenses"`
		ImpactScore   int     `json:"impact_score"`
		IsVerified    bool    `json:"is_verified"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	VerifyEmailRequest struct {
		Token string `json:"token" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	ResourceResponse struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Type        string `json:"type"`
		URL         string `json:"url"`
	}

	Recommendation struct {
		Resource ResourceResponse `json:"resource"`
		Label    string           `json:"label"`
	}
)
