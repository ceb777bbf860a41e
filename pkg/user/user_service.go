package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"
	"nourish-backend/internal/utils/mailing"
	"nourish-backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		GetResources(ctx context.Context) ([]domain.ResourceResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

const purposeResetPassword = "reset_password"

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.CheckEmailExist(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, domain.ErrPasswordHashInvalid
	}

	householdSize := req.HouseholdSize
	if householdSize == 0 {
		householdSize = 1
	}

	user := &entities.User{
		Email:         req.Email,
		Password:      string(hashed),
		FullName:      req.FullName,
		HouseholdSize: householdSize,
		DietaryPref:   req.DietaryPref,
		Location:      req.Location,
		Role:          domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return profileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.HouseholdSize > 0 {
		user.HouseholdSize = req.HouseholdSize
	}
	if req.DietaryPref != "" {
		user.DietaryPref = req.DietaryPref
	}
	if req.Location != "" {
		user.Location = req.Location
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.ProfileResponse{}, err
	}
	return profileResponse(user), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenMail(map[string]any{
		"user_id": user.ID.String(),
	}, time.Hour*24)
	if err != nil {
		return err
	}

	mailConfig := mailing.LoadMailConfig()
	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", mailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to NourishBot. Click the link below to verify your email.</p><p><a href=%q>Verify Email</a></p>",
		user.FullName, verifyLink,
	)

	return mailing.SendMail(user.Email, "Verify your NourishBot account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error {
	claims, err := s.jwtService.ValidateTokenMail(req.Token)
	if err != nil {
		return domain.ErrVerifyTokenExpired
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenMail(map[string]any{
		"user_id": user.ID.String(),
		"purpose": purposeResetPassword,
	}, time.Minute*30)
	if err != nil {
		return err
	}

	mailConfig := mailing.LoadMailConfig()
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", mailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>We received a request to reset your NourishBot password. Click the link below to choose a new one. The link expires in 30 minutes.</p><p><a href=%q>Reset Password</a></p>",
		user.FullName, resetLink,
	)

	return mailing.SendMail(user.Email, "Reset your NourishBot password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenMail(req.Token)
	if err != nil {
		return domain.ErrResetTokenExpired
	}

	// Verification tokens share the mail signing key; the purpose claim
	// keeps them from being replayed as reset tokens.
	if purpose, ok := claims["purpose"].(string); !ok || purpose != purposeResetPassword {
		return domain.ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrPasswordHashInvalid
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetResources(ctx context.Context) ([]domain.ResourceResponse, error) {
	resources, err := s.userRepository.GetResources(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		res = append(res, domain.ResourceResponse{
			ID:          resource.ID.String(),
			Title:       resource.Title,
			Description: resource.Description,
			Category:    resource.Category,
			Type:        resource.Type,
			URL:         resource.URL,
		})
	}
	return res, nil
}

func profileResponse(user *entities.User) domain.ProfileResponse {
	return domain.ProfileResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		FullName:      user.FullName,
		HouseholdSize: user.HouseholdSize,
		DietaryPref:   user.DietaryPref,
		Location:      user.Location,
		TotalExpenses: user.TotalExpenses,
		ImpactScore:   user.ImpactScore,
		IsVerified:    user.IsVerified,
	}
}
