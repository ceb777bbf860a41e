package user

import (
	"context"
	"testing"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"
	"nourish-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) CheckEmailExist(_ context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(context.Background(), email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserRepository) AddExpense(_ context.Context, userID string, amount float64) error {
	if user, ok := f.users[userID]; ok {
		user.TotalExpenses += amount
	}
	return nil
}

func (f *fakeUserRepository) UpdateImpactScore(_ context.Context, userID string, score int) error {
	if user, ok := f.users[userID]; ok {
		user.ImpactScore = score
	}
	return nil
}

func (f *fakeUserRepository) GetResources(_ context.Context) ([]entities.Resource, error) {
	return nil, nil
}

func (f *fakeUserRepository) GetResourcesByCategory(_ context.Context, _ string, _ int) ([]entities.Resource, error) {
	return nil, nil
}

func seedUser(t *testing.T, repo *fakeUserRepository, password string) *entities.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &entities.User{
		ID:       uuid.New(),
		Email:    "ana@example.com",
		Password: string(hashed),
		FullName: "Ana",
		Role:     domain.RoleUser,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func TestResetPasswordUpdatesHash(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	service := NewUserService(repo, jwtService)

	user := seedUser(t, repo, "old-password")

	token, err := jwtService.GenerateTokenMail(map[string]any{
		"user_id": user.ID.String(),
		"purpose": purposeResetPassword,
	}, time.Minute*30)
	require.NoError(t, err)

	err = service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new-password",
	})
	require.NoError(t, err)

	stored, err := repo.GetUserByID(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("brand-new-password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("old-password")))
}

func TestResetPasswordRejectsGarbageToken(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	seedUser(t, repo, "old-password")

	err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       "not-a-token",
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, domain.ErrResetTokenExpired)
}

func TestResetPasswordRejectsVerificationToken(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	service := NewUserService(repo, jwtService)

	user := seedUser(t, repo, "old-password")

	// An email verification token carries no purpose claim and must not
	// be usable to change the password.
	token, err := jwtService.GenerateTokenMail(map[string]any{
		"user_id": user.ID.String(),
	}, time.Hour*24)
	require.NoError(t, err)

	err = service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	stored, err := repo.GetUserByID(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("old-password")))
}

func TestResetPasswordUnknownUser(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	service := NewUserService(repo, jwtService)

	token, err := jwtService.GenerateTokenMail(map[string]any{
		"user_id": uuid.NewString(),
		"purpose": purposeResetPassword,
	}, time.Minute*30)
	require.NoError(t, err)

	err = service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
