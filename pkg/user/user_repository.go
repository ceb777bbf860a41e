package user

import (
	"context"
	"errors"

	"nourish-backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		CheckEmailExist(ctx context.Context, email string) (bool, error)
		AddExpense(ctx context.Context, userID string, amount float64) error
		UpdateImpactScore(ctx context.Context, userID string, score int) error

		GetResources(ctx context.Context) ([]entities.Resource, error)
		GetResourcesByCategory(ctx context.Context, category string, limit int) ([]entities.Resource, error)
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

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CheckEmailExist(ctx context.Context, email string) (bool, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *userRepository) AddExpense(ctx context.Context, userID string, amount float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("total_expenses", gorm.Expr("total_expenses + ?", amount)).Error
}

func (r *userRepository) UpdateImpactScore(ctx context.Context, userID string, score int) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("impact_score", score).Error
}

func (r *userRepository) GetResources(ctx context.Context) ([]entities.Resource, error) {
	var resources []entities.Resource
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *userRepository) GetResourcesByCategory(ctx context.Context, category string, limit int) ([]entities.Resource, error) {
	var resources []entities.Resource
	query := r.db.WithContext(ctx).Where("category = ?", category)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
