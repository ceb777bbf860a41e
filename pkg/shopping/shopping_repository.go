package shopping

import (
	"context"

	"nourish-backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddItem(ctx context.Context, item *entities.ShoppingItem) error
		AddItems(ctx context.Context, items []*entities.ShoppingItem) error
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error)
		GetItems(ctx context.Context, userID string) ([]entities.ShoppingItem, error)
		UpdateItem(ctx context.Context, item *entities.ShoppingItem) error
		DeleteItem(ctx context.Context, id string) error
		DeleteGeneratedItems(ctx context.Context, userID string) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) AddItems(ctx context.Context, items []*entities.ShoppingItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) GetItems(ctx context.Context, userID string) ([]entities.ShoppingItem, error) {
	var items []entities.ShoppingItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingItem{}).Error
}

func (r *shoppingRepository) DeleteGeneratedItems(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND source = ? AND is_purchased = false", userID, entities.ShoppingSourceGenerated).
		Delete(&entities.ShoppingItem{}).Error
}
