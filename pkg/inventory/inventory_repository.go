package inventory

import (
	"context"

	"nourish-backend/entities"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, userID string) ([]entities.InventoryItem, error)

		CreateLog(ctx context.Context, log *entities.ConsumptionLog) error
		GetLogs(ctx context.Context, userID string) ([]entities.ConsumptionLog, error)
		GetRecentLogs(ctx context.Context, userID string, limit int) ([]entities.ConsumptionLog, error)

		CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error

		GetFoodReferenceByName(ctx context.Context, name string) (*entities.FoodReference, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetItems(ctx context.Context, userID string) ([]entities.InventoryItem, error) {
	var items []entities.InventoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiration_date asc NULLS LAST").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) CreateLog(ctx context.Context, log *entities.ConsumptionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *inventoryRepository) GetLogs(ctx context.Context, userID string) ([]entities.ConsumptionLog, error) {
	var logs []entities.ConsumptionLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at desc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *inventoryRepository) GetRecentLogs(ctx context.Context, userID string, limit int) ([]entities.ConsumptionLog, error) {
	var logs []entities.ConsumptionLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *inventoryRepository) CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *inventoryRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var scan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *inventoryRepository) UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

func (r *inventoryRepository) GetFoodReferenceByName(ctx context.Context, name string) (*entities.FoodReference, error) {
	var ref entities.FoodReference
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}
