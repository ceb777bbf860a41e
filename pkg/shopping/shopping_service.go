package shopping

import (
	"context"
	"errors"

	"nourish-backend/domain"
	"nourish-backend/entities"
	"nourish-backend/pkg/insight"
	"nourish-backend/pkg/inventory"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		GetItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error)
		DeleteItem(ctx context.Context, id string, userID string) error
		MarkPurchased(ctx context.Context, id string, userID string) error
		GenerateList(ctx context.Context, req domain.GenerateListRequest, userID string) (domain.GenerateListResponse, error)
	}

	shoppingService struct {
		shoppingRepository  ShoppingRepository
		inventoryRepository inventory.InventoryRepository
		budgetPlanner       *insight.BudgetPlanner
	}
)

func NewShoppingService(
	shoppingRepository ShoppingRepository,
	inventoryRepository inventory.InventoryRepository,
	budgetPlanner *insight.BudgetPlanner,
) ShoppingService {
	return &shoppingService{
		shoppingRepository:  shoppingRepository,
		inventoryRepository: inventoryRepository,
		budgetPlanner:       budgetPlanner,
	}
}

func (s *shoppingService) AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.ShoppingItem{
		UserID:         userUUID,
		Name:           req.Name,
		EstimatedPrice: req.EstimatedPrice,
		Source:         entities.ShoppingSourceManual,
	}
	if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	return shoppingItemResponse(item), nil
}

func (s *shoppingService) GetItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error) {
	items, err := s.shoppingRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ShoppingItemResponse, 0, len(items))
	for i := range items {
		res = append(res, shoppingItemResponse(&items[i]))
	}
	return res, nil
}

func (s *shoppingService) DeleteItem(ctx context.Context, id string, userID string) error {
	_, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.shoppingRepository.DeleteItem(ctx, id)
}

func (s *shoppingService) MarkPurchased(ctx context.Context, id string, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}
	item.IsPurchased = true
	return s.shoppingRepository.UpdateItem(ctx, item)
}

func (s *shoppingService) GenerateList(ctx context.Context, req domain.GenerateListRequest, userID string) (domain.GenerateListResponse, error) {
	if req.Budget <= 0 {
		return domain.GenerateListResponse{}, domain.ErrInvalidBudget
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateListResponse{}, domain.ErrParseUUID
	}

	inventoryItems, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.GenerateListResponse{}, err
	}
	itemNames := make([]string, 0, len(inventoryItems))
	for _, item := range inventoryItems {
		itemNames = append(itemNames, item.Name)
	}

	suggestions := s.budgetPlanner.Generate(ctx, req.Budget, req.Period, req.DietTag, itemNames)

	// Regenerating replaces earlier unpurchased suggestions instead of
	// stacking duplicates.
	if err := s.shoppingRepository.DeleteGeneratedItems(ctx, userID); err != nil {
		return domain.GenerateListResponse{}, err
	}

	generated := make([]*entities.ShoppingItem, 0, len(suggestions))
	for _, suggestion := range suggestions {
		generated = append(generated, &entities.ShoppingItem{
			UserID:         userUUID,
			Name:           suggestion.Name,
			EstimatedPrice: suggestion.EstimatedPrice,
			Source:         entities.ShoppingSourceGenerated,
		})
	}
	if err := s.shoppingRepository.AddItems(ctx, generated); err != nil {
		return domain.GenerateListResponse{}, err
	}

	return domain.GenerateListResponse{Items: suggestions}, nil
}

func (s *shoppingService) ownedItem(ctx context.Context, id string, userID string) (*entities.ShoppingItem, error) {
	item, err := s.shoppingRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}

func shoppingItemResponse(item *entities.ShoppingItem) domain.ShoppingItemResponse {
	return domain.ShoppingItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		EstimatedPrice: item.EstimatedPrice,
		Source:         item.Source,
		IsPurchased:    item.IsPurchased,
		CreatedAt:      item.CreatedAt,
	}
}
