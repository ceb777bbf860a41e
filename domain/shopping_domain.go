package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessGetShoppingItems   = "shopping items retrieved successfully"
	MessageSuccessDeleteShoppingItem = "shopping item deleted successfully"
	MessageSuccessPurchaseItem       = "shopping item marked as purchased"
	MessageSuccessGenerateList       = "shopping list generated successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedGetShoppingItems   = "failed to retrieve shopping items"
	MessageFailedDeleteShoppingItem = "failed to delete shopping item"
	MessageFailedPurchaseItem       = "failed to mark shopping item as purchased"
	MessageFailedGenerateList       = "failed to generate shopping list"

	ErrShoppingItemNotFound = errors.New("shopping item not found")
)

type (
	AddShoppingItemRequest struct {
		Name           string  `json:"name" validate:"required"`
		EstimatedPrice float64 `json:"estimated_price" validate:"omitempty,min=0"`
	}

	ShoppingItemResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		EstimatedPrice float64   `json:"estimated_price"`
		Source         string    `json:"source"`
		IsPurchased    bool      `json:"is_purchased"`
		CreatedAt      time.Time `json:"created_at"`
	}

	GenerateListRequest struct {
		Budget  float64 `json:"budget" validate:"required,gt=0"`
		Period  string  `json:"period" validate:"omitempty"`
		DietTag string  `json:"diet_tag" validate:"omitempty"`
	}

	GenerateListResponse struct {
		Items []ShoppingListItem `json:"items"`
	}
)
