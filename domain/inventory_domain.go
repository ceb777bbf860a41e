package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem          = "inventory item added successfully"
	MessageSuccessUpdateItem       = "inventory item updated successfully"
	MessageSuccessDeleteItem       = "inventory item deleted successfully"
	MessageSuccessGetItems         = "inventory items retrieved successfully"
	MessageSuccessConsumeItem      = "item consumption logged successfully"
	MessageSuccessWasteItem        = "item waste logged successfully"
	MessageSuccessGetDashboard     = "dashboard statistics retrieved successfully"
	MessageSuccessUploadReceipt    = "receipt uploaded successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"
	MessageSuccessUploadItemImage  = "item image uploaded successfully"

	MessageFailedAddItem          = "failed to add inventory item"
	MessageFailedUpdateItem       = "failed to update inventory item"
	MessageFailedDeleteItem       = "failed to delete inventory item"
	MessageFailedGetItems         = "failed to retrieve inventory items"
	MessageFailedConsumeItem      = "failed to log item consumption"
	MessageFailedWasteItem        = "failed to log item waste"
	MessageFailedGetDashboard     = "failed to retrieve dashboard statistics"
	MessageFailedUploadReceipt    = "failed to upload receipt"
	MessageFailedSaveScannedItems = "failed to save scanned items"
	MessageFailedUploadItemImage  = "failed to upload item image"

	ErrItemNotFound        = errors.New("inventory item not found")
	ErrInvalidExpiryDate   = errors.New("invalid expiration date")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidReceiptScan  = errors.New("invalid receipt scan ID")
	ErrUnauthorizedAccess  = errors.New("unauthorized access to inventory item")
	ErrNothingLeftToLog    = errors.New("item has no remaining quantity")
	ErrInvalidImageFormat  = errors.New("invalid image format")
	ErrReceiptScanNotReady = errors.New("receipt scan is still pending")
)

type (
	AddItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
		Category string `json:"category" validate:"required"`
		// Optional; when omitted the food reference table fills it in.
		ExpirationDate  string  `json:"expiration_date" validate:"omitempty"`
		UnitPrice       float64 `json:"unit_price" validate:"omitempty,min=0"`
		UnitWeightGrams float64 `json:"unit_weight_grams" validate:"omitempty,min=0"`
	}

	AddItemResponse struct {
		ID             string     `json:"id"`
		Name           string     `json:"name"`
		Category       string     `json:"category"`
		Quantity       int        `json:"quantity"`
		ExpirationDate *time.Time `json:"expiration_date,omitempty"`
		UnitPrice      float64    `json:"unit_price"`
		Calories       int        `json:"calories"`
		Protein        float64    `json:"protein"`
	}

	UpdateItemRequest struct {
		Name            string  `json:"name" validate:"omitempty"`
		Quantity        int     `json:"quantity" validate:"omitempty,min=1"`
		Category        string  `json:"category" validate:"omitempty"`
		ExpirationDate  string  `json:"expiration_date" validate:"omitempty"`
		UnitPrice       float64 `json:"unit_price" validate:"omitempty,min=0"`
		UnitWeightGrams float64 `json:"unit_weight_grams" validate:"omitempty,min=0"`
	}

	ItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Category        string     `json:"category"`
		Quantity        int        `json:"quantity"`
		ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
		UnitPrice       float64    `json:"unit_price"`
		UnitWeightGrams float64    `json:"unit_weight_grams"`
		Calories        int        `json:"calories"`
		Protein         float64    `json:"protein"`
		ImageURL        string     `json:"image_url,omitempty"`
		CreatedAt       time.Time  `json:"created_at"`
	}

	ConsumeItemRequest struct {
		ItemID string `json:"item_id" validate:"required,uuid"`
	}

	WasteItemRequest struct {
		ItemID string `json:"item_id" validate:"required,uuid"`
	}

	LogResponse struct {
		ItemName        string    `json:"item_name"`
		Category        string    `json:"category"`
		Status          string    `json:"status"`
		PriceLoss       float64   `json:"price_loss"`
		WeightLossGrams float64   `json:"weight_loss_grams"`
		LoggedAt        time.Time `json:"logged_at"`
	}

	DashboardResponse struct {
		InventoryCount  int              `json:"inventory_count"`
		TotalValue      float64          `json:"total_value"`
		TotalCalories   int              `json:"total_calories"`
		TotalProtein    float64          `json:"total_protein"`
		CategoryCounts  map[string]int   `json:"category_counts"`
		RecentLogs      []LogResponse    `json:"recent_logs"`
		Recommendations []Recommendation `json:"recommendations"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string   `json:"scan_id"`
		ImageURL string   `json:"image_url"`
		Status   string   `json:"status"`
		Items    []string `json:"items,omitempty"`
	}

	ScannedItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
		Category string `json:"category" validate:"required"`
	}

	SaveScannedItemsRequest struct {
		ScanID string               `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItemRequest `json:"items" validate:"required,dive"`
	}
)
