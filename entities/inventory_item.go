package entities

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"` // "Dairy", "Fruit", "Vegetable", "Meat", "Grain", "Protein", "Other", ...
	Quantity        int        `json:"quantity"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
	UnitPrice       float64    `json:"unit_price"`
	UnitWeightGrams float64    `json:"unit_weight_grams"`
	Calories        int        `json:"calories"`
	Protein         float64    `json:"protein"`
	ImageURL        string     `json:"image_url,omitempty"`
	ReceiptScanID   *string    `json:"receipt_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
