package entities

import (
	"github.com/google/uuid"
)

const (
	ShoppingSourceManual    = "manual"
	ShoppingSourceGenerated = "generated"
)

type ShoppingItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	EstimatedPrice float64   `json:"estimated_price"`
	Source         string    `json:"source"` // "manual" or "generated"
	IsPurchased    bool      `json:"is_purchased"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
