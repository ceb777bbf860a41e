package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	LogStatusConsumed = "Consumed"
	LogStatusWasted   = "Wasted"
)

// ConsumptionLog is append-only history. Rows are never updated once written.
type ConsumptionLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	ItemName        string    `json:"item_name"`
	Category        string    `json:"category"`
	Status          string    `json:"status"` // "Consumed" or "Wasted"
	PriceLoss       float64   `json:"price_loss"`
	WeightLossGrams float64   `json:"weight_loss_grams"`
	LoggedAt        time.Time `gorm:"type:timestamp" json:"logged_at"`

	User *User `gorm:"foreignKey:UserID"`
}
