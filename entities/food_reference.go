package entities

import (
	"github.com/google/uuid"
)

// FoodReference is the seeded lookup table used to auto-fill expiry,
// price and nutrition when a user adds an item by name.
type FoodReference struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"uniqueIndex" json:"name"`
	Category      string    `json:"category"`
	ShelfLifeDays int       `json:"shelf_life_days"`
	CostPerUnit   float64   `json:"cost_per_unit"`
	Calories      int       `json:"calories"`
	Protein       float64   `json:"protein"`

	Timestamp
}
