package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Password      string    `json:"-"`
	FullName      string    `json:"full_name"`
	HouseholdSize int       `json:"household_size"`
	DietaryPref   string    `json:"dietary_pref"`
	Location      string    `json:"location"`
	TotalExpenses float64   `json:"total_expenses"`
	// ImpactScore holds the last sustainability score computed by the
	// insight service. The engine itself never writes it.
	ImpactScore int    `json:"impact_score"`
	Role        string `json:"role"`
	IsVerified  bool   `json:"is_verified"`

	InventoryItems  []*InventoryItem  `gorm:"foreignKey:UserID"`
	ConsumptionLogs []*ConsumptionLog `gorm:"foreignKey:UserID"`
	ShoppingItems   []*ShoppingItem   `gorm:"foreignKey:UserID"`
	Timestamp
}
