package entities

import (
	"github.com/google/uuid"
)

type Resource struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // "Dairy Storage", "Waste Reduction", ...
	Type        string    `json:"type"`     // "Article", "Tip", "Guide", "Video"
	URL         string    `json:"url"`

	Timestamp
}
