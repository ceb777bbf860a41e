package entities

import (
	"time"

	"github.com/google/uuid"
)

// CommunityPost is a surplus-food sharing post. Neighbours can claim an
// open post; the author closes it once handed over.
type CommunityPost struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"image_url,omitempty"`
	Status      string     `json:"status"` // "Open", "Claimed", "Closed"
	ClaimedByID *uuid.UUID `json:"claimed_by_id,omitempty"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`

	User      *User `gorm:"foreignKey:UserID"`
	ClaimedBy *User `gorm:"foreignKey:ClaimedByID"`
	Timestamp
}
