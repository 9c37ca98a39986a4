package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name,omitempty"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	ImageURL string    `json:"image_url,omitempty"`
	Provider string    `json:"provider,omitempty"`
	Role     string    `json:"role"` // "SUPER_ADMIN", "MEMBER"
	Approved bool      `json:"approved"`

	Timestamp
}
