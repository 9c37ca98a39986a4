package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `gorm:"uniqueIndex:idx_meal_user_date_type;not null" json:"user_id"`
	Date            time.Time `gorm:"type:timestamp;uniqueIndex:idx_meal_user_date_type;index;not null" json:"date"`
	MealType        string    `gorm:"uniqueIndex:idx_meal_user_date_type;not null" json:"meal_type"` // "BREAKFAST", "LUNCH", "EVENING_SNACKS", "DINNER"
	Source          string    `gorm:"not null" json:"source"`                                       // "HOME", "OUTSIDE", "FASTING"
	FoodDescription string    `json:"food_description,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
