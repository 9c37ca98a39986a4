package entities

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"uniqueIndex:idx_workout_user_date_type;not null" json:"user_id"`
	Date        time.Time `gorm:"type:timestamp;uniqueIndex:idx_workout_user_date_type;index;not null" json:"date"`
	WorkoutType string    `gorm:"uniqueIndex:idx_workout_user_date_type;not null" json:"workout_type"` // "WALKING", "YOGA", "CYCLING", "GYM", "WEIGHT_LIFTING_HOME", "DANCE_ZUMBA", "NO_WORKOUT", "OTHER"
	Description string    `json:"description,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
