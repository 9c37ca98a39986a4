package workout

import (
	"context"
	"time"

	"FitLog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WorkoutRepository interface {
		BulkUpsert(ctx context.Context, entries []*entities.WorkoutEntry, purgeTypes []string) (int64, int64, error)
		GetEntriesForDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) ([]*entities.WorkoutEntry, error)
	}

	workoutRepository struct {
		db *gorm.DB
	}
)

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// BulkUpsert applies every entry against the (user_id, date, workout_type)
// key in one transaction: update when the row exists, insert otherwise.
// Rows for that day whose type is listed in purgeTypes are removed first,
// which is how NO_WORKOUT exclusivity is kept consistent in storage.
func (r *workoutRepository) BulkUpsert(ctx context.Context, entries []*entities.WorkoutEntry, purgeTypes []string) (int64, int64, error) {
	if len(entries) == 0 {
		return 0, 0, nil
	}

	var modified, inserted int64
	userID := entries[0].UserID
	dayStart := entries[0].Date
	dayEnd := dayStart.Add(24 * time.Hour)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(purgeTypes) > 0 {
			if err := tx.
				Where("user_id = ? AND date >= ? AND date < ? AND workout_type IN ?", userID, dayStart, dayEnd, purgeTypes).
				Delete(&entities.WorkoutEntry{}).Error; err != nil {
				return err
			}
		}

		for _, entry := range entries {
			result := tx.Model(&entities.WorkoutEntry{}).
				Where("user_id = ? AND date = ? AND workout_type = ?", entry.UserID, entry.Date, entry.WorkoutType).
				Updates(map[string]interface{}{
					"description": entry.Description,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				modified++
				continue
			}

			if err := tx.Create(entry).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return modified, inserted, nil
}

func (r *workoutRepository) GetEntriesForDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) ([]*entities.WorkoutEntry, error) {
	var workoutEntries []*entities.WorkoutEntry

	dayEnd := dayStart.Add(24 * time.Hour)
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("created_at asc").
		Find(&workoutEntries).Error; err != nil {
		return nil, err
	}

	return workoutEntries, nil
}
