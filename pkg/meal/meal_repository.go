package meal

import (
	"context"
	"time"

	"FitLog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealRepository interface {
		BulkUpsert(ctx context.Context, entries []*entities.MealEntry) (int64, int64, error)
		GetEntriesForDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) ([]*entities.MealEntry, error)
		GetEntriesForRange(ctx context.Context, userID uuid.UUID, rangeStart, rangeEnd time.Time) ([]*entities.MealEntry, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

// BulkUpsert applies every entry against the (user_id, date, meal_type) key
// in one transaction: update when the row exists, insert otherwise. Returns
// modified and inserted counts.
func (r *mealRepository) BulkUpsert(ctx context.Context, entries []*entities.MealEntry) (int64, int64, error) {
	var modified, inserted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			result := tx.Model(&entities.MealEntry{}).
				Where("user_id = ? AND date = ? AND meal_type = ?", entry.UserID, entry.Date, entry.MealType).
				Updates(map[string]interface{}{
					"source":           entry.Source,
					"food_description": entry.FoodDescription,
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

func (r *mealRepository) GetEntriesForDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) ([]*entities.MealEntry, error) {
	var mealEntries []*entities.MealEntry

	dayEnd := dayStart.Add(24 * time.Hour)
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("created_at asc").
		Find(&mealEntries).Error; err != nil {
		return nil, err
	}

	return mealEntries, nil
}

func (r *mealRepository) GetEntriesForRange(ctx context.Context, userID uuid.UUID, rangeStart, rangeEnd time.Time) ([]*entities.MealEntry, error) {
	var mealEntries []*entities.MealEntry

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, rangeStart, rangeEnd.Add(24*time.Hour)).
		Order("date asc, created_at asc").
		Find(&mealEntries).Error; err != nil {
		return nil, err
	}

	return mealEntries, nil
}
