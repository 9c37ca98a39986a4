package meal

import (
	"context"
	"errors"
	"time"

	"FitLog-Backend/domain"
	"FitLog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		SaveMeals(ctx context.Context, req domain.SaveMealsRequest, userID string) (domain.SaveMealsResponse, error)
		FetchMeals(ctx context.Context, req domain.FetchMealsRequest, userID string) (domain.FetchMealsResponse, error)
		FetchMealsRange(ctx context.Context, startDate, endDate string, userID string) ([]domain.MealRangeEntryResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
	}
)

func NewMealService(mealRepository MealRepository) MealService {
	return &mealService{mealRepository: mealRepository}
}

// ParseMealDate accepts an RFC 3339 timestamp or a plain YYYY-MM-DD string
// and collapses it to UTC midnight, the canonical day key for all entries.
func ParseMealDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			parsed = parsed.UTC()
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, domain.ErrInvalidMealDate
}

func (s *mealService) SaveMeals(ctx context.Context, req domain.SaveMealsRequest, userID string) (domain.SaveMealsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SaveMealsResponse{}, domain.ErrParseUUID
	}

	date, err := ParseMealDate(req.Date)
	if err != nil {
		return domain.SaveMealsResponse{}, err
	}

	mealEntries := make([]*entities.MealEntry, 0, len(req.Meals))
	for _, item := range req.Meals {
		mealEntries = append(mealEntries, &entities.MealEntry{
			ID:              uuid.New(),
			UserID:          userUUID,
			Date:            date,
			MealType:        item.MealType,
			Source:          item.Source,
			FoodDescription: item.FoodDescription,
		})
	}

	modified, inserted, err := s.mealRepository.BulkUpsert(ctx, mealEntries)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SaveMealsResponse{}, domain.ErrDuplicateEntry
		}
		return domain.SaveMealsResponse{}, err
	}

	return domain.SaveMealsResponse{
		ModifiedCount: modified,
		UpsertedCount: inserted,
		Message:       domain.MessageSuccessSaveMeals,
	}, nil
}

func (s *mealService) FetchMeals(ctx context.Context, req domain.FetchMealsRequest, userID string) (domain.FetchMealsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FetchMealsResponse{}, domain.ErrParseUUID
	}

	date, err := ParseMealDate(req.Date)
	if err != nil {
		return domain.FetchMealsResponse{}, err
	}

	mealEntries, err := s.mealRepository.GetEntriesForDay(ctx, userUUID, date)
	if err != nil {
		return domain.FetchMealsResponse{}, err
	}

	// Fixed-shape map: every meal category is present, absent ones as null.
	groupedMeals := make(map[string]*domain.MealEntryResponse, len(domain.MealTypes))
	for _, mealType := range domain.MealTypes {
		groupedMeals[mealType] = nil
	}
	for _, entry := range mealEntries {
		groupedMeals[entry.MealType] = &domain.MealEntryResponse{
			MealType:        entry.MealType,
			Source:          entry.Source,
			FoodDescription: entry.FoodDescription,
			CreatedAt:       entry.CreatedAt,
			UpdatedAt:       entry.UpdatedAt,
		}
	}

	return domain.FetchMealsResponse{
		Date:  date.Format(time.RFC3339),
		Meals: groupedMeals,
	}, nil
}

func (s *mealService) FetchMealsRange(ctx context.Context, startDate, endDate string, userID string) ([]domain.MealRangeEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rangeStart, err := ParseMealDate(startDate)
	if err != nil {
		return nil, err
	}
	rangeEnd, err := ParseMealDate(endDate)
	if err != nil {
		return nil, err
	}
	if rangeStart.After(rangeEnd) {
		return nil, domain.ErrInvalidMealRange
	}

	mealEntries, err := s.mealRepository.GetEntriesForRange(ctx, userUUID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealRangeEntryResponse, 0, len(mealEntries))
	for _, entry := range mealEntries {
		response = append(response, domain.MealRangeEntryResponse{
			Date:            entry.Date.Format(time.RFC3339),
			MealType:        entry.MealType,
			Source:          entry.Source,
			FoodDescription: entry.FoodDescription,
		})
	}
	return response, nil
}
