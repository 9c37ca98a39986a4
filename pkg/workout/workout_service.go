package workout

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
	WorkoutService interface {
		SaveWorkouts(ctx context.Context, req domain.SaveWorkoutsRequest, userID string) (domain.SaveWorkoutsResponse, error)
		FetchWorkouts(ctx context.Context, req domain.FetchWorkoutsRequest, userID string) (domain.FetchWorkoutsResponse, error)
	}

	workoutService struct {
		workoutRepository WorkoutRepository
	}
)

func NewWorkoutService(workoutRepository WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepository: workoutRepository}
}

// ParseWorkoutDate parses a strict YYYY-MM-DD string as UTC midnight.
func ParseWorkoutDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, domain.ErrInvalidWorkoutDate
	}
	return parsed, nil
}

func allWorkoutTypesExcept(excluded string) []string {
	types := []string{
		domain.WorkoutTypeWalking,
		domain.WorkoutTypeYoga,
		domain.WorkoutTypeCycling,
		domain.WorkoutTypeGym,
		domain.WorkoutTypeWeightLiftingHome,
		domain.WorkoutTypeDanceZumba,
		domain.WorkoutTypeNoWorkout,
		domain.WorkoutTypeOther,
	}
	filtered := make([]string, 0, len(types)-1)
	for _, workoutType := range types {
		if workoutType != excluded {
			filtered = append(filtered, workoutType)
		}
	}
	return filtered
}

func (s *workoutService) SaveWorkouts(ctx context.Context, req domain.SaveWorkoutsRequest, userID string) (domain.SaveWorkoutsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SaveWorkoutsResponse{}, domain.ErrParseUUID
	}

	date, err := ParseWorkoutDate(req.Date)
	if err != nil {
		return domain.SaveWorkoutsResponse{}, err
	}

	hasNoWorkout := false
	for _, item := range req.Workouts {
		if item.WorkoutType == domain.WorkoutTypeNoWorkout {
			hasNoWorkout = true
			break
		}
	}
	if hasNoWorkout && len(req.Workouts) > 1 {
		return domain.SaveWorkoutsResponse{}, domain.ErrConflictingWorkouts
	}

	workoutEntries := make([]*entities.WorkoutEntry, 0, len(req.Workouts))
	for _, item := range req.Workouts {
		workoutEntries = append(workoutEntries, &entities.WorkoutEntry{
			ID:          uuid.New(),
			UserID:      userUUID,
			Date:        date,
			WorkoutType: item.WorkoutType,
			Description: item.Description,
		})
	}

	// A rest day clears any logged workouts for that date; a real workout
	// clears a previously logged rest day.
	purgeTypes := []string{domain.WorkoutTypeNoWorkout}
	if hasNoWorkout {
		purgeTypes = allWorkoutTypesExcept(domain.WorkoutTypeNoWorkout)
	}

	modified, inserted, err := s.workoutRepository.BulkUpsert(ctx, workoutEntries, purgeTypes)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SaveWorkoutsResponse{}, domain.ErrDuplicateEntry
		}
		return domain.SaveWorkoutsResponse{}, err
	}

	return domain.SaveWorkoutsResponse{
		ModifiedCount: modified,
		UpsertedCount: inserted,
		Message:       domain.MessageSuccessSaveWorkouts,
	}, nil
}

func (s *workoutService) FetchWorkouts(ctx context.Context, req domain.FetchWorkoutsRequest, userID string) (domain.FetchWorkoutsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FetchWorkoutsResponse{}, domain.ErrParseUUID
	}

	date, err := ParseWorkoutDate(req.Date)
	if err != nil {
		return domain.FetchWorkoutsResponse{}, err
	}

	workoutEntries, err := s.workoutRepository.GetEntriesForDay(ctx, userUUID, date)
	if err != nil {
		return domain.FetchWorkoutsResponse{}, err
	}

	response := make([]domain.WorkoutEntryResponse, 0, len(workoutEntries))
	for _, entry := range workoutEntries {
		response = append(response, domain.WorkoutEntryResponse{
			WorkoutType: entry.WorkoutType,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
			UpdatedAt:   entry.UpdatedAt,
		})
	}

	return domain.FetchWorkoutsResponse{
		Date:     date.Format("2006-01-02"),
		Workouts: response,
	}, nil
}
