package domain

import (
	"errors"
	"time"
)

const (
	WorkoutTypeWalking           = "WALKING"
	WorkoutTypeYoga              = "YOGA"
	WorkoutTypeCycling           = "CYCLING"
	WorkoutTypeGym               = "GYM"
	WorkoutTypeWeightLiftingHome = "WEIGHT_LIFTING_HOME"
	WorkoutTypeDanceZumba        = "DANCE_ZUMBA"
	WorkoutTypeNoWorkout         = "NO_WORKOUT"
	WorkoutTypeOther             = "OTHER"
)

var (
	MessageSuccessSaveWorkouts  = "Workouts saved successfully"
	MessageSuccessFetchWorkouts = "workouts retrieved successfully"
	MessageFailedSaveWorkouts   = "Failed to save workouts. Please try again."
	MessageFailedFetchWorkouts  = "Failed to fetch workouts. Please try again."
	MessageDuplicateWorkout     = "Duplicate workout entry detected"

	ErrInvalidWorkoutDate  = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrConflictingWorkouts = errors.New("NO_WORKOUT cannot be combined with other workout types")
)

type (
	WorkoutEntryRequest struct {
		WorkoutType string `json:"workout_type" validate:"required,oneof=WALKING YOGA CYCLING GYM WEIGHT_LIFTING_HOME DANCE_ZUMBA NO_WORKOUT OTHER"`
		Description string `json:"description" validate:"omitempty,max=500"`
	}

	SaveWorkoutsRequest struct {
		Date     string                `json:"date" validate:"required,datetime=2006-01-02"`
		Workouts []WorkoutEntryRequest `json:"workouts" validate:"required,min=1,max=10,unique=WorkoutType,dive"`
	}

	SaveWorkoutsResponse struct {
		ModifiedCount int64  `json:"modified_count"`
		UpsertedCount int64  `json:"upserted_count"`
		Message       string `json:"message"`
	}

	FetchWorkoutsRequest struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
	}

	WorkoutEntryResponse struct {
		WorkoutType string    `json:"workout_type"`
		Description string    `json:"description,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	FetchWorkoutsResponse struct {
		Date     string                 `json:"date"`
		Workouts []WorkoutEntryResponse `json:"workouts"`
	}
)
