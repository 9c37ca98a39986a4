package workout

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"FitLog-Backend/domain"
	"FitLog-Backend/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestWorkoutService(t *testing.T) WorkoutService {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "workout-test.db")
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}, &entities.WorkoutEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewWorkoutService(NewWorkoutRepository(db))
}

func fetchTypes(t *testing.T, service WorkoutService, userID, date string) []string {
	t.Helper()

	fetched, err := service.FetchWorkouts(context.Background(), domain.FetchWorkoutsRequest{Date: date}, userID)
	if err != nil {
		t.Fatalf("fetch %s: %v", date, err)
	}
	types := make([]string, 0, len(fetched.Workouts))
	for _, entry := range fetched.Workouts {
		types = append(types, entry.WorkoutType)
	}
	return types
}

func TestSaveWorkoutsInsertThenUpdate(t *testing.T) {
	service := newTestWorkoutService(t)
	userID := uuid.New().String()

	res, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date: "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{
			{WorkoutType: domain.WorkoutTypeGym, Description: "leg day"},
			{WorkoutType: domain.WorkoutTypeWalking},
		},
	}, userID)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if res.UpsertedCount != 2 || res.ModifiedCount != 0 {
		t.Fatalf("expected 2 inserted / 0 modified, got %d / %d", res.UpsertedCount, res.ModifiedCount)
	}

	res, err = service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date: "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{
			{WorkoutType: domain.WorkoutTypeGym, Description: "upper body"},
			{WorkoutType: domain.WorkoutTypeYoga},
		},
	}, userID)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if res.ModifiedCount != 1 || res.UpsertedCount != 1 {
		t.Fatalf("expected 1 modified / 1 inserted, got %d / %d", res.ModifiedCount, res.UpsertedCount)
	}

	fetched, err := service.FetchWorkouts(context.Background(), domain.FetchWorkoutsRequest{Date: "2026-01-05"}, userID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(fetched.Workouts) != 3 {
		t.Fatalf("expected 3 entries for the day, got %d", len(fetched.Workouts))
	}
	for _, entry := range fetched.Workouts {
		if entry.WorkoutType == domain.WorkoutTypeGym && entry.Description != "upper body" {
			t.Fatalf("expected gym description to be overwritten, got %q", entry.Description)
		}
	}
}

func TestRestDayClearsLoggedWorkouts(t *testing.T) {
	service := newTestWorkoutService(t)
	userID := uuid.New().String()

	if _, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date: "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{
			{WorkoutType: domain.WorkoutTypeGym},
			{WorkoutType: domain.WorkoutTypeCycling},
		},
	}, userID); err != nil {
		t.Fatalf("save workouts: %v", err)
	}

	if _, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date:     "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{{WorkoutType: domain.WorkoutTypeNoWorkout}},
	}, userID); err != nil {
		t.Fatalf("save rest day: %v", err)
	}

	types := fetchTypes(t, service, userID, "2026-01-05")
	if len(types) != 1 || types[0] != domain.WorkoutTypeNoWorkout {
		t.Fatalf("expected only the rest day entry to remain, got %v", types)
	}
}

func TestRealWorkoutClearsRestDay(t *testing.T) {
	service := newTestWorkoutService(t)
	userID := uuid.New().String()

	if _, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date:     "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{{WorkoutType: domain.WorkoutTypeNoWorkout}},
	}, userID); err != nil {
		t.Fatalf("save rest day: %v", err)
	}

	if _, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date:     "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{{WorkoutType: domain.WorkoutTypeWalking}},
	}, userID); err != nil {
		t.Fatalf("save walking: %v", err)
	}

	types := fetchTypes(t, service, userID, "2026-01-05")
	if len(types) != 1 || types[0] != domain.WorkoutTypeWalking {
		t.Fatalf("expected the rest day to be cleared, got %v", types)
	}
}

func TestRestDayMixedWithWorkoutsRejected(t *testing.T) {
	service := newTestWorkoutService(t)

	_, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date: "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{
			{WorkoutType: domain.WorkoutTypeNoWorkout},
			{WorkoutType: domain.WorkoutTypeGym},
		},
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrConflictingWorkouts) {
		t.Fatalf("expected ErrConflictingWorkouts, got %v", err)
	}
}

func TestSaveWorkoutsStrictDate(t *testing.T) {
	service := newTestWorkoutService(t)

	for _, raw := range []string{"2026-1-5", "05-01-2026", "2026-01-05T00:00:00Z", ""} {
		_, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
			Date:     raw,
			Workouts: []domain.WorkoutEntryRequest{{WorkoutType: domain.WorkoutTypeYoga}},
		}, uuid.New().String())
		if !errors.Is(err, domain.ErrInvalidWorkoutDate) {
			t.Fatalf("expected ErrInvalidWorkoutDate for %q, got %v", raw, err)
		}
	}
}

func TestSaveWorkoutsScopedToUser(t *testing.T) {
	service := newTestWorkoutService(t)
	firstUser := uuid.New().String()
	secondUser := uuid.New().String()

	if _, err := service.SaveWorkouts(context.Background(), domain.SaveWorkoutsRequest{
		Date:     "2026-01-05",
		Workouts: []domain.WorkoutEntryRequest{{WorkoutType: domain.WorkoutTypeDanceZumba}},
	}, firstUser); err != nil {
		t.Fatalf("save: %v", err)
	}

	if types := fetchTypes(t, service, secondUser, "2026-01-05"); len(types) != 0 {
		t.Fatalf("expected no cross-user visibility, got %v", types)
	}
}
