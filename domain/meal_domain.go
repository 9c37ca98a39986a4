package domain

import (
	"errors"
	"time"
)

const (
	MealTypeBreakfast     = "BREAKFAST"
	MealTypeLunch         = "LUNCH"
	MealTypeEveningSnacks = "EVENING_SNACKS"
	MealTypeDinner        = "DINNER"

	MealSourceHome    = "HOME"
	MealSourceOutside = "OUTSIDE"
	MealSourceFasting = "FASTING"
)

// MealTypes lists every meal category in presentation order. Fetch responses
// carry all of them, absent categories mapped to null.
var MealTypes = []string{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeEveningSnacks,
	MealTypeDinner,
}

var (
	MessageSuccessSaveMeals  = "Meals saved successfully"
	MessageSuccessFetchMeals = "meals retrieved successfully"
	MessageFailedSaveMeals   = "Failed to save meals. Please try again."
	MessageFailedFetchMeals  = "Failed to fetch meals. Please try again."
	MessageDuplicateMeal     = "Duplicate meal entry detected"

	ErrInvalidMealDate  = errors.New("invalid date format")
	ErrInvalidMealRange = errors.New("start date must be before end date")
)

type (
	MealEntryRequest struct {
		MealType        string `json:"meal_type" validate:"required,oneof=BREAKFAST LUNCH EVENING_SNACKS DINNER"`
		Source          string `json:"source" validate:"required,oneof=HOME OUTSIDE FASTING"`
		FoodDescription string `json:"food_description" validate:"omitempty,max=500"`
	}

	SaveMealsRequest struct {
		Date  string             `json:"date" validate:"required"`
		Meals []MealEntryRequest `json:"meals" validate:"required,min=1,max=10,dive"`
	}

	SaveMealsResponse struct {
		ModifiedCount int64  `json:"modified_count"`
		UpsertedCount int64  `json:"upserted_count"`
		Message       string `json:"message"`
	}

	FetchMealsRequest struct {
		Date string `json:"date" validate:"required"`
	}

	MealEntryResponse struct {
		MealType        string    `json:"meal_type"`
		Source          string    `json:"source"`
		FoodDescription string    `json:"food_description,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}

	FetchMealsResponse struct {
		Date  string                        `json:"date"`
		Meals map[string]*MealEntryResponse `json:"meals"`
	}

	MealRangeEntryResponse struct {
		Date            string `json:"date"`
		MealType        string `json:"meal_type"`
		Source          string `json:"source"`
		FoodDescription string `json:"food_description,omitempty"`
	}
)
