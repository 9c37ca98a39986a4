package handlers

import (
	"errors"

	"FitLog-Backend/domain"
	"FitLog-Backend/internal/api/presenters"
	"FitLog-Backend/internal/utils"
	"FitLog-Backend/pkg/workout"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	WorkoutHandler interface {
		SaveWorkouts(c *fiber.Ctx) error
		FetchWorkouts(c *fiber.Ctx) error
	}

	workoutHandler struct {
		workoutService workout.WorkoutService
		validator      *validator.Validate
	}
)

func NewWorkoutHandler(workoutService workout.WorkoutService, validator *validator.Validate) WorkoutHandler {
	return &workoutHandler{
		workoutService: workoutService,
		validator:      validator,
	}
}

func (h *workoutHandler) SaveWorkouts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveWorkoutsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Workout saves surface the first violation as the error message.
	if err := h.validator.Struct(req); err != nil {
		message := utils.FirstValidationMessage(err)
		if message == "" {
			message = domain.MessageFailedSaveWorkouts
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}

	res, err := h.workoutService.SaveWorkouts(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWorkoutDate),
			errors.Is(err, domain.ErrConflictingWorkouts),
			errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrDuplicateEntry):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageDuplicateWorkout, nil)
		default:
			log.Errorf("Error saving workouts for %s: %v", userID, err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveWorkouts, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveWorkouts)
}

func (h *workoutHandler) FetchWorkouts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := domain.FetchWorkoutsRequest{Date: c.Query("date")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFetchWorkouts, err)
	}

	res, err := h.workoutService.FetchWorkouts(c.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWorkoutDate), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		default:
			log.Errorf("Error fetching workouts for %s: %v", userID, err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchWorkouts, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFetchWorkouts)
}
