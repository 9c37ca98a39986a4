package handlers

import (
	"errors"

	"FitLog-Backend/domain"
	"FitLog-Backend/internal/api/presenters"
	"FitLog-Backend/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	MealHandler interface {
		SaveMeals(c *fiber.Ctx) error
		FetchMeals(c *fiber.Ctx) error
		FetchMealsRange(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) SaveMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveMealsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMeals, err)
	}

	res, err := h.mealService.SaveMeals(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMealDate), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrDuplicateEntry):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageDuplicateMeal, nil)
		default:
			log.Errorf("Error saving meals for %s: %v", userID, err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveMeals, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveMeals)
}

func (h *mealHandler) FetchMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := domain.FetchMealsRequest{Date: c.Query("date")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFetchMeals, err)
	}

	res, err := h.mealService.FetchMeals(c.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMealDate), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		default:
			log.Errorf("Error fetching meals for %s: %v", userID, err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchMeals, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFetchMeals)
}

func (h *mealHandler) FetchMealsRange(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	startDate := c.Query("start")
	endDate := c.Query("end")

	res, err := h.mealService.FetchMealsRange(c.Context(), startDate, endDate, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMealDate),
			errors.Is(err, domain.ErrInvalidMealRange),
			errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		default:
			log.Errorf("Error fetching meals range for %s: %v", userID, err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchMeals, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFetchMeals)
}
