package handlers

import (
	"errors"
	"time"

	"FitLog-Backend/domain"
	"FitLog-Backend/internal/api/presenters"
	"FitLog-Backend/internal/middleware"
	"FitLog-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	UserHandler interface {
		SignInCallback(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateAvatar(c *fiber.Ctx) error
		GetUnapprovedUsers(c *fiber.Ctx) error
		ApproveUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) SignInCallback(c *fiber.Ctx) error {
	req := new(domain.SignInCallbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignIn, err)
	}

	res, err := h.userService.SignInCallback(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignIn, nil)
		}
		log.Errorf("Error signing in %s: %v", req.Email, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSignIn, nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    res.Token,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSignIn)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMe, nil)
		}
		log.Errorf("Error fetching user %s: %v", userID, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMe, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *userHandler) UpdateAvatar(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateAvatarRequest)

	file, err := c.FormFile("avatar")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Avatar = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAvatar, err)
	}

	res, err := h.userService.UpdateAvatar(c.Context(), *req, userID)
	if err != nil {
		log.Errorf("Error updating avatar for %s: %v", userID, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateAvatar, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAvatar)
}

func (h *userHandler) GetUnapprovedUsers(c *fiber.Ctx) error {
	res, err := h.userService.GetUnapprovedUsers(c.Context())
	if err != nil {
		log.Errorf("Error fetching unapproved users: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUnapproved, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnapproved)
}

func (h *userHandler) ApproveUser(c *fiber.Ctx) error {
	req := new(domain.ApproveUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveUser, err)
	}

	res, err := h.userService.ApproveUser(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserIDRequired), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveUser, nil)
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, "User not found.", nil)
		default:
			log.Errorf("Error approving user %s: %v", req.UserID, err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedApproveUser, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessApproveUser)
}
