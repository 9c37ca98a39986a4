package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSignIn          = "signed in successfully"
	MessageSuccessGetMe           = "user retrieved successfully"
	MessageSuccessUpdateAvatar    = "avatar updated successfully"
	MessageSuccessGetUnapproved   = "unapproved users retrieved successfully"
	MessageSuccessApproveUser     = "user approved successfully"
	MessageFailedSignIn           = "failed to sign in"
	MessageFailedGetMe            = "failed to retrieve user"
	MessageFailedUpdateAvatar     = "failed to update avatar"
	MessageFailedGetUnapproved    = "Failed to fetch unapproved users. Please try again."
	MessageFailedApproveUser      = "Failed to approve user. Please try again."

	ErrEmailRequired  = errors.New("email is required")
	ErrUserIDRequired = errors.New("user ID is required")
	ErrUserNotFound   = errors.New("user not found")
)

type (
	SignInCallbackRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name" validate:"omitempty,max=100"`
		Image    string `json:"image" validate:"omitempty,url"`
		Provider string `json:"provider" validate:"omitempty,max=50"`
	}

	SignInCallbackResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name,omitempty"`
		Email    string `json:"email"`
		ImageURL string `json:"image_url,omitempty"`
		Provider string `json:"provider,omitempty"`
		Role     string `json:"role"`
		Approved bool   `json:"approved"`
	}

	UpdateAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	UnapprovedUserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name,omitempty"`
		Email     string    `json:"email"`
		ImageURL  string    `json:"image_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	ApproveUserRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}

	ApproveUserResponse struct {
		Message string `json:"message"`
	}
)
