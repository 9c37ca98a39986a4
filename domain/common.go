package domain

import (
	"errors"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleMember     = "MEMBER"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageUnauthorized         = "Unauthorized. Please sign in to continue."
	MessageForbidden            = "Forbidden. Only administrators can access this resource."
	MessageAccessPending        = "Your account is pending approval."

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrDuplicateEntry = errors.New("duplicate entry detected")
)
