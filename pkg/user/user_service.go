package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"FitLog-Backend/domain"
	"FitLog-Backend/entities"
	"FitLog-Backend/internal/utils"
	"FitLog-Backend/internal/utils/mailing"
	"FitLog-Backend/internal/utils/storage"
	"FitLog-Backend/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		SignInCallback(ctx context.Context, req domain.SignInCallbackRequest) (domain.SignInCallbackResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateAvatar(ctx context.Context, req domain.UpdateAvatarRequest, userID string) (domain.UserResponse, error)
		GetUnapprovedUsers(ctx context.Context) ([]domain.UnapprovedUserResponse, error)
		ApproveUser(ctx context.Context, req domain.ApproveUserRequest) (domain.ApproveUserResponse, error)
		RehydrateSession(ctx context.Context, userID string) (*entities.User, error)
	}

	userService struct {
		userRepository  UserRepository
		jwtService      jwt.JWTService
		s3              storage.AwsS3
		superAdminEmail string
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3, superAdminEmail string) UserService {
	return &userService{
		userRepository:  userRepository,
		jwtService:      jwtService,
		s3:              s3,
		superAdminEmail: normalizeEmail(superAdminEmail),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignInCallback upserts the identity for a verified provider profile and
// issues a session token. Every sign-in writes the user row so profile
// fields and role/approval recomputation always land, even for returning
// users.
func (s *userService) SignInCallback(ctx context.Context, req domain.SignInCallbackRequest) (domain.SignInCallbackResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return domain.SignInCallbackResponse{}, domain.ErrEmailRequired
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SignInCallbackResponse{}, err
		}
		user = &entities.User{
			ID:       uuid.New(),
			Email:    email,
			Role:     domain.RoleMember,
			Approved: false,
		}
		s.applyProfile(user, req)
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.SignInCallbackResponse{}, err
			}
			// Lost a first-sign-in race; the row exists now, update it.
			user, err = s.userRepository.GetUserByEmail(ctx, email)
			if err != nil {
				return domain.SignInCallbackResponse{}, err
			}
			s.applyProfile(user, req)
			if err := s.userRepository.UpdateUser(ctx, user); err != nil {
				return domain.SignInCallbackResponse{}, err
			}
		}
	} else {
		s.applyProfile(user, req)
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return domain.SignInCallbackResponse{}, err
		}
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role, user.Approved)

	return domain.SignInCallbackResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) applyProfile(user *entities.User, req domain.SignInCallbackRequest) {
	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Image != "" {
		user.ImageURL = strings.TrimSpace(req.Image)
	}
	if req.Provider != "" {
		user.Provider = strings.ToLower(strings.TrimSpace(req.Provider))
	}

	// The designated super admin is promoted and approved on every sign-in.
	if user.Email == s.superAdminEmail {
		user.Role = domain.RoleSuperAdmin
		user.Approved = true
	}
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.RehydrateSession(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// RehydrateSession re-resolves the identity's current role and approval from
// the store; session claims alone can be stale for long-lived tokens.
func (s *userService) RehydrateSession(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, req domain.UpdateAvatarRequest, userID string) (domain.UserResponse, error) {
	user, err := s.RehydrateSession(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	fileName := fmt.Sprintf("avatar-%s", user.ID.String())
	var objectKey string
	var uploadErr error

	existingKey := s.s3.GetObjectKeyFromLink(user.ImageURL)
	if existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Avatar, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.UserResponse{}, uploadErr
	}

	user.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUnapprovedUsers(ctx context.Context) ([]domain.UnapprovedUserResponse, error) {
	users, err := s.userRepository.GetUnapprovedUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UnapprovedUserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, domain.UnapprovedUserResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			ImageURL:  user.ImageURL,
			CreatedAt: user.CreatedAt,
		})
	}
	return response, nil
}

func (s *userService) ApproveUser(ctx context.Context, req domain.ApproveUserRequest) (domain.ApproveUserResponse, error) {
	if req.UserID == "" {
		return domain.ApproveUserResponse{}, domain.ErrUserIDRequired
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		return domain.ApproveUserResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ApproveUserResponse{}, domain.ErrUserNotFound
		}
		return domain.ApproveUserResponse{}, err
	}

	user.Approved = true
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.ApproveUserResponse{}, err
	}

	// Best effort; approval must not fail because SMTP is down.
	if utils.GetConfig("SMTP_HOST") != "" {
		body := fmt.Sprintf(
			"<p>Your account has been approved. You can now sign in at <a href=%q>%s</a>.</p>",
			utils.GetConfig("APP_URL"), utils.GetConfig("APP_URL"),
		)
		if err := mailing.SendMail(user.Email, "Your account has been approved", body); err != nil {
			log.Printf("Error sending approval email to %s: %v\n", user.Email, err)
		}
	}

	return domain.ApproveUserResponse{
		Message: fmt.Sprintf("User %s has been approved successfully.", user.Email),
	}, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		ImageURL: user.ImageURL,
		Provider: user.Provider,
		Role:     user.Role,
		Approved: user.Approved,
	}
}
