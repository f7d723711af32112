package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/models/response_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

const sessionTTL = 24 * time.Hour

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Logout(ctx context.Context, sessionToken string) error
	VerifyUser(ctx context.Context, username, password string) (*db_models.User, error)
	GetActiveSession(ctx context.Context, token string) (*db_models.Session, error)
	CurrentUser(ctx context.Context, userID string) (*response_models.UserResponse, error)
	UpdateProfilePhoto(ctx context.Context, userID string, photo string) error
}

type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
}

func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Username:     request.Username,
		PasswordHash: hashedPassword,
		Email:        request.Email,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// VerifyUser returns the user for matching credentials, nil otherwise.
func (a *AuthService) VerifyUser(ctx context.Context, username, password string) (*db_models.User, error) {
	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, nil
	}
	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return nil, nil
	}
	return user, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.VerifyUser(ctx, request.Username, request.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	// Opportunistic cleanup; expired rows are inert regardless.
	if purged, err := a.sessionRepo.PurgeExpired(ctx); err == nil && purged > 0 {
		log.Printf("Purged %d expired sessions", purged)
	}

	sessionToken, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	expiresAt := time.Now().Add(sessionTTL)
	session := &db_models.Session{
		Token:     sessionToken,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := a.sessionRepo.Insert(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := a.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("Failed to update last login for %s: %v", user.Username, err)
	}

	token, err := utils.CreateToken(user.ID, sessionToken, expiresAt)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Username:  user.Username,
		ExpiresAt: utils.FormatRFC3339JST(expiresAt),
	}, nil
}

func (a *AuthService) Logout(ctx context.Context, sessionToken string) error {
	if err := a.sessionRepo.Delete(ctx, sessionToken); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AuthService) GetActiveSession(ctx context.Context, token string) (*db_models.Session, error) {
	session, err := a.sessionRepo.FindActive(ctx, token)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return session, nil
}

func (a *AuthService) CurrentUser(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return &response_models.UserResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		ProfilePhoto: user.ProfilePhoto,
		CreatedAt:    user.CreatedAt,
		LastLogin:    user.LastLogin,
	}, nil
}

func (a *AuthService) UpdateProfilePhoto(ctx context.Context, userID string, photo string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if err := a.userRepo.UpdateProfilePhoto(ctx, id, photo); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
