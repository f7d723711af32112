package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

func TestRegisterAndVerifyRoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), repositories.NewSessionRepository(db))
	ctx := context.Background()

	err := service.Register(ctx, request_models.SignUpRequest{
		Username: "akiko",
		Password: "hunter22",
		Email:    "akiko@example.com",
	})
	require.NoError(t, err)

	user, err := service.VerifyUser(ctx, "akiko", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "akiko", user.Username)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
}

func TestVerifyUserWrongPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), repositories.NewSessionRepository(db))
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, request_models.SignUpRequest{Username: "akiko", Password: "hunter22"}))

	user, err := service.VerifyUser(ctx, "akiko", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = service.VerifyUser(ctx, "nobody", "hunter22")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), repositories.NewSessionRepository(db))
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, request_models.SignUpRequest{Username: "akiko", Password: "hunter22"}))

	err := service.Register(ctx, request_models.SignUpRequest{Username: "akiko", Password: "other456"})
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestLoginOpensSession(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), repositories.NewSessionRepository(db))
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, request_models.SignUpRequest{Username: "akiko", Password: "hunter22"}))

	auth, err := service.Login(ctx, request_models.LoginRequest{Username: "akiko", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)

	claims, err := utils.ValidateToken(auth.Token)
	require.NoError(t, err)

	session, err := service.GetActiveSession(ctx, claims.SessionToken)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, auth.UserID, session.UserID.String())
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), repositories.NewSessionRepository(db))
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, request_models.SignUpRequest{Username: "akiko", Password: "hunter22"}))

	_, err := service.Login(ctx, request_models.LoginRequest{Username: "akiko", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestExpiredSessionIsInert(t *testing.T) {
	db := newTestDB(t)
	sessionRepo := repositories.NewSessionRepository(db)
	service := NewAuthService(repositories.NewUserRepository(db), sessionRepo)
	ctx := context.Background()

	user := newTestUser(t, db, "akiko")

	expired := &db_models.Session{
		Token:     "stale-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, sessionRepo.Insert(ctx, expired))

	session, err := service.GetActiveSession(ctx, "stale-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogoutDeletesSession(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db), repositories.NewSessionRepository(db))
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, request_models.SignUpRequest{Username: "akiko", Password: "hunter22"}))
	auth, err := service.Login(ctx, request_models.LoginRequest{Username: "akiko", Password: "hunter22"})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(auth.Token)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, claims.SessionToken))

	session, err := service.GetActiveSession(ctx, claims.SessionToken)
	require.NoError(t, err)
	assert.Nil(t, session)
}
