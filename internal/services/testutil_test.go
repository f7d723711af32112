package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kyotabi/internal/infra"
	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string) *db_models.User {
	t.Helper()

	authService := NewAuthService(repositories.NewUserRepository(db), repositories.NewSessionRepository(db))
	err := authService.Register(context.Background(), request_models.SignUpRequest{
		Username: username,
		Password: "secret123",
	})
	require.NoError(t, err)

	user, err := authService.VerifyUser(context.Background(), username, "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}
