package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kyotabi/internal/infra"
	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, services.AuthServiceInterface, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	authService := services.NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewSessionRepository(db),
	)

	r := gin.New()
	r.GET("/protected", SessionAuthMiddleware(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r, authService, db
}

func loginToken(t *testing.T, authService services.AuthServiceInterface) string {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, authService.Register(ctx, request_models.SignUpRequest{
		Username: "akiko", Password: "hunter22",
	}))
	auth, err := authService.Login(ctx, request_models.LoginRequest{
		Username: "akiko", Password: "hunter22",
	})
	require.NoError(t, err)
	return auth.Token
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	r, authService, _ := newAuthTestRouter(t)
	token := loginToken(t, authService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_id")
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredSession(t *testing.T) {
	r, authService, db := newAuthTestRouter(t)
	token := loginToken(t, authService)

	// Expire the session row behind the still-valid JWT.
	require.NoError(t, db.Model(&db_models.Session{}).
		Where("1 = 1").
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsAfterLogout(t *testing.T) {
	r, authService, _ := newAuthTestRouter(t)
	token := loginToken(t, authService)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	require.NoError(t, authService.Logout(context.Background(), claims.SessionToken))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
