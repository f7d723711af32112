package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

// SessionAuthMiddleware validates the bearer token, then confirms the
// server-side session is still alive. An expired session row makes the token
// useless even before it is purged.
func SessionAuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		session, err := authService.GetActiveSession(c.Request.Context(), claims.SessionToken)
		if err != nil || session == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Session expired, please log in again")
			c.Abort()
			return
		}

		c.Set("user_id", session.UserID.String())
		c.Set("session_token", session.Token)
		c.Next()
	}
}
