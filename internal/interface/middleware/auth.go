package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aryaduta/go-blog-api/pkg/helpers"
	"github.com/aryaduta/go-blog-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth reads the signed token from the Authorization header, validates it,
// and injects the account id into the Gin context. The header carries the
// raw token; a conventional "Bearer " prefix is tolerated. Failures abort
// the request with 401 and a generic message; the cause is only logged.
func Auth(jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			if logger != nil {
				logger.WithError(err).Debug("token verification failed")
			}
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated account id set by Auth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserIDKey)
}
