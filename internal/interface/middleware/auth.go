package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projecttasks/backend/pkg/helpers"
	"github.com/projecttasks/backend/pkg/response"
)

// CtxPrincipalKey holds the authenticated principal's email in the Gin
// context. Handlers pass it explicitly into every service call.
const CtxPrincipalKey = "principalEmail"

// Auth validates the Authorization bearer token and injects the principal
// email (the token subject) into the context. Requests without a valid token
// never reach the protected handlers.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Authentication Failed", "missing bearer token")
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil || claims.Subject == "" {
			response.AbortError(c, http.StatusUnauthorized, "Authentication Failed", "invalid bearer token")
			return
		}
		c.Set(CtxPrincipalKey, claims.Subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
