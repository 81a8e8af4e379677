package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goblog-api/internal/pkg/jwtutil"
	"goblog-api/internal/transport/http/response"
)

const ContextUserIDKey = "user_id"

// AuthToken verifies the credential supplied in the custom "token" header.
// The legacy service answered auth failures with 200 and a false flag; here
// they are proper 401s.
func AuthToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("token"))
		if token == "" {
			response.Message(c, http.StatusUnauthorized, "Auth token is not supplied")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
