package middleware

import (
	"net/http"
	"strings"

	"pubfeed/internal/auth"
	"pubfeed/internal/services"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "user"

// AuthRequired validates the bearer token and resolves it to a user.
// Every failure answers 401 with a re-auth challenge.
func AuthRequired(tokens *auth.TokenManager, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		username, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
}
