package handlers

import (
	"errors"
	"net/http"

	"pubfeed/internal/middleware"
	"pubfeed/internal/models"
	"pubfeed/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AbortWithError is the one place domain errors become HTTP responses.
// Every payload is {"detail": "..."}; infrastructure errors are logged and
// answered with a generic 500, nothing internal leaks to the client.
func AbortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrPublicationNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrUserExists):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	default:
		logrus.WithError(err).Error("internal error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// CurrentUser returns the user placed on the context by the auth middleware.
func CurrentUser(c *gin.Context) *models.User {
	user, exists := c.Get(middleware.CurrentUserKey)
	if !exists {
		return nil
	}
	return user.(*models.User)
}
