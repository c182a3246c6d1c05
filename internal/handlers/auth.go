package handlers

import (
	"net/http"

	"pubfeed/internal/auth"
	"pubfeed/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users  *services.UserService
	tokens *auth.TokenManager
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type registrationRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Register creates a new account. Usernames must be unique.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Username: user.Username})
}

// Token issues a bearer token for valid credentials. Credentials arrive as
// an OAuth2 password form: username + password fields.
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(user.Username)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}
