package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sqlconsole/internal/responses"
	"sqlconsole/internal/services"
)

const (
	RefreshTokenCookieName = "refresh_token"
	RefreshTokenMaxAge     = 30 * 24 * 3600 // 30 days in seconds
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"     binding:"required,email"`
		FullName string `json:"full_name" binding:"required,min=1,max=255"`
		Password string `json:"password"  binding:"required,min=8,max=72"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your email, full name and password correctly")
		return
	}

	user, err := h.authService.Register(req.Email, req.FullName, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			responses.Fail(c, http.StatusConflict, err, "Email already registered")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Could not register user")
		return
	}

	responses.Success(c, http.StatusCreated, user, "New user registered successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	user, accessToken, refreshToken, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Failed to login")
		return
	}

	c.SetCookie(RefreshTokenCookieName, refreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": accessToken,
		"user":         user,
	}

	responses.Success(c, http.StatusOK, res, "Login successful")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing refresh token")
		return
	}

	accessToken, newRefreshToken, err := h.authService.Refresh(refreshToken)
	if err != nil {
		c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)
		responses.Fail(c, http.StatusUnauthorized, err, "Invalid or expired refresh token")
		return
	}

	c.SetCookie(RefreshTokenCookieName, newRefreshToken, RefreshTokenMaxAge, "/", "", true, true)

	responses.Success(c, http.StatusOK, gin.H{"access_token": accessToken}, "Access token refreshed successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)

	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	userUUID, ok := userID.(uuid.UUID)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Invalid userId format")
		return
	}

	user, err := h.authService.Me(userUUID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusUnauthorized, nil, "User no longer exists")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Could not load user")
		return
	}

	responses.Success(c, http.StatusOK, user, "")
}
