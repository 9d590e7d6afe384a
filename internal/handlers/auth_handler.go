package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/middleware"
	"poseidon/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, auditService: auditService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"notblank"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID       int64  `json:"id"`
	Version  int64  `json:"version"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get an access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     429 {object} ErrorResponse "Too many attempts"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, nil)
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		h.auditService.Log(req.Username, "LOGIN_FAILED", "User", 0, c.ClientIP(), nil)
		respondWithError(c, err, nil)
		return
	}

	token, expires, err := middleware.GenerateAccessToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err), nil)
		return
	}

	h.auditService.Log(user.Username, "LOGIN", "User", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresAt: expires,
		User:      toUserResponse(user.ID, user.Version, user.Username, user.Fullname, user.Role),
	})
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized, nil)
		return
	}
	id, ok := userID.(int64)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized, nil)
		return
	}

	user, err := h.userService.FindByID(id)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": toUserResponse(user.ID, user.Version, user.Username, user.Fullname, user.Role),
	})
}

func toUserResponse(id, version int64, username, fullname, role string) UserResponse {
	return UserResponse{ID: id, Version: version, Username: username, Fullname: fullname, Role: role}
}
