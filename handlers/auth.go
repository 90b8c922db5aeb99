package handlers

import (
	"errors"
	"net/http"

	"hotelms/services/user"
	"hotelms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Users user.UserService
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Self-registration always yields a customer account; roles are
	// assigned by admins through the user management endpoints.
	usr, token, err := h.Users.RegisterUser(user.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "Email already registered")
			return
		}
		logger.Error("Registration failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respond(c, http.StatusCreated, "User registered", gin.H{
		"user":  usr,
		"token": token,
	})
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	usr, token, err := h.Users.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to authenticate")
		return
	}

	respond(c, http.StatusOK, "Login successful", gin.H{
		"user":  usr,
		"token": token,
	})
}
