package handlers

import (
	"errors"
	"net/http"

	"hotelms/services/user"
	"hotelms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	Users user.UserService
}

// GetAllUsersHandler handles GET /api/users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	respondList(c, http.StatusOK, "Users fetched", users, len(users))
}

// GetUserByIDHandler handles GET /api/users/:id.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	usr, err := h.Users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.GetLogger().Error("Failed to fetch user", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	respond(c, http.StatusOK, "User fetched", usr)
}

// UpdateUserHandler handles PUT /api/users/:id.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	usr, err := h.Users.UpdateUser(id, user.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, user.ErrEmailTaken):
			respondError(c, http.StatusConflict, "Email already registered")
		default:
			utils.GetLogger().Error("Failed to update user", zap.String("id", id), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}
	respond(c, http.StatusOK, "User updated", usr)
}

// DeleteUserHandler handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Users.DeleteUser(id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.GetLogger().Error("Failed to delete user", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	respond(c, http.StatusOK, "User deleted", nil)
}

// MeHandler handles GET /api/users/me for the authenticated caller.
func (h *UserHandler) MeHandler(c *gin.Context) {
	usr, err := h.Users.GetUserByID(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	respond(c, http.StatusOK, "Profile fetched", usr)
}
