package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lus-labeler-backend/internal/auth"
	"lus-labeler-backend/internal/models"
	"lus-labeler-backend/internal/repository"
)

// --- Structs for Request Binding ---

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DeleteUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserHandler serves the user directory and the password-check auth endpoints.
type UserHandler struct {
	repo repository.UserRepository
	log  *zap.Logger
}

// NewUserHandler returns a handler over the given repository.
func NewUserHandler(repo repository.UserRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{repo: repo, log: log}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: auth.HashPassword(req.Password),
	}
	if err := h.repo.Create(&user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already exists"})
			return
		}
		h.log.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// List handles GET /users. The password hash never leaves the server.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List()
	if err != nil {
		h.log.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// Delete handles DELETE /users. The account's own password is required;
// there is no administrative override.
func (h *UserHandler) Delete(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.repo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		h.log.Error("failed to look up user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Incorrect password"})
		return
	}

	if err := h.repo.Delete(user.ID); err != nil {
		h.log.Error("failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "User deleted"})
}

// Login handles POST /auth/login. Unknown username and wrong password get the
// same response so usernames cannot be enumerated.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.repo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
			return
		}
		h.log.Error("failed to look up user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "ok"})
}

// ChangePassword handles POST /auth/change-password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.repo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		h.log.Error("failed to look up user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}

	if !auth.VerifyPassword(req.OldPassword, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Old password is incorrect"})
		return
	}

	if err := h.repo.UpdatePassword(user.ID, auth.HashPassword(req.NewPassword)); err != nil {
		h.log.Error("failed to update password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Password updated successfully"})
}
