package handlers

import (
	"net/http"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"
	"github.com/devakalpa1/DeckOracle/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	log *zap.Logger
}

func NewAuthHandler(log *zap.Logger) *AuthHandler {
	return &AuthHandler{log: log}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"created_at":   user.CreatedAt,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}
	if !utils.IsComplexPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with upper, lower, digit and special characters"})
		return
	}

	user, err := repository.CreateUser(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		h.log.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Could not register with that email"})
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := repository.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	session := sessions.Default(c)
	session.Set("userID", user.ID.String())
	if err := session.Save(); err != nil {
		h.log.Error("Failed to save session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	user := mustUser(c)
	c.JSON(http.StatusOK, userResponse(user))
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// UpdateMe changes the authenticated user's display name.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user := mustUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := repository.UpdateUser(c.Request.Context(), user.ID, req.DisplayName); err != nil {
		h.log.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	user.DisplayName = req.DisplayName
	c.JSON(http.StatusOK, userResponse(user))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword rotates the password after re-verifying the current one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user := mustUser(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !user.CheckPassword(req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}
	if !utils.IsComplexPassword(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with upper, lower, digit and special characters"})
		return
	}

	if err := repository.UpdateUserPassword(c.Request.Context(), user.ID, req.NewPassword); err != nil {
		h.log.Error("Failed to change password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	c.Status(http.StatusNoContent)
}

type reminderSettingsRequest struct {
	RemindersEnabled bool   `json:"reminders_enabled"`
	ReminderTime     string `json:"reminder_time"` // "HH:MM" in UTC
}

// UpdateReminders sets the daily study reminder preferences.
func (h *AuthHandler) UpdateReminders(c *gin.Context) {
	user := mustUser(c)

	var req reminderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.RemindersEnabled {
		if _, err := time.Parse("15:04", req.ReminderTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reminder_time must be HH:MM (24h, UTC)"})
			return
		}
	}

	if err := repository.UpdateUserReminders(c.Request.Context(), user.ID, req.RemindersEnabled, req.ReminderTime); err != nil {
		h.log.Error("Failed to update reminder settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder settings"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteMe removes the account and ends the session.
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	user := mustUser(c)

	if err := repository.DeleteUser(c.Request.Context(), user.ID); err != nil {
		h.log.Error("Failed to delete account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.log.Warn("Failed to clear session after account deletion", zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}

// mustUser fetches the user loaded by the auth middleware. Routes using
// it sit behind AuthRequired, so a missing user is a programmer error.
func mustUser(c *gin.Context) *models.User {
	value, _ := c.Get("user")
	return value.(*models.User)
}
