package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Siddhardha2330/backendrepo/internal/api/middleware"
	"github.com/Siddhardha2330/backendrepo/internal/auth"
	"github.com/Siddhardha2330/backendrepo/internal/models"
)

// ProfileHandler handles the admin profile endpoints.
type ProfileHandler struct {
	db         *gorm.DB
	log        *logrus.Logger
	bcryptCost int
}

func NewProfileHandler(db *gorm.DB, log *logrus.Logger, bcryptCost int) *ProfileHandler {
	return &ProfileHandler{db: db, log: log, bcryptCost: bcryptCost}
}

// GetProfile returns the caller's own profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		h.log.WithError(err).Error("profile lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// UpdateProfile applies a partial update: each omitted field leaves the
// stored value unchanged; supplying no field at all is an error.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	updates := map[string]any{}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password, h.bcryptCost)
		if err != nil {
			h.log.WithError(err).Error("password hashing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
			return
		}
		updates["password_hash"] = hash
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No fields to update"})
		return
	}
	updates["updated_at"] = time.Now().UTC()

	if err := h.db.Model(&models.User{}).Where("id = ?", claims.UserID).Updates(updates).Error; err != nil {
		h.log.WithError(err).Error("profile update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated"})
}
