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

// AuthHandler handles signup, login and password changes.
type AuthHandler struct {
	db         *gorm.DB
	log        *logrus.Logger
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthHandler(db *gorm.DB, log *logrus.Logger, secret []byte, tokenTTL time.Duration, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		db:         db,
		log:        log,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new account. Validation happens entirely before any
// store access; duplicate email and duplicate employee id are distinguished
// in the error message.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := auth.ValidateSignup(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.User
	query := h.db.Where("email = ?", req.Email)
	if req.EmpID != "" {
		query = query.Or("emp_id = ?", req.EmpID)
	}
	err := query.First(&existing).Error
	switch {
	case err == nil:
		msg := "Employee ID already exists"
		if existing.Email == req.Email {
			msg = "Email already exists"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		h.log.WithError(err).Error("signup lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during signup"})
		return
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.log.WithError(err).Error("password hashing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during signup"})
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if req.EmpID != "" {
		user.EmpID = &req.EmpID
	}
	if err := h.db.Create(&user).Error; err != nil {
		h.log.WithError(err).Error("signup insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during signup"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful"})
}

// Login authenticates by a role-scoped lookup: admins by (email, role),
// employees by (empId, role). Every mismatch, wrong password and wrong or
// unknown identifier alike, yields the same generic 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := auth.ValidateLogin(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	var err error
	if req.Role == models.RoleAdmin {
		err = h.db.Where("email = ? AND role = ?", req.Email, req.Role).First(&user).Error
	} else {
		err = h.db.Where("emp_id = ? AND role = ?", req.EmpID, req.Role).First(&user).Error
	}
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.WithError(err).Error("login lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := middleware.SignToken(h.secret, &user, h.tokenTTL)
	if err != nil {
		h.log.WithError(err).Error("token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"empId":    user.EmpID,
		},
	})
}

// Logout is a stateless acknowledgement; tokens simply expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ChangePassword verifies the caller's current password before storing a
// new hash.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OldPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing fields."})
		return
	}

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
			return
		}
		h.log.WithError(err).Error("change-password lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Old password is incorrect."})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword, h.bcryptCost)
	if err != nil {
		h.log.WithError(err).Error("password hashing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
		return
	}
	if err := h.db.Model(&user).Update("password_hash", hash).Error; err != nil {
		h.log.WithError(err).Error("change-password update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully."})
}
