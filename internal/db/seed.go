package database

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Siddhardha2330/backendrepo/internal/auth"
	"github.com/Siddhardha2330/backendrepo/internal/config"
	"github.com/Siddhardha2330/backendrepo/internal/models"
)

// SeedAdminUser creates the initial admin account when none exists yet.
// A no-op when auth.admin_email is unset or an admin is already present,
// so restarts never duplicate the account.
func SeedAdminUser(db *gorm.DB, cfg *config.Config, log *logrus.Logger) error {
	if cfg.Auth.AdminEmail == "" {
		return nil
	}
	if cfg.Auth.AdminPassword == "" {
		return errors.New("auth.admin_email set without auth.admin_password")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Auth.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     "admin",
		Email:        cfg.Auth.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.WithField("email", cfg.Auth.AdminEmail).Info("seeded initial admin user")
	return nil
}
