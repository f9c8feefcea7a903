package models

import (
	"time"
)

// Role values are fixed at signup and never change afterwards.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:255;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	EmpID        *string   `gorm:"size:50;uniqueIndex" json:"empId,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // Hidden from JSON
	Role         string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Deleting a user removes their submissions with it.
	Submissions []Submission `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// IsValidRole reports whether role is one of the two enumerated roles.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}
