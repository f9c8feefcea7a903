package models

import (
	"time"
)

// Quiz field enumerations. Unknown values are rejected at the boundary,
// never coerced into a default.
var (
	ValidCategories   = []string{"Hardware", "Software"}
	ValidDifficulties = []string{"Easy", "Medium", "Hard"}
	ValidStatuses     = []string{"Draft", "Published", "Archived"}
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusArchived  = "Archived"
)

type Quiz struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Category   string    `gorm:"type:varchar(20);not null" json:"category"`
	Difficulty string    `gorm:"type:varchar(20);not null" json:"difficulty"`
	Duration   int       `gorm:"not null" json:"duration"` // minutes
	Status     string    `gorm:"type:varchar(20);not null;default:'Draft'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Cascade so that deleting a quiz also removes its questions and submissions.
	Questions   []Question   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Submissions []Submission `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidCategory(v string) bool   { return contains(ValidCategories, v) }
func IsValidDifficulty(v string) bool { return contains(ValidDifficulties, v) }
func IsValidStatus(v string) bool     { return contains(ValidStatuses, v) }
