package models

import (
	"time"
)

// Submission rows are append-only. Repeat attempts for the same (user, quiz)
// pair produce new rows; ranking queries deduplicate by best score.
type Submission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	QuizID      uint      `gorm:"not null;index" json:"quiz_id"`
	Score       float64   `gorm:"not null" json:"score"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
}
