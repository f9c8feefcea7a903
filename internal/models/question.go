package models

import (
	"strings"
	"time"
)

// CorrectAnswer markers, in option order.
const optionMarkers = "ABCD"

type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	QuizID        uint      `gorm:"not null;index" json:"quiz_id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question"`
	OptionA       string    `gorm:"size:255;not null" json:"optionA"`
	OptionB       string    `gorm:"size:255;not null" json:"optionB"`
	OptionC       string    `gorm:"size:255;not null" json:"optionC"`
	OptionD       string    `gorm:"size:255;not null" json:"optionD"`
	CorrectAnswer string    `gorm:"type:varchar(1);not null" json:"correctOption"`
	Explanation   string    `gorm:"type:text" json:"explanation"`
	CreatedAt     time.Time `json:"created_at"`
}

// Options returns the four answers as an ordered slice.
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// CorrectIndex translates the A-D marker to a 0-based index into Options.
// Returns -1 for an out-of-set marker.
func (q *Question) CorrectIndex() int {
	return strings.Index(optionMarkers, q.CorrectAnswer)
}

// IsValidCorrectAnswer reports whether the marker indexes into the option set.
func IsValidCorrectAnswer(v string) bool {
	return len(v) == 1 && strings.Contains(optionMarkers, v)
}
