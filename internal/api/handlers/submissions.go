package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Siddhardha2330/backendrepo/internal/api/middleware"
	"github.com/Siddhardha2330/backendrepo/internal/models"
)

// SubmissionHandler handles quiz attempts, submission listings and
// leaderboards.
type SubmissionHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewSubmissionHandler(db *gorm.DB, log *logrus.Logger) *SubmissionHandler {
	return &SubmissionHandler{db: db, log: log}
}

// SubmitQuiz records one attempt. Always an insert, never an update; the
// timestamp is assigned here, a client-supplied time is never trusted.
func (h *SubmissionHandler) SubmitQuiz(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quiz ID"})
		return
	}

	var req struct {
		Score *float64 `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Score == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Score is required"})
		return
	}

	var quiz models.Quiz
	if err := h.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Quiz not found"})
			return
		}
		h.log.WithError(err).Error("quiz lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save submission"})
		return
	}

	submission := models.Submission{
		UserID:      claims.UserID,
		QuizID:      uint(quizID),
		Score:       *req.Score,
		SubmittedAt: time.Now().UTC(),
	}
	if err := h.db.Create(&submission).Error; err != nil {
		h.log.WithError(err).Error("submission insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Submission saved",
		"submissionId": submission.ID,
	})
}

// GetMySubmissions lists the caller's own submissions, newest first. The
// visibility rule is carried by the identity in the token: an employee can
// only ever reach their own rows.
func (h *SubmissionHandler) GetMySubmissions(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var rows []struct {
		ID          uint      `json:"id"`
		QuizTitle   string    `gorm:"column:quiz_title" json:"quiz_title"`
		Score       float64   `json:"score"`
		SubmittedAt time.Time `json:"submitted_at"`
	}
	err := h.db.Raw(`
		SELECT s.id, q.title AS quiz_title, s.score, s.submitted_at
		FROM submissions s
		JOIN quizzes q ON s.quiz_id = q.id
		WHERE s.user_id = ?
		ORDER BY s.submitted_at DESC`, claims.UserID).Scan(&rows).Error
	if err != nil {
		h.log.WithError(err).Error("my-submissions query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch your submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GetAttempts reports how many times the caller has submitted the quiz.
// The client uses this to cap repeat attempts; the cap itself is not
// enforced here.
func (h *SubmissionHandler) GetAttempts(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quiz ID"})
		return
	}

	var attempts int64
	if err := h.db.Model(&models.Submission{}).
		Where("user_id = ? AND quiz_id = ?", claims.UserID, quizID).
		Count(&attempts).Error; err != nil {
		h.log.WithError(err).Error("attempts query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch attempts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// GetAllSubmissions lists every submission with its user and quiz, newest
// first. Admin only.
func (h *SubmissionHandler) GetAllSubmissions(c *gin.Context) {
	var rows []struct {
		ID          uint      `json:"id"`
		Username    string    `json:"username"`
		QuizTitle   string    `gorm:"column:quiz_title" json:"quiz_title"`
		Score       float64   `json:"score"`
		SubmittedAt time.Time `json:"submitted_at"`
	}
	err := h.db.Raw(`
		SELECT s.id, u.username, q.title AS quiz_title, s.score, s.submitted_at
		FROM submissions s
		JOIN users u ON s.user_id = u.id
		JOIN quizzes q ON s.quiz_id = q.id
		ORDER BY s.submitted_at DESC`).Scan(&rows).Error
	if err != nil {
		h.log.WithError(err).Error("submissions query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GetQuizSubmissions lists a quiz's submissions ordered by score
// descending, earliest-first on ties.
func (h *SubmissionHandler) GetQuizSubmissions(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quiz ID"})
		return
	}

	var rows []struct {
		ID          uint      `json:"id"`
		Username    string    `json:"username"`
		Score       float64   `json:"score"`
		SubmittedAt time.Time `json:"submitted_at"`
	}
	err = h.db.Raw(`
		SELECT s.id, u.username, s.score, s.submitted_at
		FROM submissions s
		JOIN users u ON s.user_id = u.id
		WHERE s.quiz_id = ?
		ORDER BY s.score DESC, s.submitted_at ASC`, quizID).Scan(&rows).Error
	if err != nil {
		h.log.WithError(err).Error("quiz submissions query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch quiz submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GetLeaderboard ranks a quiz's participants by best score, top 10. Ties
// break on the earliest time the best score was achieved, so an equal
// score reached sooner ranks higher.
func (h *SubmissionHandler) GetLeaderboard(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quiz ID"})
		return
	}

	var rows []struct {
		Username   string    `json:"username"`
		TopScore   float64   `gorm:"column:top_score" json:"top_score"`
		AchievedAt time.Time `gorm:"column:achieved_at" json:"achieved_at"`
	}
	// One row per user: the earliest submission holding their best score.
	// achieved_at stays a plain column reference so the driver scans it as
	// a timestamp.
	err = h.db.Raw(`
		SELECT u.username, s.score AS top_score, s.submitted_at AS achieved_at
		FROM submissions s
		JOIN users u ON u.id = s.user_id
		WHERE s.quiz_id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM submissions s2
			WHERE s2.quiz_id = s.quiz_id
			  AND s2.user_id = s.user_id
			  AND (s2.score > s.score
			    OR (s2.score = s.score AND s2.submitted_at < s.submitted_at)
			    OR (s2.score = s.score AND s2.submitted_at = s.submitted_at AND s2.id < s.id))
		  )
		ORDER BY s.score DESC, s.submitted_at ASC
		LIMIT 10`, quizID).Scan(&rows).Error
	if err != nil {
		h.log.WithError(err).Error("leaderboard query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GetEmployeeLeaderboard ranks best scores per (user, quiz) across all
// quizzes with the same tie-break policy as the per-quiz leaderboard, and
// no cap.
func (h *SubmissionHandler) GetEmployeeLeaderboard(c *gin.Context) {
	var rows []struct {
		Username   string    `json:"username"`
		QuizTitle  string    `gorm:"column:quiz_title" json:"quiz_title"`
		Score      float64   `json:"score"`
		AchievedAt time.Time `gorm:"column:achieved_at" json:"achieved_at"`
	}
	// One row per (user, quiz) pair: the earliest submission holding the
	// pair's best score.
	err := h.db.Raw(`
		SELECT u.username, q.title AS quiz_title, s.score, s.submitted_at AS achieved_at
		FROM submissions s
		JOIN users u ON u.id = s.user_id
		JOIN quizzes q ON q.id = s.quiz_id
		WHERE NOT EXISTS (
			SELECT 1 FROM submissions s2
			WHERE s2.user_id = s.user_id
			  AND s2.quiz_id = s.quiz_id
			  AND (s2.score > s.score
			    OR (s2.score = s.score AND s2.submitted_at < s.submitted_at)
			    OR (s2.score = s.score AND s2.submitted_at = s.submitted_at AND s2.id < s.id))
		)
		ORDER BY s.score DESC, s.submitted_at ASC`).Scan(&rows).Error
	if err != nil {
		h.log.WithError(err).Error("employee leaderboard query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}
