package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Siddhardha2330/backendrepo/internal/models"
)

// QuizHandler handles quiz CRUD and dashboard aggregates.
type QuizHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewQuizHandler(db *gorm.DB, log *logrus.Logger) *QuizHandler {
	return &QuizHandler{db: db, log: log}
}

type quizWithStats struct {
	models.Quiz
	Participants  int     `gorm:"column:participants"`
	AvgScore      float64 `gorm:"column:avg_score"`
	QuestionCount int     `gorm:"column:question_count"`
}

// GetQuizzes returns all quizzes with per-quiz statistics: distinct
// participants, average score rounded to the nearest integer and question
// count. Quizzes without submissions report 0/0, not null.
func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	var rows []quizWithStats
	err := h.db.Raw(`
		SELECT q.id, q.title, q.category, q.difficulty, q.duration, q.status,
		       q.created_at, q.updated_at,
		       COUNT(DISTINCT s.user_id) AS participants,
		       COALESCE(AVG(s.score), 0) AS avg_score,
		       COUNT(DISTINCT qst.id) AS question_count
		FROM quizzes q
		LEFT JOIN submissions s ON s.quiz_id = q.id
		LEFT JOIN questions qst ON qst.quiz_id = q.id
		GROUP BY q.id, q.title, q.category, q.difficulty, q.duration, q.status,
		         q.created_at, q.updated_at
		ORDER BY q.created_at DESC`).Scan(&rows).Error
	if err != nil {
		h.log.WithError(err).Error("quiz stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch quizzes."})
		return
	}

	formatted := make([]gin.H, 0, len(rows))
	for _, q := range rows {
		formatted = append(formatted, gin.H{
			"id":           q.ID,
			"title":        q.Title,
			"category":     q.Category,
			"difficulty":   q.Difficulty,
			"duration":     q.Duration,
			"status":       q.Status,
			"participants": q.Participants,
			"avgScore":     int(math.Round(q.AvgScore)),
			"questions":    q.QuestionCount,
			"created":      q.CreatedAt.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": formatted})
}

// CreateQuiz validates against the enumerated field sets and inserts the
// quiz. Unknown enum values are rejected, never coerced.
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req struct {
		Title      string `json:"title"`
		Category   string `json:"category"`
		Difficulty string `json:"difficulty"`
		Duration   int    `json:"duration"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body."})
		return
	}

	if req.Title == "" || req.Category == "" || req.Difficulty == "" || req.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields."})
		return
	}
	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category value. Only Hardware and Software are allowed."})
		return
	}
	if !models.IsValidDifficulty(req.Difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid difficulty value."})
		return
	}
	if req.Status != "" && !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status value."})
		return
	}
	if req.Status == "" {
		req.Status = models.StatusDraft
	}

	quiz := models.Quiz{
		Title:      req.Title,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Duration:   req.Duration,
		Status:     req.Status,
	}
	if err := h.db.Create(&quiz).Error; err != nil {
		h.log.WithError(err).Error("quiz insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create quiz."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": quiz})
}

// DeleteQuiz removes a quiz; the store cascades the delete to questions
// and submissions.
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quiz ID."})
		return
	}

	var quiz models.Quiz
	if err := h.db.First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Quiz not found."})
			return
		}
		h.log.WithError(err).Error("quiz lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete quiz."})
		return
	}

	if err := h.db.Delete(&quiz).Error; err != nil {
		h.log.WithError(err).Error("quiz delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete quiz."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quiz deleted successfully."})
}

// GetDashboardStats returns the admin dashboard aggregates.
func (h *QuizHandler) GetDashboardStats(c *gin.Context) {
	var totalQuizzes, publishedQuizzes, draftQuizzes, totalParticipants int64

	err := errors.Join(
		h.db.Model(&models.Quiz{}).Count(&totalQuizzes).Error,
		h.db.Model(&models.Quiz{}).Where("status = ?", models.StatusPublished).Count(&publishedQuizzes).Error,
		h.db.Model(&models.Quiz{}).Where("status = ?", models.StatusDraft).Count(&draftQuizzes).Error,
		h.db.Model(&models.Submission{}).Distinct("user_id").Count(&totalParticipants).Error,
	)
	if err != nil {
		h.log.WithError(err).Error("dashboard stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch dashboard statistics."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalQuizzes":      totalQuizzes,
			"publishedQuizzes":  publishedQuizzes,
			"draftQuizzes":      draftQuizzes,
			"totalParticipants": totalParticipants,
		},
	})
}

// GetAvailableQuizzes lists quizzes for employees.
func (h *QuizHandler) GetAvailableQuizzes(c *gin.Context) {
	var quizzes []models.Quiz
	if err := h.db.Find(&quizzes).Error; err != nil {
		h.log.WithError(err).Error("available quizzes query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch available quizzes."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": quizzes})
}

// GetEmployeeStats returns the employee dashboard aggregates. The rating
// aggregate is an abandoned feature and is reported as a fixed zero.
func (h *QuizHandler) GetEmployeeStats(c *gin.Context) {
	var totalQuizzes, totalParticipants int64
	var avgDuration float64

	err := errors.Join(
		h.db.Model(&models.Quiz{}).Count(&totalQuizzes).Error,
		h.db.Model(&models.Submission{}).Distinct("user_id").Count(&totalParticipants).Error,
		h.db.Model(&models.Quiz{}).Select("COALESCE(AVG(duration), 0)").Scan(&avgDuration).Error,
	)
	if err != nil {
		h.log.WithError(err).Error("employee stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalQuizzes":      totalQuizzes,
			"totalParticipants": totalParticipants,
			"avgDuration":       int(math.Round(avgDuration)),
			"avgRating":         0,
		},
	})
}
