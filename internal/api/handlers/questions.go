package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Siddhardha2330/backendrepo/internal/models"
)

// QuestionHandler handles question creation and listing.
type QuestionHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewQuestionHandler(db *gorm.DB, log *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{db: db, log: log}
}

// AddQuestion attaches a question to an existing quiz. The correct-option
// marker must index into the four stored options.
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var req struct {
		QuizID        uint   `json:"quiz_id"`
		Question      string `json:"question"`
		OptionA       string `json:"optionA"`
		OptionB       string `json:"optionB"`
		OptionC       string `json:"optionC"`
		OptionD       string `json:"optionD"`
		CorrectOption string `json:"correctOption"`
		Explanation   string `json:"explanation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if req.QuizID == 0 || req.Question == "" ||
		req.OptionA == "" || req.OptionB == "" || req.OptionC == "" || req.OptionD == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if !models.IsValidCorrectAnswer(req.CorrectOption) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid correct option. Must be one of: A, B, C, D"})
		return
	}

	var quiz models.Quiz
	if err := h.db.First(&quiz, req.QuizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
			return
		}
		h.log.WithError(err).Error("quiz lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding question"})
		return
	}

	question := models.Question{
		QuizID:        req.QuizID,
		QuestionText:  req.Question,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectOption,
		Explanation:   req.Explanation,
	}
	if err := h.db.Create(&question).Error; err != nil {
		h.log.WithError(err).Error("question insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding question"})
		return
	}

	c.JSON(http.StatusCreated, question)
}

// GetQuestions lists every question across all quizzes.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var questions []models.Question
	if err := h.db.Find(&questions).Error; err != nil {
		h.log.WithError(err).Error("questions query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuizQuestions lists a quiz's questions in the quiz-taking shape:
// options as an ordered array, the correct marker translated to a 0-based
// index, and explanation defaulted to the empty string.
func (h *QuestionHandler) GetQuizQuestions(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quiz ID"})
		return
	}

	var questions []models.Question
	if err := h.db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		h.log.WithError(err).Error("quiz questions query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching questions"})
		return
	}

	formatted := make([]gin.H, 0, len(questions))
	for _, q := range questions {
		formatted = append(formatted, gin.H{
			"id":            q.ID,
			"question":      q.QuestionText,
			"options":       q.Options(),
			"correctAnswer": q.CorrectIndex(),
			"explanation":   q.Explanation,
		})
	}

	c.JSON(http.StatusOK, formatted)
}
