package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Siddhardha2330/backendrepo/internal/models"
)

func TestAddQuestion(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "alice", "alice@corp.test", "", "password123", models.RoleAdmin)
	token := env.token(t, admin)
	quiz := env.createQuiz(t, "Basics", "Hardware", "Easy", 10, "Published")

	w := env.request(t, http.MethodPost, "/api/quizzes/questions", token, map[string]any{
		"quiz_id": quiz.ID, "question": "What does RAM stand for?",
		"optionA": "Random Access Memory", "optionB": "Read And Modify",
		"optionC": "Rapid Access Mode", "optionD": "Runtime Allocated Memory",
		"correctOption": "A",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var q models.Question
	require.NoError(t, env.db.Where("quiz_id = ?", quiz.ID).First(&q).Error)
	assert.Equal(t, "A", q.CorrectAnswer)
	assert.Empty(t, q.Explanation)
}

func TestAddQuestionValidation(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "alice", "alice@corp.test", "", "password123", models.RoleAdmin)
	token := env.token(t, admin)
	quiz := env.createQuiz(t, "Basics", "Hardware", "Easy", 10, "Published")

	// Marker outside {A,B,C,D}.
	w := env.request(t, http.MethodPost, "/api/quizzes/questions", token, map[string]any{
		"quiz_id": quiz.ID, "question": "q?",
		"optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d",
		"correctOption": "E",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown quiz.
	w = env.request(t, http.MethodPost, "/api/quizzes/questions", token, map[string]any{
		"quiz_id": 999, "question": "q?",
		"optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d",
		"correctOption": "A",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing option.
	w = env.request(t, http.MethodPost, "/api/quizzes/questions", token, map[string]any{
		"quiz_id": quiz.ID, "question": "q?",
		"optionA": "a", "optionB": "b", "optionC": "c",
		"correctOption": "A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQuizQuestionsTranslatesMarker(t *testing.T) {
	env := newTestEnv(t)
	emp := env.createUser(t, "bob", "bob@corp.test", "EMP-1", "password123", models.RoleEmployee)
	quiz := env.createQuiz(t, "Basics", "Software", "Medium", 15, "Published")

	require.NoError(t, env.db.Create(&models.Question{
		QuizID: quiz.ID, QuestionText: "Pick C",
		OptionA: "first", OptionB: "second", OptionC: "third", OptionD: "fourth",
		CorrectAnswer: "C", Explanation: "third is right",
	}).Error)
	require.NoError(t, env.db.Create(&models.Question{
		QuizID: quiz.ID, QuestionText: "Pick A",
		OptionA: "one", OptionB: "two", OptionC: "three", OptionD: "four",
		CorrectAnswer: "A",
	}).Error)

	w := env.request(t, http.MethodGet, "/api/quizzes/"+itoa(quiz.ID)+"/questions", env.token(t, emp), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, []string{"first", "second", "third", "fourth"}, out[0].Options)
	assert.Equal(t, 2, out[0].CorrectAnswer)
	assert.Equal(t, "third is right", out[0].Explanation)

	// Explanation defaults to the empty string, marker A maps to index 0.
	assert.Equal(t, 0, out[1].CorrectAnswer)
	assert.Equal(t, "", out[1].Explanation)
}

func TestGetAllQuestionsIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "alice", "alice@corp.test", "", "password123", models.RoleAdmin)
	emp := env.createUser(t, "bob", "bob@corp.test", "EMP-1", "password123", models.RoleEmployee)
	quiz := env.createQuiz(t, "Basics", "Hardware", "Easy", 10, "Published")
	require.NoError(t, env.db.Create(&models.Question{
		QuizID: quiz.ID, QuestionText: "q?", OptionA: "a", OptionB: "b",
		OptionC: "c", OptionD: "d", CorrectAnswer: "D",
	}).Error)

	w := env.request(t, http.MethodGet, "/api/quizzes/questions", env.token(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/quizzes/questions", env.token(t, emp), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
