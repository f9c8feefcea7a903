package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Siddhardha2330/backendrepo/internal/api/middleware"
	apiserver "github.com/Siddhardha2330/backendrepo/internal/api/server"
	"github.com/Siddhardha2330/backendrepo/internal/auth"
	"github.com/Siddhardha2330/backendrepo/internal/config"
	database "github.com/Siddhardha2330/backendrepo/internal/db"
	"github.com/Siddhardha2330/backendrepo/internal/logging"
	"github.com/Siddhardha2330/backendrepo/internal/models"
)

const testSecret = "test-secret"

type testEnv struct {
	cfg     *config.Config
	db      *gorm.DB
	handler http.Handler
}

// newTestEnv brings up the full router against a throwaway sqlite database
// with foreign keys enforced, so cascade semantics match production.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.LogLevel = "error"
	cfg.Auth.JWTSecret = testSecret
	cfg.Auth.TokenTTLHours = 24
	cfg.Auth.BcryptCost = bcrypt.MinCost

	dsn := filepath.Join(t.TempDir(), "quiz.db") + "?_foreign_keys=on"
	client, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.AutoMigrate())

	log := logging.New("quiz-api-test", "error")
	srv := apiserver.New(cfg, client, log, nil)

	return &testEnv{cfg: cfg, db: client.DB, handler: srv.Handler()}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createUser(t *testing.T, username, email, empID, password, role string) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if empID != "" {
		user.EmpID = &empID
	}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) token(t *testing.T, user models.User) string {
	t.Helper()
	tok, err := middleware.SignToken([]byte(testSecret), &user, time.Hour)
	require.NoError(t, err)
	return tok
}

func (e *testEnv) createQuiz(t *testing.T, title, category, difficulty string, duration int, status string) models.Quiz {
	t.Helper()
	quiz := models.Quiz{
		Title:      title,
		Category:   category,
		Difficulty: difficulty,
		Duration:   duration,
		Status:     status,
	}
	require.NoError(t, e.db.Create(&quiz).Error)
	return quiz
}

func (e *testEnv) addSubmission(t *testing.T, userID, quizID uint, score float64, at time.Time) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Submission{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		SubmittedAt: at,
	}).Error)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
