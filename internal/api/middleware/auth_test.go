package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Siddhardha2330/backendrepo/internal/models"
)

var testSecret = []byte("unit-test-secret")

func testUser() *models.User {
	empID := "EMP-1"
	return &models.User{
		ID:       42,
		Username: "bob",
		Email:    "bob@corp.test",
		EmpID:    &empID,
		Role:     models.RoleEmployee,
	}
}

func authRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": CurrentClaims(c).UserID})
	})
	return r
}

func TestSignAndParseToken(t *testing.T) {
	tok, err := SignToken(testSecret, testUser(), time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, tok)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, models.RoleEmployee, claims.Role)
	assert.Equal(t, "bob@corp.test", claims.Email)
	assert.Equal(t, "EMP-1", claims.EmpID)
	assert.Equal(t, "bob", claims.Username)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tok, err := SignToken(testSecret, testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, tok)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tok, err := SignToken(testSecret, testUser(), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), tok)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	r := authRouter(testSecret)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}

	t.Run("valid token passes claims through", func(t *testing.T) {
		tok, err := SignToken(testSecret, testUser(), time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "42")
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		tok, err := SignToken(testSecret, testUser(), -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
