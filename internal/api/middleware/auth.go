package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Siddhardha2330/backendrepo/internal/models"
)

const claimsContextKey = "auth_claims"

// Claims is the signed identity carried by every protected request.
type Claims struct {
	UserID   uint   `json:"id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	EmpID    string `json:"empId,omitempty"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for the user with the given lifetime.
func SignToken(secret []byte, u *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	empID := ""
	if u.EmpID != nil {
		empID = *u.EmpID
	}
	claims := Claims{
		UserID:   u.ID,
		Role:     u.Role,
		Email:    u.Email,
		EmpID:    empID,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(secret []byte, tok string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return c, nil
}

// RequireAuth rejects requests without a valid bearer token and attaches
// the decoded claims to the gin context for downstream handlers.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or malformed authorization header"})
			return
		}

		tok := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := ParseToken(secret, tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims set by RequireAuth, or nil on an
// unauthenticated request.
func CurrentClaims(c *gin.Context) *Claims {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
