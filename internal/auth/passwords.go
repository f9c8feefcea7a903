// Package auth holds credential handling: password hashing and the
// validation of signup/login requests.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword irreversibly hashes a plaintext password. The plaintext is
// never persisted or logged anywhere.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
