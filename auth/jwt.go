package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleGuest = "guest"
)

// IssueToken signs an HS256 session token. The token is opaque to clients;
// only the server checks it.
func IssueToken(secret, subjectID, email, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": subjectID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
