package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionDuration is how long a login stays valid.
const SessionDuration = 2 * time.Hour

// JwtSecret signs session tokens. main verifies it is set before serving;
// tests assign it directly.
var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

// GenerateSessionToken creates the signed token stored in the session cookie.
func GenerateSessionToken(username, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(SessionDuration).Unix(),
	})

	return token.SignedString(JwtSecret)
}
