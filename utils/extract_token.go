package utils

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

// ParseSessionToken validates a session token and returns the username and
// role it was issued for.
func ParseSessionToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})

	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", "", errors.New("invalid username in token")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", "", errors.New("invalid role in token")
	}

	return username, role, nil
}
