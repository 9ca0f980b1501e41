package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

func NewTokenAuth(key []byte) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", key, nil)
}

// GenerateToken issues a bearer token whose subject is the user's email.
func GenerateToken(tokenAuth *jwtauth.JWTAuth, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	_, tokenString, err := tokenAuth.Encode(claims)
	return tokenString, err
}

func GetSubjectFromClaims(claims map[string]interface{}) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return sub, nil
}
