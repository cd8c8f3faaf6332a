package auth

import (
	"time"

	"github.com/golang-jwt/jwt"

	"microblog/apperrors"
)

// TokenManager issues and verifies the bearer tokens used by the protected
// endpoints. Tokens are HS256-signed with a shared secret and carry the
// username as the subject claim.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenManager(secret string, lifetime time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), lifetime: lifetime}
}

// CreateToken signs a token for the given username.
func (m *TokenManager) CreateToken(username string) (string, error) {
	claims := jwt.StandardClaims{
		Subject:   username,
		ExpiresAt: time.Now().Add(m.lifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken checks the signature and expiry and returns the subject.
func (m *TokenManager) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Unauthorized("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", apperrors.Unauthorized("could not validate credentials")
	}
	return claims.Subject, nil
}
