package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

const validity = 30 * 24 * time.Hour

type Service struct {
	Secret []byte
}

// Issue signs a credential for userID. The token carries the email purely
// for client convenience, verification only trusts user_id.
func (s *Service) Issue(userID uint, email string) (string, error) {
	exp := time.Now().Add(validity)
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Expiry is reported as ErrTokenExpired, every other failure as
// ErrTokenInvalid.
func (s *Service) Verify(raw string) (uint, error) {
	if raw == "" {
		return 0, ErrTokenInvalid
	}

	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !t.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	idRaw, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrTokenInvalid
	}

	return uint(idRaw), nil
}
