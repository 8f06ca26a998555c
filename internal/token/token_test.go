package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	credential, err := svc.Issue(7, "user@example.com")
	require.NoError(t, err)

	userID, err := svc.Verify(credential)
	require.NoError(t, err)
	require.Equal(t, uint(7), userID)
}

func TestVerifyEmpty(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	_, err := svc.Verify("")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := &Service{Secret: []byte("secret_a")}
	verifier := &Service{Secret: []byte("secret_b")}

	credential, err := issuer.Issue(7, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(credential)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyExpired(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	claims := jwt.MapClaims{
		"user_id": 7,
		"email":   "user@example.com",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.Secret)
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	require.ErrorIs(t, err, ErrTokenExpired)
	require.False(t, errors.Is(err, ErrTokenInvalid))
}

func TestVerifyMissingUserID(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	claims := jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.Secret)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
