package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rocketstore/backend/internal/token"
)

func doRequest(t *testing.T, tokens *token.Service, headerValue string) (*httptest.ResponseRecorder, error, uint) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	if headerValue != "" {
		req.Header.Set(HeaderName, headerValue)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint
	handler := RequireLogin(tokens)(func(c echo.Context) error {
		id, err := UserID(c)
		if err != nil {
			return err
		}
		gotID = id
		return c.NoContent(http.StatusOK)
	})

	return rec, handler(c), gotID
}

func TestRequireLoginMissingHeader(t *testing.T) {
	tokens := &token.Service{Secret: []byte("test_secret")}

	_, err, _ := doRequest(t, tokens, "")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Authentication required", he.Message)
}

func TestRequireLoginInvalidToken(t *testing.T) {
	tokens := &token.Service{Secret: []byte("test_secret")}

	_, err, _ := doRequest(t, tokens, "not-a-token")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Invalid token", he.Message)
}

func TestRequireLoginExpiredToken(t *testing.T) {
	tokens := &token.Service{Secret: []byte("test_secret")}

	claims := jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokens.Secret)
	require.NoError(t, err)

	_, reqErr, _ := doRequest(t, tokens, expired)
	he, ok := reqErr.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Token expired", he.Message)
}

func TestRequireLoginValidToken(t *testing.T) {
	tokens := &token.Service{Secret: []byte("test_secret")}

	credential, err := tokens.Issue(7, "user@example.com")
	require.NoError(t, err)

	rec, reqErr, gotID := doRequest(t, tokens, credential)
	require.NoError(t, reqErr)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint(7), gotID)
}
