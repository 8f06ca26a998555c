package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketstore/backend/internal/token"
)

// HeaderName carries the bearer credential. http.Header lookups are
// canonicalized, so clients may send it in any case.
const HeaderName = "X-Auth-Token"

const contextKey = "userID"

// RequireLogin verifies the X-Auth-Token header and stores the user id in
// the echo context for handlers to pick up via UserID.
func RequireLogin(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderName)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(contextKey, userID)
			return next(c)
		}
	}
}

func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get(contextKey).(uint)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}
