package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rocketstore/backend/internal/logging"
	"github.com/rocketstore/backend/internal/models"
	"github.com/rocketstore/backend/internal/mykafka"
	"github.com/rocketstore/backend/internal/token"
)

const referralPrefix = "ROCKET"

// referral code collisions are possible in principle, so user creation
// retries with a fresh code a few times before giving up.
const createAttempts = 3

type AuthHandler struct {
	DB       *gorm.DB
	Tokens   *token.Service
	Producer *mykafka.Producer
}

type oauthUserInfo struct {
	ID        string `json:"id"`
	Sub       string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func (u oauthUserInfo) providerID() string {
	if u.ID != "" {
		return u.ID
	}
	return u.Sub
}

// OAuthCallback logs a user in after the external provider verified the
// identity. The provider's user_info is trusted as-is, the OAuth code
// exchange happens upstream.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.oauth_callback")

	var req struct {
		Provider string         `json:"provider"`
		UserInfo *oauthUserInfo `json:"user_info"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing provider or user_info")
	}
	if req.Provider == "" || req.UserInfo == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing provider or user_info")
	}

	name := req.UserInfo.Name
	if name == "" {
		name = "User"
	}

	var user models.User
	created := false
	err := h.DB.WithContext(ctx).
		Where("auth_provider_id = ? AND auth_provider = ?", req.UserInfo.providerID(), req.Provider).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Email:          req.UserInfo.Email,
			Name:           name,
			AvatarURL:      req.UserInfo.AvatarURL,
			AuthProvider:   req.Provider,
			AuthProviderID: req.UserInfo.providerID(),
		}
		if err := h.createUser(ctx, &user); err != nil {
			l.Error("user create failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "could not create user")
		}
		created = true
	} else if err != nil {
		l.Error("user lookup failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}

	credential, err := h.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		l.Error("token issue failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not issue token")
	}

	eventType := "user_logged_in"
	if created {
		eventType = "user_registered"
	}
	publishEvent(c, h.Producer, "user_events", map[string]any{
		"type":     eventType,
		"userID":   user.ID,
		"provider": req.Provider,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"token": credential,
		"user":  user,
	})
}

func (h *AuthHandler) createUser(ctx context.Context, user *models.User) error {
	var lastErr error
	for i := 0; i < createAttempts; i++ {
		code, err := generateReferralCode()
		if err != nil {
			return err
		}
		user.ReferralCode = code
		if lastErr = h.DB.WithContext(ctx).Create(user).Error; lastErr == nil {
			return nil
		}
	}
	return lastErr
}

// VerifyToken validates a credential and returns the current profile
// snapshot. Expired and malformed tokens get distinct messages, both 401.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}

	userID, err := h.Tokens.Verify(req.Token)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	var user models.User
	if err := h.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"user":  user,
	})
}

// Logout is stateless: tokens stay valid until expiry, the client just
// drops its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func generateReferralCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return referralPrefix + strings.ToUpper(hex.EncodeToString(b)), nil
}
