package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rocketstore/backend/internal/models"
	"github.com/rocketstore/backend/internal/token"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *token.Service
	A      *AuthHandler
	P      *ProductHandler
	C      *CartHandler
	O      *OrderHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	tokens := &token.Service{Secret: []byte("test_secret")}

	return &testEnv{
		T:      t,
		E:      echo.New(),
		DB:     db,
		Tokens: tokens,
		A:      &AuthHandler{DB: db, Tokens: tokens},
		P:      &ProductHandler{DB: db},
		C:      &CartHandler{DB: db},
		O:      &OrderHandler{DB: db},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// asUser emulates a request that passed the auth middleware.
func asUser(c echo.Context, userID uint) {
	c.Set("userID", userID)
}

func (env *testEnv) createUser(t *testing.T) models.User {
	t.Helper()
	user := models.User{
		Email:          "buyer@example.com",
		Name:           "Buyer",
		AuthProvider:   "google",
		AuthProviderID: "g-1",
		ReferralCode:   "ROCKETAAAA0001",
	}
	require.NoError(t, env.DB.Create(&user).Error)
	return user
}

func httpErr(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	return he
}
