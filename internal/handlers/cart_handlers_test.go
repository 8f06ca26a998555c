package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketstore/backend/internal/models"
)

func addToCart(t *testing.T, env *testEnv, userID, productID, quantity uint) {
	t.Helper()
	payload := map[string]uint{"product_id": productID, "quantity": quantity}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", payload)
	asUser(c, userID)
	require.NoError(t, env.C.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAddToCartAccumulates(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	require.NoError(t, env.DB.Create(&models.Product{Name: "test", Category: "games", Price: 100, Description: "d"}).Error)

	addToCart(t, env, user.ID, 1, 2)
	addToCart(t, env, user.ID, 1, 3)

	var items []models.CartItem
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, uint(5), items[0].Quantity)
}

func TestAddToCartMissingProduct(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]uint{"quantity": 2})
	asUser(c, user.ID)
	he := httpErr(t, env.C.AddToCart(c))
	require.Equal(t, http.StatusBadRequest, he.Code)
	require.Equal(t, "product_id required", he.Message)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]uint{"product_id": 7})
	asUser(c, user.ID)
	require.NoError(t, env.C.AddToCart(c))

	var item models.CartItem
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&item).Error)
	require.Equal(t, uint(1), item.Quantity)
}

func TestGetCartJoinsLivePrices(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	require.NoError(t, env.DB.Create(&models.Product{Name: "alpha", Category: "games", Price: 100, Description: "d"}).Error)
	require.NoError(t, env.DB.Create(&models.Product{Name: "beta", Category: "games", Price: 50, Description: "d"}).Error)

	addToCart(t, env, user.ID, 1, 2)
	addToCart(t, env, user.ID, 2, 1)
	// entry for a product that does not exist never joins
	addToCart(t, env, user.ID, 99, 1)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/cart", nil)
	asUser(c, user.ID)
	require.NoError(t, env.C.GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []cartLine `json:"items"`
		Total float64    `json:"total"`
		Count int        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	require.Equal(t, float64(250), resp.Total)

	// cart reflects the live catalog: change the price, not the cart
	require.NoError(t, env.DB.Model(&models.Product{}).Where("id = ?", 1).Update("price", 200).Error)

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/v1/cart", nil)
	asUser(c2, user.ID)
	require.NoError(t, env.C.GetCart(c2))
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	require.Equal(t, float64(450), resp.Total)
}

func TestRemoveFromCart(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	item := models.CartItem{UserID: user.ID, ProductID: 1, Quantity: 2}
	require.NoError(t, env.DB.Create(&item).Error)

	rec, c := env.doJSONRequest(http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", item.ID), nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(item.ID))
	asUser(c, user.ID)
	require.NoError(t, env.C.RemoveFromCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestRemoveFromCartForeignItemIsNoop(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t)

	other := models.User{
		Email: "other@example.com", Name: "Other",
		AuthProvider: "google", AuthProviderID: "g-2",
		ReferralCode: "ROCKETAAAA0002",
	}
	require.NoError(t, env.DB.Create(&other).Error)

	item := models.CartItem{UserID: owner.ID, ProductID: 1, Quantity: 2}
	require.NoError(t, env.DB.Create(&item).Error)

	rec, c := env.doJSONRequest(http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", item.ID), nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(item.ID))
	asUser(c, other.ID)
	require.NoError(t, env.C.RemoveFromCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.CartItem{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}
