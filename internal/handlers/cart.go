package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rocketstore/backend/internal/middleware/auth"
	"github.com/rocketstore/backend/internal/models"
	"github.com/rocketstore/backend/internal/mykafka"
)

type CartHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

// cartLine is one cart entry joined with the live product row. Prices here
// always reflect the current catalog, only order items freeze them.
type cartLine struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	Quantity  uint    `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Total     float64 `json:"total"`
}

func (h *CartHandler) cartLines(c echo.Context, userID uint) ([]cartLine, error) {
	var lines []cartLine
	err := h.DB.WithContext(c.Request().Context()).
		Table("cart_items").
		Select("cart_items.id, cart_items.product_id, cart_items.quantity, products.name, products.price, products.image_url").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].Total = lines[i].Price * float64(lines[i].Quantity)
	}
	return lines, nil
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	lines, err := h.cartLines(c, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var total float64
	for _, l := range lines {
		total += l.Total
	}
	if lines == nil {
		lines = []cartLine{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": lines,
		"total": total,
		"count": len(lines),
	})
}

// AddToCart merges into an existing entry or creates one. The product id is
// not checked against the catalog: an entry for an unknown product simply
// never joins in GetCart or order creation.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  uint `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}
	if req.ProductID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var item models.CartItem
	tx := h.DB.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&item)
	switch {
	case tx.Error == nil:
		item.Quantity += req.Quantity
		if err := h.DB.Save(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	case errors.Is(tx.Error, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:    userID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := h.DB.Create(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, tx.Error.Error())
	}

	publishEvent(c, h.Producer, "cart_events", map[string]any{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": req.ProductID,
		"quantity":  item.Quantity,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Added to cart"})
}

// RemoveFromCart deletes the entry scoped to the owner. An id that does not
// exist, or belongs to someone else, deletes nothing and still returns 200.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "cart_item_id required")
	}

	if err := h.DB.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CartItem{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publishEvent(c, h.Producer, "cart_events", map[string]any{
		"type":   "cart_item_removed",
		"userID": userID,
		"itemID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Removed from cart"})
}
