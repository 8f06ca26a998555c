package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rocketstore/backend/internal/logging"
	"github.com/rocketstore/backend/internal/middleware/auth"
	"github.com/rocketstore/backend/internal/models"
	"github.com/rocketstore/backend/internal/mykafka"
)

const firstOrderDiscountRate = 0.20

// paymentInstructions are static manual-payment details keyed by method.
// No payment is executed here, the client shows these to the buyer.
var paymentInstructions = map[string]map[string]string{
	"sberbank": {
		"card_number": "2202 2083 9585 3485",
		"recipient":   "Никита Владимирович Т.",
		"bank":        "Сбербанк",
	},
	"sbp": {
		"phone":     "+7 (XXX) XXX-XX-XX",
		"recipient": "Никита Владимирович Т.",
		"bank":      "СБП",
	},
	"tbank": {
		"status":  "coming_soon",
		"message": "Скоро",
	},
}

type OrderHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

// orderLine is a cart entry joined with the live product row, read inside
// the order transaction so the priced snapshot and the cart clear see the
// same state.
type orderLine struct {
	ProductID uint    `json:"product_id"`
	Quantity  uint    `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// CreateOrder converts the user's cart into an immutable order: total from
// current prices, optional one-time 20% discount, frozen item snapshots,
// cart cleared. All of it commits or none of it does.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		PaymentMethod string `json:"payment_method"`
		UseDiscount   bool   `json:"use_discount"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payment_method required")
	}
	if req.PaymentMethod == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payment_method required")
	}

	var order models.Order

	txErr := h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []orderLine
		if err := tx.
			Table("cart_items").
			Select("cart_items.product_id, cart_items.quantity, products.name, products.price").
			Joins("JOIN products ON products.id = cart_items.product_id").
			Where("cart_items.user_id = ?", userID).
			Scan(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		var total float64
		for _, line := range lines {
			total += line.Price * float64(line.Quantity)
		}

		var discount float64
		if req.UseDiscount {
			// Conditional update doubles as the lock: two concurrent
			// orders can both request the discount, only the one whose
			// UPDATE hits the row gets it.
			res := tx.Model(&models.User{}).
				Where("id = ? AND first_order_discount_used = ?", userID, false).
				Update("first_order_discount_used", true)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				discount = total * firstOrderDiscountRate
			}
		}

		order = models.Order{
			PublicID:       uuid.New(),
			UserID:         userID,
			TotalAmount:    total,
			DiscountAmount: discount,
			FinalAmount:    total - discount,
			PaymentMethod:  req.PaymentMethod,
			PaymentStatus:  "pending",
			Status:         "pending",
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItem{
				OrderID:      order.ID,
				ProductID:    line.ProductID,
				ProductName:  line.Name,
				ProductPrice: line.Price,
				Quantity:     line.Quantity,
				TotalPrice:   line.Price * float64(line.Quantity),
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if txErr != nil {
		if he, ok := txErr.(*echo.HTTPError); ok {
			return he
		}
		l.Error("order transaction failed", "error", txErr)
		return echo.NewHTTPError(http.StatusInternalServerError, txErr.Error())
	}

	publishEvent(c, h.Producer, "order_events", map[string]any{
		"type":    "order_created",
		"userID":  userID,
		"orderID": order.ID,
		"amount":  order.FinalAmount,
	})

	info := paymentInstructions[req.PaymentMethod]
	if info == nil {
		info = map[string]string{}
	}

	l.Info("order created", "order_id", order.ID, "final_amount", order.FinalAmount)
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"order_id":     order.ID,
		"public_id":    order.PublicID,
		"final_amount": order.FinalAmount,
		"payment_info": info,
		"message":      "Order created successfully",
	})
}

// ListOrders returns the user's order history, newest first, with the
// frozen item snapshots nested.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var orders []models.Order
	if err := h.DB.WithContext(c.Request().Context()).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}
