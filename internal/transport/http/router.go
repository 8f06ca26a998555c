package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/rocketstore/backend/internal/handlers"
	"github.com/rocketstore/backend/internal/middleware/auth"
	"github.com/rocketstore/backend/internal/token"
)

type Deps struct {
	Tokens         *token.Service
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
	OrderHandler   *handlers.OrderHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/oauth/callback", d.AuthHandler.OAuthCallback)
	authGroup.POST("/verify", d.AuthHandler.VerifyToken)
	authGroup.POST("/logout", d.AuthHandler.Logout)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("/seed", d.ProductHandler.SeedCatalog)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	requireLogin := auth.RequireLogin(d.Tokens)

	cart := v1.Group("/cart", requireLogin)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)

	orders := v1.Group("/orders", requireLogin)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListOrders)
}
