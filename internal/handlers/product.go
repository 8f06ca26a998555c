package handlers

import (
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rocketstore/backend/internal/logging"
	"github.com/rocketstore/backend/internal/models"
	"github.com/rocketstore/backend/internal/mykafka"
	"github.com/rocketstore/backend/internal/service/search"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer

	// ES is optional. When set, seeded products are also pushed into the
	// search index.
	ES      *elasticsearch.Client
	ESIndex string
}

// GetProducts lists active products, optionally narrowed by exact category
// and by a case-insensitive substring of the name.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	q := h.DB.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)

	if category := c.QueryParam("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if s := c.QueryParam("search"); s != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+s+"%")
	}

	var products []models.Product
	if err := q.Order("category, name").Find(&products).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// SeedCatalog populates an empty products table with the reference
// catalog. A non-empty table makes it a no-op, not a merge.
func (h *ProductHandler) SeedCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.seed_catalog")

	var count int64
	if err := h.DB.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "Catalog already initialized"})
	}

	products := seedCatalog()
	if err := h.DB.WithContext(ctx).Create(&products).Error; err != nil {
		l.Error("seed failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if h.ES != nil {
		if err := search.IndexProducts(ctx, h.ES, h.ESIndex, products); err != nil {
			l.Error("search indexing failed", "error", err)
		}
	}

	publishEvent(c, h.Producer, "product_events", map[string]any{
		"type":  "catalog_seeded",
		"count": len(products),
	})

	l.Info("catalog seeded", "count", len(products))
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Initialized %d products", len(products)),
	})
}
