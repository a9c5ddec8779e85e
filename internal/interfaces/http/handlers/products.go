// internal/interfaces/http/handlers/products.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// ProductHandler handles product listing endpoints
type ProductHandler struct {
	source catalog.Source
	config *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(source catalog.Source, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		source: source,
		config: cfg,
	}
}

// GetProducts handles GET /products
//
// Query parameters: limit, skip for pagination; q for search; category for a
// category listing; min_price, max_price, min_rating, sort for in-memory
// filtering of the fetched page.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	limit := queryInt(c, "limit", h.config.Catalog.PageSize)
	skip := queryInt(c, "skip", 0)

	var (
		page *catalog.Page
		err  error
	)

	switch {
	case c.Query("q") != "":
		page, err = h.source.Search(c.Request.Context(), c.Query("q"))
	case c.Query("category") != "":
		page, err = h.source.FetchByCategory(c.Request.Context(), c.Query("category"))
	default:
		page, err = h.source.FetchPage(c.Request.Context(), limit, skip)
	}

	if err != nil {
		h.fetchError(c, err)
		return
	}

	filters := catalog.Filters{
		MinPrice:  queryFloat(c, "min_price"),
		MaxPrice:  queryFloat(c, "max_price"),
		MinRating: queryFloat(c, "min_rating"),
		SortBy:    c.Query("sort"),
	}
	products := page.Products
	if !filters.IsZero() {
		products = catalog.Apply(products, filters)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    page.Total,
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.source.FetchByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.source.FetchCategories(c.Request.Context())
	if err != nil {
		h.fetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// fetchError maps source failures onto responses. Fetch failures are
// retryable by user action; the API does not retry on its own.
func (h *ProductHandler) fetchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, catalog.ErrFetchFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "Failed to fetch products",
			"retryable": true,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			return value
		}
	}
	return fallback
}

func queryFloat(c *gin.Context, name string) *float64 {
	if raw := c.Query(name); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			return &value
		}
	}
	return nil
}
