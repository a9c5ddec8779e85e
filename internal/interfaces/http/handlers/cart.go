// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CartHandler handles cart endpoints. All mutations go through the single
// cart store; the handler never touches cart state directly.
type CartHandler struct {
	store *cart.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// AddItemRequest represents an add-to-cart request. The product arrives raw
// and is normalized before it enters the cart.
type AddItemRequest struct {
	Product map[string]any `json:"product" binding:"required"`
}

// UpdateItemRequest represents a quantity update request
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.store.State(),
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := catalog.Normalize(req.Product)
	if err != nil {
		var validationErr *catalog.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": validationErr.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product data",
		})
		return
	}

	state := h.store.Add(product)
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    state,
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state := h.store.SetQuantity(c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    state,
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	state := h.store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    state,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	state := h.store.Clear()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    state,
	})
}
