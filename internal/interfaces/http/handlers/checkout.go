// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
)

// CheckoutHandler handles checkout and order endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
	orders   *order.Repository
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(svc *checkout.Service, orders *order.Repository) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: svc,
		orders:   orders,
	}
}

// Submit handles POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var form order.FormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, result, err := h.checkout.Submit(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       "Validation failed",
			"fieldErrors": result.FieldErrors,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// LastOrder handles GET /orders/last - read by the confirmation view
func (h *CheckoutHandler) LastOrder(c *gin.Context) {
	placed, err := h.orders.Last(c.Request.Context())
	if err != nil {
		if errors.Is(err, order.ErrNoOrder) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No order placed yet",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve last order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    placed,
	})
}
