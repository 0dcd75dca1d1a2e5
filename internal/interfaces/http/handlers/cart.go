// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saraswati-store/storefront/internal/domain/cart"
	"github.com/saraswati-store/storefront/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	logger      *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cartResponse, err := h.cartService.GetCart(c.Request.Context(), middleware.GetCartKey(c))
	if err != nil {
		h.respondError(c, err, "Failed to retrieve cart")
		return
	}

	c.JSON(http.StatusOK, cartResponse)
}

// AddToCart handles POST /api/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
		})
		return
	}

	cartResponse, err := h.cartService.AddToCart(c.Request.Context(), middleware.GetCartKey(c), &req)
	if err != nil {
		h.respondError(c, err, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusCreated, cartResponse)
}

// UpdateCartItem handles PATCH /api/cart/:productId
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req cart.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
		})
		return
	}

	// An unparseable id cannot name a cart line
	productID, ok := parseProductID(c)
	if !ok {
		h.respondError(c, &cart.NotFoundError{Resource: cart.ResourceCartLine}, "")
		return
	}

	cartResponse, err := h.cartService.UpdateCartItem(c.Request.Context(), middleware.GetCartKey(c), productID, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, cartResponse)
}

// RemoveFromCart handles DELETE /api/cart/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	key := middleware.GetCartKey(c)

	productID, ok := parseProductID(c)
	if !ok {
		h.GetCart(c)
		return
	}

	cartResponse, err := h.cartService.RemoveFromCart(c.Request.Context(), key, productID)
	if err != nil {
		h.respondError(c, err, "Failed to remove item from cart")
		return
	}

	c.JSON(http.StatusOK, cartResponse)
}

// ClearCart handles POST /api/cart/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartResponse, err := h.cartService.ClearCart(c.Request.Context(), middleware.GetCartKey(c))
	if err != nil {
		h.respondError(c, err, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, cartResponse)
}

func (h *CartHandler) respondError(c *gin.Context, err error, fallback string) {
	respondError(c, h.logger, err, fallback)
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors to status codes; anything unrecognised is
// logged and reported as a 500 with fallback as the message
func respondError(c *gin.Context, logger *logrus.Logger, err error, fallback string) {
	var notFound *cart.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": notFound.Message(),
		})
		return
	}

	_ = c.Error(err)
	if logger != nil {
		logger.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error(fallback)
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": fallback,
	})
}
