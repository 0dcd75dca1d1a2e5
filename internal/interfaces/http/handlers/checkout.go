// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saraswati-store/storefront/internal/domain/checkout"
	"github.com/saraswati-store/storefront/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	logger          *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// Checkout handles POST /api/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	resp, err := h.checkoutService.Checkout(c.Request.Context(), middleware.GetCartKey(c))
	if err != nil {
		respondError(c, h.logger, err, "Failed to place order")
		return
	}

	c.JSON(http.StatusOK, resp)
}
