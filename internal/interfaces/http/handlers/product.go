// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saraswati-store/storefront/internal/domain/product"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	catalog *product.Catalog
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *product.Catalog) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// GetProducts handles GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var req ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid query parameters",
		})
		return
	}

	// No category means every category
	if req.Category == "" {
		req.Category = product.AllCategories
	}

	c.JSON(http.StatusOK, gin.H{
		"products": h.catalog.Search(req.Search, req.Category),
	})
}

// GetCategories handles GET /api/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.catalog.Categories(),
	})
}
