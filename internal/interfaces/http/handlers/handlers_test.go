package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/saraswati-store/storefront/internal/config"
	"github.com/saraswati-store/storefront/internal/domain/cart"
	"github.com/saraswati-store/storefront/internal/domain/checkout"
	"github.com/saraswati-store/storefront/internal/domain/product"
	"github.com/saraswati-store/storefront/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type productsBody struct {
	Products []product.Product `json:"products"`
}

type errorBody struct {
	Message string `json:"message"`
}

type brokenStore struct{}

func (brokenStore) Load(context.Context, string) (*cart.Ledger, error) {
	return nil, errors.New("redis down")
}

func (brokenStore) Update(context.Context, string, func(*cart.Ledger) error) (*cart.Ledger, error) {
	return nil, errors.New("redis down")
}

func (brokenStore) Delete(context.Context, string) error {
	return errors.New("redis down")
}

func setupRouter(t *testing.T, store cart.Store) *gin.Engine {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	catalog := product.NewCatalog(product.SeedProducts())
	cartService := cart.NewService(catalog, store, nil, log)
	checkoutService := checkout.NewService(cartService, "SAR-", nil, log)

	productHandler := NewProductHandler(catalog)
	cartHandler := NewCartHandler(cartService, log)
	checkoutHandler := NewCheckoutHandler(checkoutService, log)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.CartSession(config.CartScopeShared, 60))
	api.GET("/products", productHandler.GetProducts)
	api.GET("/categories", productHandler.GetCategories)
	api.GET("/cart", cartHandler.GetCart)
	api.POST("/cart", cartHandler.AddToCart)
	api.POST("/cart/clear", cartHandler.ClearCart)
	api.PATCH("/cart/:productId", cartHandler.UpdateCartItem)
	api.DELETE("/cart/:productId", cartHandler.RemoveFromCart)
	api.POST("/checkout", checkoutHandler.Checkout)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGetProducts(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	tests := []struct {
		name  string
		query string
		want  []uint
	}{
		{"no filters", "", []uint{1, 2, 3, 4, 5, 6}},
		{"search", "?search=laptop", []uint{3}},
		{"category", "?category=audio", []uint{2}},
		{"category with encoded ampersand", "?category=home+%26+kitchen", []uint{4}},
		{"both", "?search=saraswati&category=fashion", []uint{5}},
		{"empty category means all", "?category=&search=kit", []uint{6}},
		{"unknown category", "?category=toys", []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/api/products"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			body := decode[productsBody](t, w)
			got := make([]uint, 0, len(body.Products))
			for _, p := range body.Products {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetProducts_JSONFieldNames(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodGet, "/api/products?search=glow", "")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw["products"], 1)
	for _, field := range []string{"id", "name", "category", "price", "rating", "badge", "stock", "delivery", "offer", "image", "description"} {
		assert.Contains(t, raw["products"][0], field)
	}
}

func TestGetCategories(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string][]string](t, w)
	assert.Equal(t, []string{"all", "electronics", "audio", "computers", "home & kitchen", "fashion", "beauty"}, body["categories"])
}

func TestCartFlow(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"totals":{"subtotal":0,"discount":0,"delivery":0,"total":0}}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/cart", `{"productId":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(r, http.MethodPost, "/api/cart", `{"productId":2,"quantity":1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decode[cart.CartResponse](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, cart.CartTotals{Subtotal: 15998, Discount: 0, Delivery: 0, Total: 15998}, resp.Totals)

	w = do(r, http.MethodPatch, "/api/cart/2", `{"quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[cart.CartResponse](t, w)
	assert.Equal(t, cart.CartTotals{Subtotal: 7999, Discount: 0, Delivery: 199, Total: 8198}, resp.Totals)

	w = do(r, http.MethodPatch, "/api/cart/2", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[cart.CartResponse](t, w)
	assert.Empty(t, resp.Items)

	w = do(r, http.MethodDelete, "/api/cart/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[cart.CartResponse](t, w)
	assert.Empty(t, resp.Items)
}

func TestCartLineJSONFieldNames(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodPost, "/api/cart", `{"productId":6,"quantity":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.JSONEq(t, `{
		"items":[{"productId":6,"name":"Glow Skin Essentials Kit","price":1899,
			"image":"https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80","quantity":2}],
		"totals":{"subtotal":3798,"discount":0,"delivery":199,"total":3997}
	}`, w.Body.String())
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodPost, "/api/cart", `{"productId":99}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found.", decode[errorBody](t, w).Message)
}

func TestAddToCart_MalformedBody(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodPost, "/api/cart", `{"productId":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItem_MissingLine(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodPatch, "/api/cart/3", `{"quantity":2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cart item not found.", decode[errorBody](t, w).Message)

	w = do(r, http.MethodPatch, "/api/cart/abc", `{"quantity":2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCartItem_QuantityRequired(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))
	do(r, http.MethodPost, "/api/cart", `{"productId":1}`)

	w := do(r, http.MethodPatch, "/api/cart/1", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCart_IsIdempotent(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))
	do(r, http.MethodPost, "/api/cart", `{"productId":1}`)

	for _, path := range []string{"/api/cart/5", "/api/cart/abc"} {
		w := do(r, http.MethodDelete, path, "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[cart.CartResponse](t, w)
		assert.Len(t, resp.Items, 1)
	}
}

func TestClearCart(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))
	do(r, http.MethodPost, "/api/cart", `{"productId":1}`)
	do(r, http.MethodPost, "/api/cart", `{"productId":3}`)

	w := do(r, http.MethodPost, "/api/cart/clear", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"totals":{"subtotal":0,"discount":0,"delivery":0,"total":0}}`, w.Body.String())
}

func TestCheckout(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))
	do(r, http.MethodPost, "/api/cart", `{"productId":3,"quantity":2}`)

	w := do(r, http.MethodPost, "/api/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^SAR-[0-9]{6}$`, decode[map[string]string](t, w)["orderId"])

	w = do(r, http.MethodGet, "/api/cart", "")
	resp := decode[cart.CartResponse](t, w)
	assert.Empty(t, resp.Items)

	w = do(r, http.MethodPost, "/api/checkout", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStoreFailureIs500(t *testing.T) {
	r := setupRouter(t, brokenStore{})

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/cart", ""},
		{http.MethodPost, "/api/cart", `{"productId":1}`},
		{http.MethodPost, "/api/cart/clear", ""},
		{http.MethodPost, "/api/checkout", ""},
	} {
		w := do(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", tc.method, tc.path)
		assert.NotEmpty(t, decode[errorBody](t, w).Message)
	}
}

func TestCartQuantityUpperBound(t *testing.T) {
	r := setupRouter(t, cart.NewMemoryStore(0))

	w := do(r, http.MethodPost, "/api/cart", `{"productId":6,"quantity":9223372036854775807}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/cart", `{"productId":6,"quantity":1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/cart", `{"productId":6,"quantity":999}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/cart", `{"productId":6,"quantity":5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[cart.CartResponse](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, cart.MaxLineQuantity, resp.Items[0].Quantity)
	assert.Equal(t, int64(999*1899-2500), resp.Totals.Total)

	w = do(r, http.MethodPatch, "/api/cart/6", `{"quantity":1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPatch, "/api/cart/6", `{"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[cart.CartResponse](t, w).Items[0].Quantity)
}
