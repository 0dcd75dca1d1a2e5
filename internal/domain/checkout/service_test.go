package checkout

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/saraswati-store/storefront/internal/domain/cart"
	"github.com/saraswati-store/storefront/internal/domain/product"
	"github.com/saraswati-store/storefront/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^SAR-[0-9]{6}$`)

type clearerFunc func(ctx context.Context, key string) (*cart.CartResponse, error)

func (f clearerFunc) ClearCart(ctx context.Context, key string) (*cart.CartResponse, error) {
	return f(ctx, key)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newCartService() *cart.Service {
	return cart.NewService(product.NewCatalog(product.SeedProducts()), cart.NewMemoryStore(0), nil, quietLogger())
}

func TestCheckout_ClearsCartAndReturnsOrderID(t *testing.T) {
	carts := newCartService()
	svc := NewService(carts, "", metrics.New(prometheus.NewRegistry()), quietLogger())
	ctx := context.Background()

	_, err := carts.AddToCart(ctx, "s1", &cart.AddToCartRequest{ProductID: 1})
	require.NoError(t, err)

	resp, err := svc.Checkout(ctx, "s1")
	require.NoError(t, err)
	assert.Regexp(t, orderIDPattern, resp.OrderID)

	after, err := carts.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, after.Items)
	assert.Equal(t, cart.CartTotals{}, after.Totals)
}

func TestCheckout_EmptyCartStillSucceeds(t *testing.T) {
	svc := NewService(newCartService(), "", nil, quietLogger())

	for i := 0; i < 20; i++ {
		resp, err := svc.Checkout(context.Background(), "empty")
		require.NoError(t, err)
		assert.Regexp(t, orderIDPattern, resp.OrderID)
	}
}

func TestCheckout_OrderNumberBounds(t *testing.T) {
	svc := NewService(newCartService(), "", nil, quietLogger())

	svc.intN = func(n int) int { return 0 }
	low, err := svc.Checkout(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "SAR-100000", low.OrderID)

	svc.intN = func(n int) int { return n - 1 }
	high, err := svc.Checkout(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "SAR-999998", high.OrderID)
}

func TestCheckout_CustomPrefix(t *testing.T) {
	svc := NewService(newCartService(), "ORD-", nil, nil)

	resp, err := svc.Checkout(context.Background(), "s1")
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-[0-9]{6}$`, resp.OrderID)
}

func TestCheckout_ClearFailure(t *testing.T) {
	boom := errors.New("store unavailable")
	svc := NewService(clearerFunc(func(context.Context, string) (*cart.CartResponse, error) {
		return nil, boom
	}), "", nil, quietLogger())

	_, err := svc.Checkout(context.Background(), "s1")
	assert.ErrorIs(t, err, boom)
}
