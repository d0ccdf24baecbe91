package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/core/internal/application/session"
	"github.com/storefront/core/internal/domain/shared/valueobject"
	"github.com/storefront/core/internal/infrastructure/api"
)

// orderBackend records order submissions on top of the product catalog
type orderBackend struct {
	http.Handler
	lastAuth  string
	lastOrder api.CreateOrderRequest
	orders    int
}

func newOrderBackend() *orderBackend {
	b := &orderBackend{}
	mux := http.NewServeMux()
	mux.Handle("GET /api/products/{id}", testCatalog())
	mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
		b.lastAuth = r.Header.Get("Authorization")
		if b.lastAuth == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Not authorized, no token"}`))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&b.lastOrder); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.orders++
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.Order{ID: "order-1", TotalPrice: decimal.NewFromFloat(126.50)})
	})
	b.Handler = mux
	return b
}

func completeAddress(t *testing.T) valueobject.ShippingAddress {
	t.Helper()
	addr, err := valueobject.NewShippingAddress("1 Main St", "Springfield", "12345", "US")
	require.NoError(t, err)
	return addr
}

func TestShippingScreenAlwaysReachable(t *testing.T) {
	env := newTestEnv(t, testCatalog())

	w := env.do(t, http.MethodGet, "/checkout/shipping", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view ShippingScreenView
	decodeData(t, w, &view)
	assert.Equal(t, "NEEDS_ADDRESS", view.Progress)
	assert.True(t, view.ShippingAddress.IsEmpty())
}

func TestPaymentScreenRedirectsWithoutAddress(t *testing.T) {
	env := newTestEnv(t, testCatalog())

	w := env.do(t, http.MethodGet, "/checkout/payment", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/checkout/shipping", w.Header().Get("Location"))
}

func TestPaymentScreenWithAddress(t *testing.T) {
	env := newTestEnv(t, testCatalog())
	require.NoError(t, env.carts.SetShippingAddress(context.Background(), completeAddress(t)))

	w := env.do(t, http.MethodGet, "/checkout/payment", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view PaymentScreenView
	decodeData(t, w, &view)
	assert.Equal(t, "PayPal", view.PaymentMethod)
}

func TestPlaceOrderScreenRedirects(t *testing.T) {
	env := newTestEnv(t, testCatalog())

	w := env.do(t, http.MethodGet, "/checkout/placeorder", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/checkout/shipping", w.Header().Get("Location"))

	ctx := context.Background()
	require.NoError(t, env.carts.SetShippingAddress(ctx, completeAddress(t)))
	require.NoError(t, env.carts.SetPaymentMethod(ctx, ""))

	w = env.do(t, http.MethodGet, "/checkout/placeorder", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/checkout/payment", w.Header().Get("Location"))
}

func TestPlaceOrderScreenReady(t *testing.T) {
	env := newTestEnv(t, testCatalog())
	env.do(t, http.MethodPost, "/cart/items", AddCartItemRequest{ProductID: "p1", Qty: 1})
	require.NoError(t, env.carts.SetShippingAddress(context.Background(), completeAddress(t)))

	w := env.do(t, http.MethodGet, "/checkout/placeorder", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view OrderPreviewView
	decodeData(t, w, &view)
	assert.Equal(t, "READY", view.Progress)
	require.Len(t, view.CartItems, 1)
	assert.Equal(t, "79.00", view.TotalPrice)
}

func TestPlaceOrderRequiresSignIn(t *testing.T) {
	env := newTestEnv(t, newOrderBackend())

	w := env.do(t, http.MethodPost, "/checkout/placeorder", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	envp := decodeEnvelope(t, w)
	require.NotNil(t, envp.Error)
	assert.Equal(t, "ERR_UNAUTHORIZED", envp.Error.Code)
}

func TestPlaceOrderNotReady(t *testing.T) {
	env := newTestEnv(t, newOrderBackend())
	ctx := context.Background()
	require.NoError(t, env.sessions.Set(ctx, session.User{ID: "u1", Token: "tok"}))

	w := env.do(t, http.MethodPost, "/checkout/placeorder", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	env := newTestEnv(t, newOrderBackend())
	ctx := context.Background()
	require.NoError(t, env.sessions.Set(ctx, session.User{ID: "u1", Token: "tok"}))
	require.NoError(t, env.carts.SetShippingAddress(ctx, completeAddress(t)))

	w := env.do(t, http.MethodPost, "/checkout/placeorder", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrderSubmitsSnapshotAndClearsCart(t *testing.T) {
	backend := newOrderBackend()
	env := newTestEnv(t, backend)
	ctx := context.Background()

	env.do(t, http.MethodPost, "/cart/items", AddCartItemRequest{ProductID: "p1", Qty: 1})
	env.do(t, http.MethodPost, "/cart/items", AddCartItemRequest{ProductID: "p2", Qty: 1})
	require.NoError(t, env.carts.SetShippingAddress(ctx, completeAddress(t)))
	require.NoError(t, env.sessions.Set(ctx, session.User{ID: "u1", Token: "the-token"}))

	w := env.do(t, http.MethodPost, "/checkout/placeorder", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var order api.Order
	decodeData(t, w, &order)
	assert.Equal(t, "order-1", order.ID)

	assert.Equal(t, 1, backend.orders)
	assert.Equal(t, "Bearer the-token", backend.lastAuth)
	assert.Len(t, backend.lastOrder.OrderItems, 2)
	assert.Equal(t, "110.00", backend.lastOrder.ItemsPrice)
	assert.Equal(t, "0.00", backend.lastOrder.ShippingPrice)
	assert.Equal(t, "16.50", backend.lastOrder.TaxPrice)
	assert.Equal(t, "126.50", backend.lastOrder.TotalPrice)
	assert.Equal(t, "PayPal", backend.lastOrder.PaymentMethod)

	assert.Empty(t, env.carts.Items())
	assert.Equal(t, "Springfield", env.carts.ShippingAddress().City())
}
