package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcart "github.com/storefront/core/internal/application/cart"
	"github.com/storefront/core/internal/application/session"
	"github.com/storefront/core/internal/domain/checkout"
	"github.com/storefront/core/internal/domain/shared"
	"github.com/storefront/core/internal/infrastructure/api"
	"github.com/storefront/core/internal/infrastructure/logger"
)

// CheckoutHandler walks the shopper through shipping, payment and review.
// Every screen entry evaluates the progress guard fresh, so a direct jump
// to a later screen redirects back to the first unmet step.
type CheckoutHandler struct {
	BaseHandler
	carts    *appcart.CartStore
	sessions *session.SessionStore
	orders   *api.Client
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *appcart.CartStore, sessions *session.SessionStore, orders *api.Client) *CheckoutHandler {
	return &CheckoutHandler{
		carts:    carts,
		sessions: sessions,
		orders:   orders,
	}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	co := rg.Group("/checkout")
	{
		co.GET("/shipping", h.ShippingScreen)
		co.GET("/payment", h.PaymentScreen)
		co.GET("/placeorder", h.PlaceOrderScreen)
		co.POST("/placeorder", h.PlaceOrder)
	}
}

// ShippingScreen is the first checkout step and is always reachable
func (h *CheckoutHandler) ShippingScreen(c *gin.Context) {
	h.Success(c, ShippingScreenView{
		ShippingAddress: h.carts.ShippingAddress(),
		Progress:        h.carts.Progress().String(),
	})
}

// PaymentScreen requires a complete shipping address; without one it
// redirects back to the shipping step
func (h *CheckoutHandler) PaymentScreen(c *gin.Context) {
	progress := h.carts.Progress()
	if progress == checkout.NeedsAddress {
		c.Redirect(http.StatusTemporaryRedirect, checkout.ShippingPath)
		return
	}
	h.Success(c, PaymentScreenView{
		PaymentMethod: h.carts.PaymentMethod(),
		Progress:      progress.String(),
	})
}

// PlaceOrderScreen requires the full guard sequence; an unmet step
// redirects to the screen that satisfies it
func (h *CheckoutHandler) PlaceOrderScreen(c *gin.Context) {
	progress := h.carts.Progress()
	if progress != checkout.Ready {
		c.Redirect(http.StatusTemporaryRedirect, checkout.RedirectPath(progress))
		return
	}
	h.Success(c, OrderPreviewView{
		Snapshot: h.carts.Snapshot(),
		Progress: progress.String(),
	})
}

// PlaceOrder submits the cart snapshot as an order. The guard is
// re-evaluated at submission time; the signed-in user's token
// authenticates the call, and the cart items are cleared once the
// backend accepts the order.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	user, ok := h.sessions.Current()
	if !ok {
		h.HandleError(c, shared.ErrNotSignedIn)
		return
	}

	progress := h.carts.Progress()
	if progress != checkout.Ready {
		h.Conflict(c, "Checkout is not ready, complete "+checkout.RedirectPath(progress))
		return
	}

	snapshot := h.carts.Snapshot()
	if len(snapshot.CartItems) == 0 {
		h.Conflict(c, "Cart is empty")
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), user.Token, api.CreateOrderRequest{
		OrderItems:      snapshot.CartItems,
		ShippingAddress: snapshot.ShippingAddress,
		PaymentMethod:   snapshot.PaymentMethod,
		ItemsPrice:      snapshot.ItemsPrice,
		ShippingPrice:   snapshot.ShippingPrice,
		TaxPrice:        snapshot.TaxPrice,
		TotalPrice:      snapshot.TotalPrice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.carts.ClearItems(c.Request.Context()); err != nil {
		// The order is already placed; surface it even if the local
		// cart could not be cleared
		logger.GetGinLogger(c).Error("Failed to clear cart after order",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	h.Created(c, order)
}
