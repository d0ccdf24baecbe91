package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcart "github.com/storefront/core/internal/application/cart"
	"github.com/storefront/core/internal/domain/checkout"
	"github.com/storefront/core/internal/domain/shared/valueobject"
	"github.com/storefront/core/internal/infrastructure/api"
	"github.com/storefront/core/internal/infrastructure/logger"
)

// CartHandler serves the cart state and its mutations
type CartHandler struct {
	BaseHandler
	carts   *appcart.CartStore
	catalog *api.Client
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *appcart.CartStore, catalog *api.Client) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalog,
	}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.DELETE("/items/:productId", h.RemoveItem)
		cart.DELETE("/items", h.ClearItems)
		cart.PUT("/shipping-address", h.SetShippingAddress)
		cart.PUT("/payment-method", h.SetPaymentMethod)
	}
}

// GetCart returns the current cart state
func (h *CartHandler) GetCart(c *gin.Context) {
	h.Success(c, h.cartView())
}

// AddItem fetches the product and adds it to the cart at the requested
// quantity, replacing any existing line for the same product
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if req.Qty > product.CountInStock {
		h.BadRequest(c, "Requested quantity exceeds stock")
		return
	}

	if err := h.carts.AddItem(c.Request.Context(), product.LineItem(req.Qty)); err != nil {
		logger.GetGinLogger(c).Error("Failed to add cart item",
			zap.String("product_id", req.ProductID), zap.Error(err))
		h.InternalError(c, "Failed to save cart")
		return
	}
	h.Success(c, h.cartView())
}

// RemoveItem removes a product line from the cart. Removing a product
// that is not in the cart succeeds and leaves the cart unchanged.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("productId")
	if err := h.carts.RemoveItem(c.Request.Context(), productID); err != nil {
		logger.GetGinLogger(c).Error("Failed to remove cart item",
			zap.String("product_id", productID), zap.Error(err))
		h.InternalError(c, "Failed to save cart")
		return
	}
	h.Success(c, h.cartView())
}

// ClearItems empties the cart while keeping the shipping address and
// payment method
func (h *CartHandler) ClearItems(c *gin.Context) {
	if err := h.carts.ClearItems(c.Request.Context()); err != nil {
		logger.GetGinLogger(c).Error("Failed to clear cart", zap.Error(err))
		h.InternalError(c, "Failed to save cart")
		return
	}
	h.Success(c, h.cartView())
}

// SetShippingAddress stores the shipping address on the cart
func (h *CartHandler) SetShippingAddress(c *gin.Context) {
	var req ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	addr, err := valueobject.NewShippingAddress(req.Address, req.City, req.PostalCode, req.Country)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.carts.SetShippingAddress(c.Request.Context(), addr); err != nil {
		logger.GetGinLogger(c).Error("Failed to save shipping address", zap.Error(err))
		h.InternalError(c, "Failed to save cart")
		return
	}
	h.Success(c, h.cartView())
}

// SetPaymentMethod stores the payment method on the cart
func (h *CartHandler) SetPaymentMethod(c *gin.Context) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.carts.SetPaymentMethod(c.Request.Context(), req.PaymentMethod); err != nil {
		logger.GetGinLogger(c).Error("Failed to save payment method", zap.Error(err))
		h.InternalError(c, "Failed to save cart")
		return
	}
	h.Success(c, h.cartView())
}

func (h *CartHandler) cartView() CartView {
	progress := h.carts.Progress()
	return CartView{
		Snapshot:     h.carts.Snapshot(),
		Progress:     progress.String(),
		RedirectPath: checkout.RedirectPath(progress),
	}
}
