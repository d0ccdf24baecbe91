package api

import (
	"context"
	"net/http"
	"net/url"
)

// CreateOrder submits a new order built from the cart snapshot
func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (Order, error) {
	var order Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", nil, token, req, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// GetOrder fetches a single order by ID
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (Order, error) {
	var order Order
	err := c.doJSON(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, token, nil, &order)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// GetMyOrders fetches the signed-in user's order history
func (c *Client) GetMyOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders/myorders", nil, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PayOrder marks an order as paid, forwarding the payment provider's
// confirmation details untouched.
func (c *Client) PayOrder(ctx context.Context, token, orderID string, details map[string]any) (Order, error) {
	var order Order
	err := c.doJSON(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(orderID)+"/pay", nil, token, details, &order)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// DeliverOrder marks an order as delivered (admin)
func (c *Client) DeliverOrder(ctx context.Context, token, orderID string) (Order, error) {
	var order Order
	err := c.doJSON(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(orderID)+"/deliver", nil, token, nil, &order)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}
