package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/storefront/core/internal/domain/cart"
	"github.com/storefront/core/internal/domain/checkout"
	"github.com/storefront/core/internal/domain/shared/valueobject"
	"github.com/storefront/core/internal/infrastructure/localstore"
)

// CartStore owns the cart aggregate for one storefront session. It is
// constructed once at application start and injected into the handlers,
// replacing any notion of a global cart.
//
// The snapshot is loaded once at construction. Every mutation recomputes
// totals inside the aggregate and then writes the full snapshot back to the
// local store before returning, so storage never lags memory by more than
// the operation in flight. A mutex serializes mutations; observable
// ordering matches a single-threaded caller.
type CartStore struct {
	mu     sync.Mutex
	store  localstore.Store
	logger *zap.Logger
	cart   *cart.Cart
}

// NewCartStore creates the cart store, restoring the persisted snapshot.
// A missing snapshot starts a fresh default cart. A snapshot that cannot be
// read or parsed is substituted with the default as well: a corrupt cart is
// recoverable shopper state, not a reason to refuse startup. The incident
// is logged.
func NewCartStore(ctx context.Context, store localstore.Store, logger *zap.Logger) *CartStore {
	s := &CartStore{
		store:  store,
		logger: logger,
	}
	s.cart = s.load(ctx)
	return s
}

func (s *CartStore) load(ctx context.Context) *cart.Cart {
	data, err := s.store.Get(ctx, localstore.CartKey)
	if err != nil {
		if !errors.Is(err, localstore.ErrKeyNotFound) {
			s.logger.Warn("failed to read cart snapshot, starting with default cart", zap.Error(err))
		}
		return mustDefaultCart()
	}

	var snapshot cart.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warn("corrupt cart snapshot, starting with default cart", zap.Error(err))
		return mustDefaultCart()
	}

	restored, err := cart.FromSnapshot(snapshot)
	if err != nil {
		s.logger.Warn("invalid cart snapshot, starting with default cart", zap.Error(err))
		return mustDefaultCart()
	}
	return restored
}

// mustDefaultCart restores the hardcoded default snapshot; it contains no
// prices to parse, so it cannot fail.
func mustDefaultCart() *cart.Cart {
	c, err := cart.FromSnapshot(cart.DefaultSnapshot())
	if err != nil {
		panic(err)
	}
	return c
}

// AddItem adds or replaces a line item and persists the cart
func (s *CartStore) AddItem(ctx context.Context, item cart.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.AddItem(item)
	return s.persist(ctx)
}

// RemoveItem removes a line item and persists the cart. Removing an absent
// product still persists: the operation is a mutation by contract.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RemoveItem(productID)
	return s.persist(ctx)
}

// SetShippingAddress stores the delivery address and persists the cart
func (s *CartStore) SetShippingAddress(ctx context.Context, addr valueobject.ShippingAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetShippingAddress(addr)
	return s.persist(ctx)
}

// SetPaymentMethod stores the payment method and persists the cart
func (s *CartStore) SetPaymentMethod(ctx context.Context, method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetPaymentMethod(method)
	return s.persist(ctx)
}

// ClearItems empties the cart items and persists. Shipping address and
// payment method survive, ready for the next order.
func (s *CartStore) ClearItems(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.ClearItems()
	return s.persist(ctx)
}

// persist writes the full snapshot synchronously. On failure the in-memory
// cart stays authoritative; the error is logged and returned without retry.
func (s *CartStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.cart.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}
	if err := s.store.Set(ctx, localstore.CartKey, data); err != nil {
		s.logger.Error("failed to persist cart snapshot", zap.Error(err))
		return fmt.Errorf("failed to persist cart snapshot: %w", err)
	}
	return nil
}

// Items returns the current line items in display order
func (s *CartStore) Items() []cart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// Totals returns the current derived totals
func (s *CartStore) Totals() cart.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Totals()
}

// ShippingAddress returns the stored delivery address
func (s *CartStore) ShippingAddress() valueobject.ShippingAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ShippingAddress()
}

// PaymentMethod returns the stored payment method
func (s *CartStore) PaymentMethod() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.PaymentMethod()
}

// Snapshot returns the full cart state in its wire form
func (s *CartStore) Snapshot() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// Progress evaluates the checkout guard over the current cart state.
// Pure read; every guarded screen calls this on entry.
func (s *CartStore) Progress() checkout.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return checkout.EvaluateProgress(s.cart.ShippingAddress(), s.cart.PaymentMethod())
}
