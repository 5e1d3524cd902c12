// Package cart implements the shopping cart: an in-memory store with
// pluggable persistence plus a database-backed service for signed-in users.
package cart

import (
	"context"
	"sync"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
	"github.com/shopkartlabs/shopkart-backend/pkg/logger"
)

// StorageKey is the snapshot key carts are persisted under.
const StorageKey = "ecommerce_cart"

// Item is one product line with its quantity.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Persister saves and restores cart snapshots.
type Persister interface {
	Save(ctx context.Context, key string, items []Item) error
	Load(ctx context.Context, key string) ([]Item, error)
}

// Notifier receives cart mutation events, mirroring storefront toasts.
type Notifier interface {
	ItemAdded(ctx context.Context, product catalog.Product)
	ItemRemoved(ctx context.Context)
}

// Store is a mutable cart. All methods are safe for concurrent use.
// Persistence failures never fail the mutation; they are logged and the
// in-memory state stays authoritative.
type Store struct {
	mu       sync.Mutex
	items    []Item
	persist  Persister
	notify   Notifier
	logg     *logger.Logger
	storeKey string
}

// StoreParams configures a cart store. Persister and Notifier are optional.
type StoreParams struct {
	Persister Persister
	Notifier  Notifier
	Logger    *logger.Logger
	Key       string
}

// NewStore builds an empty cart, restoring any persisted snapshot.
func NewStore(ctx context.Context, params StoreParams) *Store {
	key := params.Key
	if key == "" {
		key = StorageKey
	}
	s := &Store{
		persist:  params.Persister,
		notify:   params.Notifier,
		logg:     params.Logger,
		storeKey: key,
	}
	if s.persist != nil {
		saved, err := s.persist.Load(ctx, key)
		if err != nil {
			s.logError(ctx, err, "restoring cart snapshot")
		} else if len(saved) > 0 {
			s.items = saved
		}
	}
	return s
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Add merges the quantity into an existing line for the product, or appends a
// new line. Quantity defaults to 1 when non-positive.
func (s *Store) Add(ctx context.Context, product catalog.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Item{Product: product, Quantity: quantity})
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	if s.notify != nil {
		s.notify.ItemAdded(ctx, product)
	}
}

// Remove drops the product's line. Removing an absent product is a no-op.
func (s *Store) Remove(ctx context.Context, productID int64) {
	s.mu.Lock()
	removed := false
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if removed {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed && s.notify != nil {
		s.notify.ItemRemoved(ctx)
	}
}

// UpdateQuantity sets the product's quantity. A quantity of zero or less
// removes the line entirely.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			s.persistLocked(ctx)
			break
		}
	}
	s.mu.Unlock()
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// ItemCount is the total quantity across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// IsInCart reports whether the product has a line in the cart.
func (s *Store) IsInCart(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// Subtotal is the sum of charged price times quantity across all lines.
func (s *Store) Subtotal() int64 {
	return s.Totals().Subtotal
}

// Tax is the GST amount derived from the subtotal.
func (s *Store) Tax() int64 {
	return s.Totals().Tax
}

// Shipping is the delivery fee for the current subtotal.
func (s *Store) Shipping() int64 {
	return s.Totals().Shipping
}

// Total is subtotal plus tax plus shipping.
func (s *Store) Total() int64 {
	return s.Totals().Total
}

// Totals computes all derived amounts in one pass.
func (s *Store) Totals() Totals {
	return ComputeTotals(s.Items())
}

func (s *Store) persistLocked(ctx context.Context) {
	if s.persist == nil {
		return
	}
	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)
	if err := s.persist.Save(ctx, s.storeKey, snapshot); err != nil {
		s.logError(ctx, err, "persisting cart snapshot")
	}
}

func (s *Store) logError(ctx context.Context, err error, msg string) {
	if s.logg == nil {
		return
	}
	s.logg.Error(ctx, msg, err)
}
