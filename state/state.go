// Package state holds the in-memory, UI-facing copies of products and
// orders: loaded wholesale from a gateway, then patched locally after each
// confirmed mutation. The backend stays the source of truth; this is a
// cache expected to match it after every confirmed write.
package state

import (
	"context"
	"sort"
	"sync"

	"dokan/gateway"
	"dokan/models"
)

type Store struct {
	gw gateway.Gateway

	mu       sync.RWMutex
	products []models.Product
	orders   []models.Order
	loading  bool
}

func NewStore(gw gateway.Gateway) *Store {
	return &Store{gw: gw}
}

// Reload fetches both lists and replaces local state wholesale. A nil list
// from the gateway becomes an empty one; state is never left undefined.
// The loading flag clears on every exit path.
func (s *Store) Reload(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	products, err := s.gw.ListProducts(ctx)
	if err != nil {
		return err
	}
	orders, err := s.gw.ListOrders(ctx)
	if err != nil {
		return err
	}
	if products == nil {
		products = []models.Product{}
	}
	if orders == nil {
		orders = []models.Order{}
	}

	s.mu.Lock()
	s.products = products
	s.orders = orders
	s.mu.Unlock()
	return nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Products returns a copy of the current product list.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Orders returns a copy of the current order list, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// confirm runs the gateway call and applies the local patch only once the
// backend acknowledges success. On failure local state is untouched.
func (s *Store) confirm(call func() error, apply func()) error {
	if err := call(); err != nil {
		return err
	}
	s.mu.Lock()
	apply()
	s.mu.Unlock()
	return nil
}

// AddOrder places the order and prepends it locally. A freshly-created
// order carries the newest timestamp so prepending normally keeps the
// newest-first invariant; a backdated order triggers a re-sort instead.
func (s *Store) AddOrder(ctx context.Context, o models.Order) error {
	return s.confirm(
		func() error { return s.gw.PlaceOrder(ctx, o) },
		func() {
			s.orders = append([]models.Order{o}, s.orders...)
			if len(s.orders) > 1 && s.orders[1].CreatedAt.After(o.CreatedAt) {
				sort.SliceStable(s.orders, func(i, j int) bool {
					return s.orders[i].CreatedAt.After(s.orders[j].CreatedAt)
				})
			}
		},
	)
}

// UpdateOrderStatus patches only the matching order's status; no other
// field is touched.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return s.confirm(
		func() error { return s.gw.UpdateOrderStatus(ctx, id, status) },
		func() {
			for i, o := range s.orders {
				if o.OrderID == id {
					o.Status = status
					s.orders[i] = o
					return
				}
			}
		},
	)
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	return s.confirm(
		func() error { return s.gw.DeleteOrder(ctx, id) },
		func() {
			kept := s.orders[:0]
			for _, o := range s.orders {
				if o.OrderID != id {
					kept = append(kept, o)
				}
			}
			s.orders = kept
		},
	)
}

// UpsertProduct confirms the write, then resynchronizes from the backend
// instead of patching locally: product edits can change fields this cache
// does not track, so the server stays strictly authoritative here.
func (s *Store) UpsertProduct(ctx context.Context, p models.Product) error {
	if err := s.gw.UpsertProduct(ctx, p); err != nil {
		return err
	}
	return s.Reload(ctx)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.gw.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return s.Reload(ctx)
}
