// Package gateway is the sole surface through which product and order state
// crosses into persistent storage. Two implementations exist: a MongoDB
// store used when the service owns its database, and a REST client speaking
// the legacy single-endpoint wire contract for deployments where storage
// lives behind a remote HTTP backend. Callers never see transport details;
// any failure surfaces as a plain error with no structured classification.
package gateway

import (
	"context"
	"errors"

	"dokan/models"
)

var (
	// ErrDuplicateOrder is returned by PlaceOrder when the order id already
	// exists. Orders never silently overwrite, unlike product upserts.
	ErrDuplicateOrder = errors.New("order id already exists")

	// ErrNotFound is returned by UpdateOrderStatus when no order matches.
	ErrNotFound = errors.New("not found")
)

// Gateway writes are fire-and-forget from the caller's point of view: one
// attempt per call, no retries, no optimistic locking. Concurrent writers
// racing on the same id clobber each other last-write-wins; that is an
// accepted property of the storage contract, not something this layer
// papers over.
type Gateway interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListOrders(ctx context.Context) ([]models.Order, error)

	// UpsertProduct inserts the product or replaces every field of the row
	// with the same id. Never a partial update.
	UpsertProduct(ctx context.Context, p models.Product) error

	// DeleteProduct removes the row if present. Deleting an absent id is
	// not an error.
	DeleteProduct(ctx context.Context, id string) error

	PlaceOrder(ctx context.Context, o models.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
	DeleteOrder(ctx context.Context, id string) error
}
