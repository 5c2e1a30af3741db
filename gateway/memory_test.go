package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"dokan/models"
)

func TestUpsertReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := models.Product{ProductID: "a1", Name: "Cap", Price: 250, Image: "u", Description: "d", Category: "Hats"}
	if err := s.UpsertProduct(ctx, first); err != nil {
		t.Fatal(err)
	}

	// resubmit with the same id; no stale field may survive
	second := models.Product{ProductID: "a1", Name: "Winter Cap", Price: 300, Category: "Hats"}
	if err := s.UpsertProduct(ctx, second); err != nil {
		t.Fatal(err)
	}

	list, err := s.ListProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d products, want 1", len(list))
	}
	if list[0] != second {
		t.Fatalf("stored product = %+v, want %+v", list[0], second)
	}
}

func TestPlaceOrderRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	o := models.Order{OrderID: "o1", CustomerName: "Rahim", CustomerPhone: "017", Status: models.StatusPending, CreatedAt: time.Now()}
	if err := s.PlaceOrder(ctx, o); err != nil {
		t.Fatal(err)
	}
	if err := s.PlaceOrder(ctx, o); !errors.Is(err, ErrDuplicateOrder) {
		t.Fatalf("second PlaceOrder err = %v, want ErrDuplicateOrder", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.DeleteProduct(ctx, "missing"); err != nil {
		t.Fatalf("DeleteProduct on absent id: %v", err)
	}
	if err := s.DeleteOrder(ctx, "missing"); err != nil {
		t.Fatalf("DeleteOrder on absent id: %v", err)
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	s := NewMemoryStore()
	err := s.UpdateOrderStatus(context.Background(), "nope", models.StatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"t1", "t2", "t3"} {
		o := models.Order{
			OrderID:   id,
			Status:    models.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := s.PlaceOrder(ctx, o); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.ListOrders(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"t3", "t2", "t1"}
	for i, w := range want {
		if list[i].OrderID != w {
			t.Fatalf("position %d = %s, want %s", i, list[i].OrderID, w)
		}
	}
}

func TestOrderItemsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	items := []models.OrderItem{{ProductID: "p1", ProductName: "Shirt", Price: 500, Quantity: 1}}
	o := models.Order{
		OrderID:    "o1",
		Items:      items,
		TotalPrice: 500,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
	}
	if err := s.PlaceOrder(ctx, o); err != nil {
		t.Fatal(err)
	}

	list, err := s.ListOrders(ctx)
	if err != nil {
		t.Fatal(err)
	}
	got := list[0]
	if got.TotalPrice != 500 {
		t.Fatalf("total silently changed: %v", got.TotalPrice)
	}
	if len(got.Items) != 1 || got.Items[0] != items[0] {
		t.Fatalf("items changed: %+v", got.Items)
	}
}
