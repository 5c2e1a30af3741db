package models

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusPending, OrderStatus("shipped"), false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestItemsTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", ProductName: "Shirt", Price: 500, Quantity: 1},
		{ProductID: "p2", ProductName: "Cap", Price: 250, Quantity: 2},
	}
	if got := ItemsTotal(items); got != 1000 {
		t.Fatalf("ItemsTotal = %v, want 1000", got)
	}
	if got := ItemsTotal(nil); got != 0 {
		t.Fatalf("ItemsTotal(nil) = %v, want 0", got)
	}
}
