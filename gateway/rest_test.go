package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRestClientRoutes(t *testing.T) {
	var gotRoutes []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Query().Get("route")
		gotRoutes = append(gotRoutes, r.Method+":"+route)

		w.Header().Set("Content-Type", "application/json")
		switch route {
		case "products", "orders":
			w.Write([]byte("[]"))
		default:
			json.NewEncoder(w).Encode(map[string]string{"status": "success"})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewRestClient(srv.URL)

	if _, err := c.ListProducts(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListOrders(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteProduct(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateOrderStatus(ctx, "o1", "completed"); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"GET:products",
		"GET:orders",
		"POST:delete_product",
		"POST:update_order_status",
	}
	if len(gotRoutes) != len(want) {
		t.Fatalf("routes hit: %v", gotRoutes)
	}
	for i := range want {
		if gotRoutes[i] != want[i] {
			t.Fatalf("route %d = %s, want %s", i, gotRoutes[i], want[i])
		}
	}
}

func TestRestClientGenericFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL)
	if err := c.DeleteOrder(context.Background(), "o1"); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
