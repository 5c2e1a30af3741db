package products

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dokan/gateway"
	"dokan/models"

	"github.com/julienschmidt/httprouter"
)

func seed(t *testing.T, gw *gateway.MemoryStore, ps ...models.Product) {
	t.Helper()
	for _, p := range ps {
		if err := gw.UpsertProduct(context.Background(), p); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGetProductsEmptyIsArray(t *testing.T) {
	h := NewHandler(gateway.NewMemoryStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	h.GetProducts(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list []models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("body is not a bare array: %s", rec.Body.String())
	}
	if list == nil {
		t.Fatal("empty store must serialize as [], not null")
	}
}

func TestGetProductByID(t *testing.T) {
	gw := gateway.NewMemoryStore()
	h := NewHandler(gw)
	p := models.Product{ProductID: "a1", Name: "Cap", Price: 250, Category: "Hats"}
	seed(t, gw, p)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/a1", nil)
	h.GetProduct(rec, req, httprouter.Params{{Key: "productid", Value: "a1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.GetProduct(rec, req, httprouter.Params{{Key: "productid", Value: "ghost"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing product: %d", rec.Code)
	}
}

func TestGetCategoriesDistinct(t *testing.T) {
	gw := gateway.NewMemoryStore()
	h := NewHandler(gw)
	seed(t, gw,
		models.Product{ProductID: "a1", Name: "Cap", Category: "Hats"},
		models.Product{ProductID: "a2", Name: "Beanie", Category: "Hats"},
		models.Product{ProductID: "a3", Name: "Shirt", Category: "Clothing"},
		models.Product{ProductID: "a4", Name: "Mystery"},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	h.GetCategories(rec, req, nil)

	var got []string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := []string{"Clothing", "Hats"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func upsert(h *Handler, p models.Product) *httptest.ResponseRecorder {
	data, _ := json.Marshal(p)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(data))
	h.UpsertProduct(rec, req, nil)
	return rec
}

func TestUpsertProductGeneratesID(t *testing.T) {
	gw := gateway.NewMemoryStore()
	h := NewHandler(gw)

	rec := upsert(h, models.Product{Name: "Cap", Price: 250})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	list, _ := gw.ListProducts(context.Background())
	if len(list) != 1 || list[0].ProductID == "" {
		t.Fatalf("stored = %+v", list)
	}
}

func TestUpsertProductValidation(t *testing.T) {
	h := NewHandler(gateway.NewMemoryStore())

	if rec := upsert(h, models.Product{Price: 100}); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing name: %d", rec.Code)
	}
	if rec := upsert(h, models.Product{Name: "Cap", Price: -1}); rec.Code != http.StatusBadRequest {
		t.Fatalf("negative price: %d", rec.Code)
	}
}

func TestDeleteProductIdempotent(t *testing.T) {
	h := NewHandler(gateway.NewMemoryStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/ghost", nil)
	h.DeleteProduct(rec, req, httprouter.Params{{Key: "productid", Value: "ghost"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("deleting an absent product must succeed, got %d", rec.Code)
	}
}
