package models

import "time"

// Product is the storefront entity as the client sees it. Categories are not
// a separate entity; the set of categories is whatever distinct values exist
// across all products.
type Product struct {
	ProductID   string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
	Description string  `json:"description" bson:"description"`
	Category    string  `json:"category" bson:"category"`
}

// OrderItem is a snapshot taken at order time. Price is captured, not a live
// reference to the product row.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type Order struct {
	OrderID       string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Items         []OrderItem `json:"items"`
	TotalPrice    float64     `json:"totalPrice"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from s to next. Only
// pending orders move; completed and cancelled are terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s != StatusPending || !next.Valid() {
		return false
	}
	return next != StatusPending
}

// ItemsTotal is the price*quantity sum an order's totalPrice must equal at
// creation time. Storage never recomputes it.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
