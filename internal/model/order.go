package model

import "time"

// Default values applied when an order is created without them.
const (
	DefaultOrderStatus  = "Confirmed"
	DefaultOrderCountry = "India"
)

// OrderItem is one line of an order's item snapshot. The snapshot is
// captured at order-creation time and stored alongside the order; it is
// never re-derived from the live catalogue.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Image    string `json:"img"`
}

// Order represents a customer order. OrderID is the caller-supplied
// business key, distinct from the generated primary key.
type Order struct {
	ID              int         `json:"id" db:"id"`
	OrderID         string      `json:"order_id" db:"order_id"`
	CustomerName    string      `json:"customer_name" db:"customer_name"`
	CustomerEmail   string      `json:"customer_email" db:"customer_email"`
	CustomerPhone   string      `json:"customer_phone" db:"customer_phone"`
	Address         string      `json:"address" db:"address"`
	City            string      `json:"city" db:"city"`
	State           string      `json:"state" db:"state"`
	Pincode         string      `json:"pincode" db:"pincode"`
	Country         string      `json:"country" db:"country"`
	OrderItems      []OrderItem `json:"order_items" db:"order_items"`
	TotalItems      int         `json:"total_items" db:"total_items"`
	TotalPrice      int         `json:"total_price" db:"total_price"`
	Status          string      `json:"status" db:"status"`
	ShippingID      *string     `json:"shipping_id" db:"shipping_id"`
	ShippingCompany *string     `json:"shipping_company" db:"shipping_company"`
	OrderDate       time.Time   `json:"order_date" db:"order_date"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// CreateOrderRequest is the payload for creating an order.
type CreateOrderRequest struct {
	OrderID       string      `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Pincode       string      `json:"pincode"`
	Country       string      `json:"country"`
	OrderItems    []OrderItem `json:"order_items"`
	TotalItems    int         `json:"total_items"`
	TotalPrice    int         `json:"total_price"`
	Status        string      `json:"status"`
}

// OrderPatch carries the independently optional order update fields. Nil
// fields are left untouched.
type OrderPatch struct {
	Status          *string `json:"status"`
	ShippingID      *string `json:"shipping_id"`
	ShippingCompany *string `json:"shipping_company"`
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil && p.ShippingID == nil && p.ShippingCompany == nil
}

// OrderFilter holds the optional, conjunctive order list filters.
type OrderFilter struct {
	Status        *string
	CustomerEmail *string
}
