package model

import "time"

// Product represents an item in the store catalogue. Price is held in the
// smallest currency unit; Quantity is the remaining stock count.
type Product struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Price       int       `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	Quantity    int       `json:"quantity" db:"quantity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductInput is the request payload for creating or replacing a product.
type ProductInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

// ProductFilter holds the optional, conjunctive catalogue filters. Nil
// fields are not applied.
type ProductFilter struct {
	Category *string
	MinPrice *int
	MaxPrice *int
	Search   *string
	InStock  *bool
}

// StockReduction reports the outcome of an applied stock decrement.
type StockReduction struct {
	ProductID        int `json:"product_id"`
	PreviousQuantity int `json:"previous_quantity"`
	ReducedBy        int `json:"reduced_by"`
	NewQuantity      int `json:"new_quantity"`
}
