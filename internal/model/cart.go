package model

import "time"

// CartItem is one row of a user's cart. The product fields are a snapshot
// taken when the item was first added; they are never re-read from the
// catalogue. UserID is an opaque identifier (email or session ID).
type CartItem struct {
	ID              int       `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	ProductID       int       `json:"product_id" db:"product_id"`
	ProductName     string    `json:"product_name" db:"product_name"`
	ProductPrice    int       `json:"product_price" db:"product_price"`
	ProductCategory string    `json:"product_category" db:"product_category"`
	ProductImage    string    `json:"product_image" db:"product_image"`
	Quantity        int       `json:"quantity" db:"quantity"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// AddCartItemRequest is the payload for adding an item to a cart.
type AddCartItemRequest struct {
	UserID          string `json:"user_id"`
	ProductID       int    `json:"product_id"`
	ProductName     string `json:"product_name"`
	ProductPrice    int    `json:"product_price"`
	ProductCategory string `json:"product_category"`
	ProductImage    string `json:"product_image"`
	Quantity        int    `json:"quantity"`
}

// Cart add actions.
const (
	CartActionAdded   = "added"
	CartActionUpdated = "updated"
)

// CartAddResult reports whether an add created a new row or merged into an
// existing one, along with the resulting quantity.
type CartAddResult struct {
	CartItemID int    `json:"cart_item_id"`
	Quantity   int    `json:"quantity"`
	Action     string `json:"action"`
}

// CartSummaryLine is one line of a cart summary with its computed subtotal.
type CartSummaryLine struct {
	ID           int    `json:"id"`
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice int    `json:"product_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     int    `json:"subtotal"`
}

// CartSummary aggregates a user's cart. It is always recomputed from the
// current rows, never cached.
type CartSummary struct {
	UserID     string            `json:"user_id"`
	TotalItems int               `json:"total_items"`
	TotalPrice int               `json:"total_price"`
	ItemsCount int               `json:"items_count"`
	Items      []CartSummaryLine `json:"items"`
}
