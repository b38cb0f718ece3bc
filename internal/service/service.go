package service

import (
	"context"

	"clothing-store/internal/model"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// List retrieves all products matching the filter.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id int) (*model.Product, error)

	// Create inserts a new product and returns it with its generated ID.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update fully replaces a product's mutable fields.
	Update(ctx context.Context, id int, input model.ProductInput) (*model.Product, error)

	// Delete physically removes a product.
	Delete(ctx context.Context, id int) error

	// ReduceStock decrements a product's stock, all-or-nothing.
	ReduceStock(ctx context.Context, id, quantity int) (*model.StockReduction, error)
}

// CartService defines operations for cart management.
type CartService interface {
	// List retrieves all cart items, restricted to one user when userID is
	// non-empty.
	List(ctx context.Context, userID string) ([]model.CartItem, error)

	// Get retrieves a single cart item by ID.
	Get(ctx context.Context, id int) (*model.CartItem, error)

	// Add inserts a cart item, or merges the quantity into the existing
	// (user, product) row.
	Add(ctx context.Context, req model.AddCartItemRequest) (*model.CartAddResult, error)

	// UpdateQuantity overwrites a cart item's quantity.
	UpdateQuantity(ctx context.Context, id, quantity int) error

	// Delete removes a cart item.
	Delete(ctx context.Context, id int) error

	// ClearForUser removes every cart row for a user and returns the count.
	ClearForUser(ctx context.Context, userID string) (int64, error)

	// Summary recomputes a user's cart totals from the current rows.
	Summary(ctx context.Context, userID string) (*model.CartSummary, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// List retrieves orders matching the filter, most recent first.
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)

	// Get retrieves an order by its business key.
	Get(ctx context.Context, orderID string) (*model.Order, error)

	// Create inserts a new order from the request snapshot.
	Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)

	// Update applies a partial update and reports the changed field names.
	Update(ctx context.Context, orderID string, patch model.OrderPatch) ([]string, error)

	// Delete removes an order by its business key.
	Delete(ctx context.Context, orderID string) error
}

// UserService defines operations for account management and authentication.
type UserService interface {
	// Signup registers a new user.
	Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResult, error)

	// Login authenticates a user and issues a signed bearer token.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error)

	// List retrieves all users, without password hashes.
	List(ctx context.Context) ([]model.User, error)

	// Get retrieves a user by ID, without the password hash.
	Get(ctx context.Context, id int) (*model.User, error)

	// UpdateRole changes a user's role.
	UpdateRole(ctx context.Context, id int, role string) error

	// Delete removes a user and confirms which account was removed.
	Delete(ctx context.Context, id int) (*model.DeletedUser, error)
}
