package repository

import (
	"context"
	"errors"

	"clothing-store/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation is returned when an insert collides with a unique
// index (duplicate user email or order business key). Services translate it
// into a Conflict domain error with a resource-specific message.
var ErrUniqueViolation = errors.New("unique constraint violation")

// isUniqueViolation reports whether err is a PostgreSQL unique-violation
// error (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves all products matching the filter. An empty filter
	// returns every row.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when
	// no row matches.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create inserts a new product and fills in its generated ID and
	// timestamps.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces all mutable fields of a product. Returns false when
	// no row matched.
	Update(ctx context.Context, product *model.Product) (bool, error)

	// Delete physically removes a product. Returns false when no row matched.
	Delete(ctx context.Context, id int) (bool, error)

	// ReduceStock atomically decrements a product's quantity in a single
	// conditional update, refusing to go below zero. Returns (nil, nil) when
	// the row was absent or the stock was insufficient; callers disambiguate
	// with GetByID.
	ReduceStock(ctx context.Context, id, quantity int) (*model.StockReduction, error)
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// List retrieves all cart items, restricted to one user when userID is
	// non-empty.
	List(ctx context.Context, userID string) ([]model.CartItem, error)

	// GetByID retrieves a single cart item. Returns (nil, nil) when no row
	// matches.
	GetByID(ctx context.Context, id int) (*model.CartItem, error)

	// Upsert inserts a cart row, or atomically increments the quantity of
	// the existing (user_id, product_id) row.
	Upsert(ctx context.Context, item *model.AddCartItemRequest) (*model.CartAddResult, error)

	// UpdateQuantity overwrites a cart item's quantity. Returns false when
	// no row matched.
	UpdateQuantity(ctx context.Context, id, quantity int) (bool, error)

	// Delete removes a cart item. Returns false when no row matched.
	Delete(ctx context.Context, id int) (bool, error)

	// DeleteByUser removes every cart row for a user and returns the number
	// of rows deleted.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// List retrieves orders matching the filter, most recent first.
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)

	// GetByOrderID retrieves an order by its business key. Returns
	// (nil, nil) when no row matches.
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)

	// Create inserts a new order and fills in its generated ID and
	// timestamps. Returns ErrUniqueViolation when the business key is taken.
	Create(ctx context.Context, order *model.Order) error

	// Update writes the present patch fields and returns their names.
	// Returns found=false when no row matched.
	Update(ctx context.Context, orderID string, patch model.OrderPatch) (fields []string, found bool, err error)

	// Delete removes an order by its business key. Returns false when no
	// row matched.
	Delete(ctx context.Context, orderID string) (bool, error)
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// List retrieves all users.
	List(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a user by ID. Returns (nil, nil) when no row matches.
	GetByID(ctx context.Context, id int) (*model.User, error)

	// GetByEmail retrieves a user by email. Returns (nil, nil) when no row
	// matches.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Create inserts a new user and fills in its generated ID and
	// timestamps. Returns ErrUniqueViolation when the email is taken.
	Create(ctx context.Context, user *model.User) error

	// UpdateRole changes a user's role. Returns false when no row matched.
	UpdateRole(ctx context.Context, id int, role string) (bool, error)

	// Delete removes a user. Returns false when no row matched.
	Delete(ctx context.Context, id int) (bool, error)
}
