package repository

import (
	"context"
	"fmt"

	"clothing-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

const cartColumns = "id, user_id, product_id, product_name, product_price, product_category, product_image, quantity, created_at, updated_at"

func scanCartItem(row pgx.Row, item *model.CartItem) error {
	return row.Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.ProductName,
		&item.ProductPrice, &item.ProductCategory, &item.ProductImage,
		&item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
}

// List retrieves all cart items, restricted to one user when userID is
// non-empty.
func (r *cartRepository) List(ctx context.Context, userID string) ([]model.CartItem, error) {
	query := "SELECT " + cartColumns + " FROM cart"
	var args []any
	if userID != "" {
		query += " WHERE user_id = $1"
		args = append(args, userID)
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		if err := scanCartItem(rows, &item); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single cart item.
func (r *cartRepository) GetByID(ctx context.Context, id int) (*model.CartItem, error) {
	query := "SELECT " + cartColumns + " FROM cart WHERE id = $1"

	var item model.CartItem
	err := scanCartItem(r.pool.QueryRow(ctx, query, id), &item)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("cart_item_id", id).Msg("cart item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("cart_item_id", id).Msg("failed to query cart item")
		return nil, fmt.Errorf("failed to query cart item: %w", err)
	}

	return &item, nil
}

// Upsert inserts a cart row, or increments the quantity of the existing
// (user_id, product_id) row. The merge happens in a single statement so two
// concurrent adds for the same pair can never produce duplicate rows.
func (r *cartRepository) Upsert(ctx context.Context, item *model.AddCartItemRequest) (*model.CartAddResult, error) {
	query := `
		INSERT INTO cart (user_id, product_id, product_name, product_price, product_category, product_image, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, product_id) DO UPDATE
		SET quantity = cart.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING id, quantity, (xmax = 0) AS inserted
	`

	var (
		res      model.CartAddResult
		inserted bool
	)
	err := r.pool.QueryRow(ctx, query,
		item.UserID, item.ProductID, item.ProductName, item.ProductPrice,
		item.ProductCategory, item.ProductImage, item.Quantity,
	).Scan(&res.CartItemID, &res.Quantity, &inserted)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", item.UserID).
			Int("product_id", item.ProductID).
			Msg("failed to upsert cart item")
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	if inserted {
		res.Action = model.CartActionAdded
	} else {
		res.Action = model.CartActionUpdated
	}

	return &res, nil
}

// UpdateQuantity overwrites a cart item's quantity.
func (r *cartRepository) UpdateQuantity(ctx context.Context, id, quantity int) (bool, error) {
	query := "UPDATE cart SET quantity = $2, updated_at = now() WHERE id = $1"

	tag, err := r.pool.Exec(ctx, query, id, quantity)
	if err != nil {
		r.logger.Error().Err(err).Int("cart_item_id", id).Msg("failed to update cart item")
		return false, fmt.Errorf("failed to update cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a cart item.
func (r *cartRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cart WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int("cart_item_id", id).Msg("failed to delete cart item")
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteByUser removes every cart row for a user.
func (r *cartRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cart WHERE user_id = $1", userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	return tag.RowsAffected(), nil
}
