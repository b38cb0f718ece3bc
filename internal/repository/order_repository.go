package repository

import (
	"context"
	"fmt"
	"strings"

	"clothing-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Order line items are stored as a JSONB snapshot on the order row, not
// normalised into their own table.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `id, order_id, customer_name, customer_email, customer_phone,
	address, city, state, pincode, country, order_items, total_items,
	total_price, status, shipping_id, shipping_company, order_date, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID, &o.OrderID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Address, &o.City, &o.State, &o.Pincode, &o.Country, &o.OrderItems,
		&o.TotalItems, &o.TotalPrice, &o.Status, &o.ShippingID,
		&o.ShippingCompany, &o.OrderDate, &o.UpdatedAt,
	)
}

// List retrieves orders matching the filter, most recent first.
func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CustomerEmail != nil {
		args = append(args, *filter.CustomerEmail)
		conditions = append(conditions, fmt.Sprintf("customer_email = $%d", len(args)))
	}

	query := "SELECT " + orderColumns + " FROM orders"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY order_date DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetByOrderID retrieves an order by its business key.
func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE order_id = $1"

	var o model.Order
	err := scanOrder(r.pool.QueryRow(ctx, query, orderID), &o)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", orderID).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

// Create inserts a new order. A duplicate business key surfaces as
// ErrUniqueViolation via the unique index on order_id.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (order_id, customer_name, customer_email, customer_phone,
			address, city, state, pincode, country, order_items, total_items,
			total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, order_date, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		order.OrderID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.Address, order.City, order.State, order.Pincode, order.Country,
		order.OrderItems, order.TotalItems, order.TotalPrice, order.Status,
	).Scan(&order.ID, &order.OrderDate, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Debug().Str("order_id", order.OrderID).Msg("duplicate order ID")
			return ErrUniqueViolation
		}
		r.logger.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// Update writes the present patch fields and returns their names.
func (r *orderRepository) Update(ctx context.Context, orderID string, patch model.OrderPatch) ([]string, bool, error) {
	var (
		sets   []string
		fields []string
		args   []any
	)

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		fields = append(fields, column)
	}

	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.ShippingID != nil {
		addSet("shipping_id", *patch.ShippingID)
	}
	if patch.ShippingCompany != nil {
		addSet("shipping_company", *patch.ShippingCompany)
	}

	if len(sets) == 0 {
		return nil, false, fmt.Errorf("order patch is empty")
	}

	args = append(args, orderID)
	query := fmt.Sprintf(
		"UPDATE orders SET %s, updated_at = now() WHERE order_id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to update order")
		return nil, false, fmt.Errorf("failed to update order: %w", err)
	}

	return fields, tag.RowsAffected() > 0, nil
}

// Delete removes an order by its business key.
func (r *orderRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM orders WHERE order_id = $1", orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to delete order")
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
