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

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = "id, name, category, price, description, image, quantity, created_at, updated_at"

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.Image, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
}

// List retrieves all products matching the filter. Filter conditions are
// independently optional and conjunctive.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var (
		conditions []string
		args       []any
	)

	addCondition := func(condition string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Category != nil {
		addCondition("category = $%d", *filter.Category)
	}
	if filter.MinPrice != nil {
		addCondition("price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		addCondition("price <= $%d", *filter.MaxPrice)
	}
	if filter.Search != nil {
		addCondition("name ILIKE $%d", "%"+*filter.Search+"%")
	}
	if filter.InStock != nil {
		if *filter.InStock {
			conditions = append(conditions, "quantity > 0")
		} else {
			conditions = append(conditions, "quantity = 0")
		}
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, category, price, description, image, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Category, product.Price,
		product.Description, product.Image, product.Quantity,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// Update replaces all mutable fields of a product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $1, category = $2, price = $3, description = $4,
		    image = $5, quantity = $6, updated_at = now()
		WHERE id = $7
	`

	tag, err := r.pool.Exec(ctx, query,
		product.Name, product.Category, product.Price,
		product.Description, product.Image, product.Quantity, product.ID,
	)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", product.ID).Msg("failed to update product")
		return false, fmt.Errorf("failed to update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete physically removes a product.
func (r *productRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ReduceStock decrements a product's quantity in a single conditional
// update so that concurrent reductions can never drive it negative.
func (r *productRepository) ReduceStock(ctx context.Context, id, quantity int) (*model.StockReduction, error) {
	query := `
		UPDATE products
		SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2
		RETURNING quantity + $2, quantity
	`

	res := model.StockReduction{ProductID: id, ReducedBy: quantity}
	err := r.pool.QueryRow(ctx, query, id, quantity).Scan(&res.PreviousQuantity, &res.NewQuantity)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Row absent or insufficient stock; the caller tells them apart.
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Int("quantity", quantity).Msg("failed to reduce stock")
		return nil, fmt.Errorf("failed to reduce stock: %w", err)
	}

	r.logger.Debug().
		Int("product_id", id).
		Int("previous", res.PreviousQuantity).
		Int("new", res.NewQuantity).
		Msg("stock reduced")

	return &res, nil
}
