package service

import (
	"context"
	"fmt"
	"strings"

	"clothing-store/internal/cache"
	"clothing-store/internal/model"
	"clothing-store/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService. List results are held in a
// short-lived TTL cache keyed by filter signature; every mutation clears it.
type productService struct {
	productRepo repository.ProductRepository
	listCache   *cache.Cache[[]model.Product]
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, listCache *cache.Cache[[]model.Product], logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		listCache:   listCache,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// filterKey builds a stable cache key from a filter's set fields.
func filterKey(f model.ProductFilter) string {
	var b strings.Builder
	b.WriteString("products")
	if f.Category != nil {
		fmt.Fprintf(&b, "|cat=%s", *f.Category)
	}
	if f.MinPrice != nil {
		fmt.Fprintf(&b, "|min=%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		fmt.Fprintf(&b, "|max=%d", *f.MaxPrice)
	}
	if f.Search != nil {
		fmt.Fprintf(&b, "|q=%s", *f.Search)
	}
	if f.InStock != nil {
		fmt.Fprintf(&b, "|stock=%t", *f.InStock)
	}
	return b.String()
}

// List retrieves all products matching the filter.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	key := filterKey(filter)
	if products, ok := s.listCache.Get(key); ok {
		s.logger.Debug().Str("key", key).Msg("product list served from cache")
		return products, nil
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.listCache.Set(key, products, 0)

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Get retrieves a single product by ID.
func (s *productService) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.NotFoundf("product with ID %d not found", id)
	}

	return product, nil
}

// Create inserts a new product. There is deliberately no duplicate-name
// check.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Quantity:    input.Quantity,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.listCache.Clear()

	s.logger.Info().Int("product_id", product.ID).Str("name", product.Name).Msg("product created")

	return product, nil
}

// Update fully replaces a product's mutable fields.
func (s *productService) Update(ctx context.Context, id int, input model.ProductInput) (*model.Product, error) {
	product := &model.Product{
		ID:          id,
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Quantity:    input.Quantity,
	}

	found, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !found {
		return nil, model.NotFoundf("product with ID %d not found", id)
	}

	s.listCache.Clear()

	s.logger.Info().Int("product_id", id).Msg("product updated")

	return product, nil
}

// Delete physically removes a product.
func (s *productService) Delete(ctx context.Context, id int) error {
	found, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !found {
		return model.NotFoundf("product with ID %d not found", id)
	}

	s.listCache.Clear()

	s.logger.Info().Int("product_id", id).Msg("product deleted")

	return nil
}

// ReduceStock decrements a product's stock. The decrement is a single
// conditional update at the store; a request that would drive the quantity
// negative is rejected without changing the row.
func (s *productService) ReduceStock(ctx context.Context, id, quantity int) (*model.StockReduction, error) {
	if quantity <= 0 {
		return nil, model.NewDomainError(model.ErrCodeInvalidArgument, "quantity to reduce must be greater than zero")
	}

	res, err := s.productRepo.ReduceStock(ctx, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce stock: %w", err)
	}

	if res == nil {
		// The conditional update matched no row: either the product does
		// not exist or there is not enough stock.
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to reduce stock: %w", err)
		}
		if product == nil {
			return nil, model.NotFoundf("product with ID %d not found", id)
		}
		return nil, model.InvalidStatef("insufficient stock: available %d, requested %d", product.Quantity, quantity)
	}

	s.listCache.Clear()

	s.logger.Info().
		Int("product_id", id).
		Int("previous_quantity", res.PreviousQuantity).
		Int("new_quantity", res.NewQuantity).
		Msg("stock reduced")

	return res, nil
}
