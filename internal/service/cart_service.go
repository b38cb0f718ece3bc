package service

import (
	"context"
	"fmt"

	"clothing-store/internal/model"
	"clothing-store/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// List retrieves all cart items, restricted to one user when userID is
// non-empty.
func (s *cartService) List(ctx context.Context, userID string) ([]model.CartItem, error) {
	items, err := s.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

// Get retrieves a single cart item by ID.
func (s *cartService) Get(ctx context.Context, id int) (*model.CartItem, error) {
	item, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	if item == nil {
		return nil, model.NotFoundf("cart item with ID %d not found", id)
	}

	return item, nil
}

// Add inserts a cart item, or merges its quantity into the existing
// (user, product) row. At most one row ever exists per pair.
func (s *cartService) Add(ctx context.Context, req model.AddCartItemRequest) (*model.CartAddResult, error) {
	if req.UserID == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidArgument, "user_id is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	res, err := s.cartRepo.Upsert(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Str("user_id", req.UserID).
		Int("product_id", req.ProductID).
		Str("action", res.Action).
		Int("quantity", res.Quantity).
		Msg("cart item added")

	return res, nil
}

// UpdateQuantity overwrites a cart item's quantity. No lower bound is
// enforced; callers can set zero or negative quantities, matching the
// historical behaviour.
func (s *cartService) UpdateQuantity(ctx context.Context, id, quantity int) error {
	found, err := s.cartRepo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if !found {
		return model.NotFoundf("cart item with ID %d not found", id)
	}

	s.logger.Info().Int("cart_item_id", id).Int("quantity", quantity).Msg("cart item quantity updated")

	return nil
}

// Delete removes a cart item.
func (s *cartService) Delete(ctx context.Context, id int) error {
	found, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if !found {
		return model.NotFoundf("cart item with ID %d not found", id)
	}

	s.logger.Info().Int("cart_item_id", id).Msg("cart item deleted")

	return nil
}

// ClearForUser removes every cart row for a user. Zero deletions is a
// valid outcome, not an error.
func (s *cartService) ClearForUser(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.cartRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Int64("items_deleted", deleted).Msg("cart cleared")

	return deleted, nil
}

// Summary recomputes a user's cart totals by scanning the current rows.
// Totals are always derived fresh, never cached or stored.
func (s *cartService) Summary(ctx context.Context, userID string) (*model.CartSummary, error) {
	items, err := s.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build cart summary: %w", err)
	}

	summary := &model.CartSummary{
		UserID:     userID,
		ItemsCount: len(items),
		Items:      make([]model.CartSummaryLine, 0, len(items)),
	}

	for _, item := range items {
		subtotal := item.ProductPrice * item.Quantity
		summary.TotalItems += item.Quantity
		summary.TotalPrice += subtotal
		summary.Items = append(summary.Items, model.CartSummaryLine{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
		})
	}

	return summary, nil
}
