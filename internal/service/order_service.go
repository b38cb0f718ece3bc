package service

import (
	"context"
	"errors"
	"fmt"

	"clothing-store/internal/model"
	"clothing-store/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves orders matching the filter, most recent first.
func (s *orderService) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Get retrieves an order by its business key.
func (s *orderService) Get(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		return nil, model.NotFoundf("order %s not found", orderID)
	}

	return order, nil
}

// Create inserts a new order from the request snapshot. The line items are
// stored exactly as supplied and never re-derived from live product rows.
func (s *orderService) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if req.OrderID == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidArgument, "order_id is required")
	}

	order := &model.Order{
		OrderID:       req.OrderID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Country:       req.Country,
		OrderItems:    req.OrderItems,
		TotalItems:    req.TotalItems,
		TotalPrice:    req.TotalPrice,
		Status:        req.Status,
	}

	if order.Status == "" {
		order.Status = model.DefaultOrderStatus
	}
	if order.Country == "" {
		order.Country = model.DefaultOrderCountry
	}
	if order.OrderItems == nil {
		order.OrderItems = []model.OrderItem{}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, model.Conflictf("order %s already exists", req.OrderID)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Int("id", order.ID).
		Int("total_items", order.TotalItems).
		Int("total_price", order.TotalPrice).
		Msg("order created")

	return order, nil
}

// Update applies a partial update to status and shipping fields, reporting
// which fields were changed.
func (s *orderService) Update(ctx context.Context, orderID string, patch model.OrderPatch) ([]string, error) {
	if patch.IsEmpty() {
		return nil, model.ErrNoFieldsToUpdate
	}

	fields, found, err := s.orderRepo.Update(ctx, orderID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if !found {
		return nil, model.NotFoundf("order %s not found", orderID)
	}

	s.logger.Info().
		Str("order_id", orderID).
		Strs("updated_fields", fields).
		Msg("order updated")

	return fields, nil
}

// Delete removes an order by its business key.
func (s *orderService) Delete(ctx context.Context, orderID string) error {
	found, err := s.orderRepo.Delete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !found {
		return model.NotFoundf("order %s not found", orderID)
	}

	s.logger.Info().Str("order_id", orderID).Msg("order deleted")

	return nil
}
