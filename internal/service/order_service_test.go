package service

import (
	"context"
	"errors"
	"testing"

	"clothing-store/internal/model"
	"clothing-store/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, orderID string, patch model.OrderPatch) ([]string, bool, error) {
	args := m.Called(ctx, orderID, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	baseReq := model.CreateOrderRequest{
		OrderID:       "ORD-1001",
		CustomerName:  "Priya Sharma",
		CustomerEmail: "priya@example.com",
		Address:       "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		Pincode:       "560001",
		OrderItems: []model.OrderItem{
			{ID: "1", Name: "Blue Shirt", Price: 799, Quantity: 2, Category: "shirts"},
		},
		TotalItems: 2,
		TotalPrice: 1598,
	}

	t.Run("Defaults applied for status and country", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, zerolog.Nop())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*model.Order)
				assert.Equal(t, model.DefaultOrderStatus, order.Status)
				assert.Equal(t, model.DefaultOrderCountry, order.Country)
				order.ID = 1
			}).
			Return(nil)

		order, err := service.Create(ctx, baseReq)
		require.NoError(t, err)
		assert.Equal(t, "Confirmed", order.Status)
		assert.Equal(t, "India", order.Country)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit status and country preserved", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, zerolog.Nop())

		req := baseReq
		req.Status = "Pending"
		req.Country = "Nepal"

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).Return(nil)

		order, err := service.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Pending", order.Status)
		assert.Equal(t, "Nepal", order.Country)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Nil order items become an empty slice", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, zerolog.Nop())

		req := baseReq
		req.OrderItems = nil

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).Return(nil)

		order, err := service.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, order.OrderItems)
		assert.Empty(t, order.OrderItems)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing order ID rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, zerolog.Nop())

		req := baseReq
		req.OrderID = ""

		order, err := service.Create(ctx, req)
		require.Error(t, err)
		assert.Nil(t, order)

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrCodeInvalidArgument, domainErr.Code)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate order ID reports conflict", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, zerolog.Nop())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).
			Return(repository.ErrUniqueViolation)

		order, err := service.Create(ctx, baseReq)
		require.Error(t, err)
		assert.Nil(t, order)

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrCodeConflict, domainErr.Code)
		assert.Contains(t, domainErr.Message, "ORD-1001")

		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, zerolog.Nop())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).
			Return(errors.New("database error"))

		order, err := service.Create(ctx, baseReq)
		require.Error(t, err)
		assert.Nil(t, order)

		mockRepo.AssertExpectations(t)
	})
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()

	testOrder := &model.Order{ID: 1, OrderID: "ORD-1001", CustomerName: "Priya Sharma"}

	tests := []struct {
		name        string
		orderID     string
		mockReturn  *model.Order
		mockError   error
		expectError bool
	}{
		{name: "Success", orderID: "ORD-1001", mockReturn: testOrder},
		{name: "Order not found", orderID: "ORD-9999", mockReturn: nil, expectError: true},
		{name: "Repository error", orderID: "ORD-1001", mockError: errors.New("database error"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			service := NewOrderService(mockRepo, zerolog.Nop())

			mockRepo.On("GetByOrderID", ctx, tt.orderID).Return(tt.mockReturn, tt.mockError)

			order, err := service.Get(ctx, tt.orderID)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, order)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, order)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	status := "Shipped"
	shippingID := "SHIP-42"

	tests := []struct {
		name         string
		patch        model.OrderPatch
		expectUpdate bool
		mockFields   []string
		mockFound    bool
		mockError    error
		expectError  bool
		expectedErr  error
	}{
		{
			name:         "Single field update",
			patch:        model.OrderPatch{Status: &status},
			expectUpdate: true,
			mockFields:   []string{"status"},
			mockFound:    true,
		},
		{
			name:         "Multiple field update",
			patch:        model.OrderPatch{Status: &status, ShippingID: &shippingID},
			expectUpdate: true,
			mockFields:   []string{"status", "shipping_id"},
			mockFound:    true,
		},
		{
			name:        "Empty patch rejected",
			patch:       model.OrderPatch{},
			expectError: true,
			expectedErr: model.ErrNoFieldsToUpdate,
		},
		{
			name:         "Order not found",
			patch:        model.OrderPatch{Status: &status},
			expectUpdate: true,
			mockFound:    false,
			expectError:  true,
		},
		{
			name:         "Repository error",
			patch:        model.OrderPatch{Status: &status},
			expectUpdate: true,
			mockError:    errors.New("database error"),
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			service := NewOrderService(mockRepo, zerolog.Nop())

			if tt.expectUpdate {
				mockRepo.On("Update", ctx, "ORD-1001", tt.patch).
					Return(tt.mockFields, tt.mockFound, tt.mockError)
			}

			fields, err := service.Update(ctx, "ORD-1001", tt.patch)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, fields)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockFields, fields)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		orderID     string
		mockFound   bool
		mockError   error
		expectError bool
	}{
		{name: "Success", orderID: "ORD-1001", mockFound: true},
		{name: "Order not found", orderID: "ORD-9999", mockFound: false, expectError: true},
		{name: "Repository error", orderID: "ORD-1001", mockError: errors.New("database error"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			service := NewOrderService(mockRepo, zerolog.Nop())

			mockRepo.On("Delete", ctx, tt.orderID).Return(tt.mockFound, tt.mockError)

			err := service.Delete(ctx, tt.orderID)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
