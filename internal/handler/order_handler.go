package handler

import (
	"encoding/json"
	"net/http"

	"clothing-store/internal/model"
	"clothing-store/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders requests with optional status and
// customer_email filters.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter model.OrderFilter
	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("customer_email"); v != "" {
		filter.CustomerEmail = &v
	}

	orders, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/orders/{order_id} requests. Lookup is by the
// caller-supplied business key, not the generated ID.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Get(r.Context(), r.PathValue("order_id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Order created successfully",
		"order_id": order.OrderID,
		"id":       order.ID,
	})
}

// Update handles PATCH /api/orders/{order_id} requests.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("order_id")

	var patch model.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	fields, err := h.service.Update(r.Context(), orderID, patch)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Order updated successfully",
		"order_id":       orderID,
		"updated_fields": fields,
	})
}

// Delete handles DELETE /api/orders/{order_id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("order_id")

	if err := h.service.Delete(r.Context(), orderID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Order deleted successfully",
		"order_id": orderID,
	})
}
