package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"clothing-store/internal/model"
	"clothing-store/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// List handles GET /api/cart requests, optionally filtered by user_id.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/cart/{id} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item ID", h.logger)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Add handles POST /api/cart requests. Adding an existing (user, product)
// pair merges quantities instead of creating a duplicate row.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	res, err := h.service.Add(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	message := "Item added to cart successfully"
	if res.Action == model.CartActionUpdated {
		message = "Cart item quantity updated"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      message,
		"cart_item_id": res.CartItemID,
		"quantity":     res.Quantity,
		"action":       res.Action,
	})
}

// UpdateQuantity handles PUT /api/cart/{id} requests.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item ID", h.logger)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Cart item updated successfully",
		"cart_item_id": id,
		"quantity":     req.Quantity,
	})
}

// Delete handles DELETE /api/cart/{id} requests.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item ID", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Cart item deleted successfully",
		"cart_item_id": id,
	})
}

// Clear handles DELETE /api/cart/user/{user_id} requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	deleted, err := h.service.ClearForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":       fmt.Sprintf("Cart cleared for user %s", userID),
		"items_deleted": deleted,
	})
}

// Summary handles GET /api/cart/user/{user_id}/summary requests.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
