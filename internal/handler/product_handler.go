package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clothing-store/internal/model"
	"clothing-store/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// parseProductFilter reads the optional list filters from the query string.
func parseProductFilter(r *http.Request) (model.ProductFilter, error) {
	var filter model.ProductFilter
	q := r.URL.Query()

	if v := q.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := q.Get("min_price"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeInvalidArgument, "invalid min_price parameter")
		}
		filter.MinPrice = &n
	}
	if v := q.Get("max_price"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeInvalidArgument, "invalid max_price parameter")
		}
		filter.MaxPrice = &n
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("in_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeInvalidArgument, "invalid in_stock parameter")
		}
		filter.InStock = &b
	}

	return filter, nil
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Product created successfully",
		"product_id": product.ID,
		"product":    product,
	})
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Product updated successfully",
		"product_id": id,
		"product":    product,
	})
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Product deleted successfully",
		"product_id": id,
	})
}

// ReduceStock handles PATCH /api/products/{id}/reduce-stock requests.
func (h *ProductHandler) ReduceStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quantity parameter", h.logger)
		return
	}

	res, err := h.service.ReduceStock(r.Context(), id, quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":           "Stock reduced successfully",
		"product_id":        res.ProductID,
		"previous_quantity": res.PreviousQuantity,
		"reduced_by":        res.ReducedBy,
		"new_quantity":      res.NewQuantity,
	})
}
