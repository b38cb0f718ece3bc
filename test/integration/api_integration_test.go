package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"clothing-store/internal/auth"
	"clothing-store/internal/cache"
	"clothing-store/internal/handler"
	"clothing-store/internal/model"
	"clothing-store/internal/repository"
	"clothing-store/internal/router"
	"clothing-store/internal/service"
	"clothing-store/internal/upload"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires the full stack against the test database. Each call
// gets a fresh product list cache, so subtests that seed data directly in
// SQL do not see stale cached responses.
func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	userRepo := repository.NewUserRepository(testDB.Pool, logger)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	uploader, err := upload.NewLocalUploader(t.TempDir(), logger)
	require.NoError(t, err)

	productService := service.NewProductService(productRepo, cache.New[[]model.Product](), logger)
	cartService := service.NewCartService(cartRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	userService := service.NewUserService(userRepo, tokens, logger)

	return router.New(router.Config{
		Products:  handler.NewProductHandler(productService, logger),
		Cart:      handler.NewCartHandler(cartService, logger),
		Orders:    handler.NewOrderHandler(orderService, logger),
		Auth:      handler.NewAuthHandler(userService, logger),
		Uploads:   handler.NewUploadHandler(uploader, 5*1024*1024, logger),
		Tokens:    tokens,
		UploadDir: t.TempDir(),
		Logger:    logger,
	})
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	t.Run("GET /api/products returns all products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		assert.Len(t, products, 5)
	})

	t.Run("GET /api/products with filters", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		req := httptest.NewRequest(http.MethodGet, "/api/products?category=shirts&in_stock=true", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.Len(t, products, 1)
		assert.Equal(t, "Blue Shirt", products[0].Name)
	})

	t.Run("POST then GET round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		body := `{"name": "Green Kurta", "category": "kurtas", "price": 999, "quantity": 4}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var created map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		id := int(created["product_id"].(float64))
		require.NotZero(t, id)

		req = httptest.NewRequest(http.MethodGet, "/api/products/"+strconv.Itoa(id), nil)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var product model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
		assert.Equal(t, "Green Kurta", product.Name)
	})

	t.Run("PATCH reduce-stock rejects over-reduction", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		req := httptest.NewRequest(http.MethodPatch, "/api/products/"+strconv.Itoa(ids[0])+"/reduce-stock?quantity=50", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "insufficient stock")
	})

	t.Run("GET missing product returns 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		req := httptest.NewRequest(http.MethodGet, "/api/products/99999", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	signup := func(server http.Handler, email string) *httptest.ResponseRecorder {
		body := `{"email": "` + email + `", "password": "secret123", "name": "Priya Sharma"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		return w
	}

	login := func(server http.Handler, email, password string) *httptest.ResponseRecorder {
		body := `{"email": "` + email + `", "password": "` + password + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		return w
	}

	t.Run("Signup then login issues a working token", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := signup(server, "priya@example.com")
		require.Equal(t, http.StatusCreated, w.Code)

		w = login(server, "priya@example.com", "secret123")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		token := resp["token"].(string)
		require.NotEmpty(t, token)

		// A fresh signup gets the user role, so admin routes stay closed.
		req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Duplicate signup rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		require.Equal(t, http.StatusCreated, signup(server, "priya@example.com").Code)

		w := signup(server, "priya@example.com")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already registered")
	})

	t.Run("Wrong password rejected with generic message", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		require.Equal(t, http.StatusCreated, signup(server, "priya@example.com").Code)

		w := login(server, "priya@example.com", "wrong-password")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("Admin routes reject missing token", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCartAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	addItem := func(server http.Handler, quantity int) *httptest.ResponseRecorder {
		body := `{"user_id": "user@example.com", "product_id": 1, "product_name": "Blue Shirt", "product_price": 799, "quantity": ` + strconv.Itoa(quantity) + `}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		return w
	}

	t.Run("Add merges duplicates and summary reflects totals", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := addItem(server, 2)
		require.Equal(t, http.StatusOK, w.Code)
		var first map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&first))
		assert.Equal(t, "added", first["action"])

		w = addItem(server, 3)
		require.Equal(t, http.StatusOK, w.Code)
		var second map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&second))
		assert.Equal(t, "updated", second["action"])
		assert.Equal(t, float64(5), second["quantity"])

		req := httptest.NewRequest(http.MethodGet, "/api/cart/user/user@example.com/summary", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var summary model.CartSummary
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
		assert.Equal(t, 5, summary.TotalItems)
		assert.Equal(t, 5*799, summary.TotalPrice)
		assert.Equal(t, 1, summary.ItemsCount)
	})

	t.Run("Clear empties the cart", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		require.Equal(t, http.StatusOK, addItem(server, 2).Code)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/user/user@example.com", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, float64(1), resp["items_deleted"])
	})
}

func TestOrderAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	createOrder := func(server http.Handler, orderID string) *httptest.ResponseRecorder {
		body := `{
			"order_id": "` + orderID + `",
			"customer_name": "Priya Sharma",
			"customer_email": "priya@example.com",
			"order_items": [{"id": "1", "name": "Blue Shirt", "price": 799, "quantity": 2, "category": "shirts"}],
			"total_items": 2,
			"total_price": 1598
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		return w
	}

	t.Run("Create applies defaults and duplicate is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		require.Equal(t, http.StatusCreated, createOrder(server, "ORD-1001").Code)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-1001", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var order model.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
		assert.Equal(t, "Confirmed", order.Status)
		assert.Equal(t, "India", order.Country)

		dup := createOrder(server, "ORD-1001")
		assert.Equal(t, http.StatusBadRequest, dup.Code)
		assert.Contains(t, dup.Body.String(), "already exists")
	})

	t.Run("Patch reports updated fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		require.Equal(t, http.StatusCreated, createOrder(server, "ORD-1001").Code)

		body := `{"status": "Shipped", "shipping_company": "BlueDart"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/orders/ORD-1001", strings.NewReader(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.ElementsMatch(t, []any{"status", "shipping_company"}, resp["updated_fields"])
	})

	t.Run("Empty patch rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		require.Equal(t, http.StatusCreated, createOrder(server, "ORD-1001").Code)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/ORD-1001", strings.NewReader("{}"))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "no fields to update")
	})
}
