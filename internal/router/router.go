package router

import (
	"net/http"

	"clothing-store/internal/auth"
	"clothing-store/internal/handler"
	"clothing-store/internal/middleware"

	"github.com/rs/zerolog"
)

// Config carries everything the router needs to wire routes.
type Config struct {
	Products  *handler.ProductHandler
	Cart      *handler.CartHandler
	Orders    *handler.OrderHandler
	Auth      *handler.AuthHandler
	Uploads   *handler.UploadHandler
	Tokens    *auth.TokenIssuer
	UploadDir string
	Logger    zerolog.Logger
}

// New creates a new HTTP router with all routes and middleware configured.
func New(cfg Config) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Authentication
	mux.HandleFunc("POST /api/auth/signup", cfg.Auth.Signup)
	mux.HandleFunc("POST /api/auth/login", cfg.Auth.Login)

	// User administration requires a valid admin bearer token.
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.BearerAuth(cfg.Tokens, cfg.Logger)(
			middleware.RequireAdmin(cfg.Logger)(h),
		)
	}
	mux.Handle("GET /api/auth/users", admin(cfg.Auth.ListUsers))
	mux.Handle("GET /api/auth/users/{id}", admin(cfg.Auth.GetUser))
	mux.Handle("PATCH /api/auth/users/{id}/role", admin(cfg.Auth.UpdateRole))
	mux.Handle("DELETE /api/auth/users/{id}", admin(cfg.Auth.DeleteUser))

	// Catalogue
	mux.HandleFunc("GET /api/products", cfg.Products.List)
	mux.HandleFunc("POST /api/products", cfg.Products.Create)
	mux.HandleFunc("POST /api/products/upload-image", cfg.Uploads.UploadImage)
	mux.HandleFunc("DELETE /api/products/image/{filename}", cfg.Uploads.DeleteImage)
	mux.HandleFunc("GET /api/products/{id}", cfg.Products.Get)
	mux.HandleFunc("PUT /api/products/{id}", cfg.Products.Update)
	mux.HandleFunc("DELETE /api/products/{id}", cfg.Products.Delete)
	mux.HandleFunc("PATCH /api/products/{id}/reduce-stock", cfg.Products.ReduceStock)

	// Cart
	mux.HandleFunc("GET /api/cart", cfg.Cart.List)
	mux.HandleFunc("POST /api/cart", cfg.Cart.Add)
	mux.HandleFunc("GET /api/cart/user/{user_id}/summary", cfg.Cart.Summary)
	mux.HandleFunc("DELETE /api/cart/user/{user_id}", cfg.Cart.Clear)
	mux.HandleFunc("GET /api/cart/{id}", cfg.Cart.Get)
	mux.HandleFunc("PUT /api/cart/{id}", cfg.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/{id}", cfg.Cart.Delete)

	// Orders
	mux.HandleFunc("GET /api/orders", cfg.Orders.List)
	mux.HandleFunc("POST /api/orders", cfg.Orders.Create)
	mux.HandleFunc("GET /api/orders/{order_id}", cfg.Orders.Get)
	mux.HandleFunc("PATCH /api/orders/{order_id}", cfg.Orders.Update)
	mux.HandleFunc("DELETE /api/orders/{order_id}", cfg.Orders.Delete)

	// Locally stored images
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(cfg.Logger)(h)
	h = middleware.Recovery(cfg.Logger)(h)

	return h
}
