package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing. It mirrors
// scripts/schema.sql.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id          SERIAL PRIMARY KEY,
			name        VARCHAR(255) NOT NULL,
			category    VARCHAR(100) NOT NULL,
			price       INTEGER NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image       TEXT NOT NULL DEFAULT '',
			quantity    INTEGER NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS cart (
			id               SERIAL PRIMARY KEY,
			user_id          VARCHAR(255) NOT NULL,
			product_id       INTEGER NOT NULL,
			product_name     VARCHAR(255) NOT NULL,
			product_price    INTEGER NOT NULL,
			product_category VARCHAR(100) NOT NULL DEFAULT '',
			product_image    TEXT NOT NULL DEFAULT '',
			quantity         INTEGER NOT NULL DEFAULT 1,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_user_product ON cart (user_id, product_id);

		CREATE TABLE IF NOT EXISTS orders (
			id               SERIAL PRIMARY KEY,
			order_id         VARCHAR(100) NOT NULL,
			customer_name    VARCHAR(255) NOT NULL,
			customer_email   VARCHAR(255) NOT NULL,
			customer_phone   VARCHAR(50) NOT NULL DEFAULT '',
			address          TEXT NOT NULL DEFAULT '',
			city             VARCHAR(100) NOT NULL DEFAULT '',
			state            VARCHAR(100) NOT NULL DEFAULT '',
			pincode          VARCHAR(20) NOT NULL DEFAULT '',
			country          VARCHAR(100) NOT NULL DEFAULT 'India',
			order_items      JSONB NOT NULL DEFAULT '[]',
			total_items      INTEGER NOT NULL DEFAULT 0,
			total_price      INTEGER NOT NULL DEFAULT 0,
			status           VARCHAR(50) NOT NULL DEFAULT 'Confirmed',
			shipping_id      VARCHAR(100),
			shipping_company VARCHAR(100),
			order_date       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_order_id ON orders (order_id);

		CREATE TABLE IF NOT EXISTS users (
			id         SERIAL PRIMARY KEY,
			email      VARCHAR(255) NOT NULL,
			password   TEXT NOT NULL,
			name       VARCHAR(255) NOT NULL,
			phone      VARCHAR(50),
			role       VARCHAR(20) NOT NULL DEFAULT 'user',
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test product data into the database and returns the
// generated IDs in insertion order.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []int {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		category string
		price    int
		quantity int
	}{
		{"Blue Shirt", "shirts", 799, 10},
		{"White Shirt", "shirts", 699, 0},
		{"Black Jeans", "jeans", 1499, 5},
		{"Denim Jacket", "jackets", 2499, 3},
		{"Red Hoodie", "hoodies", 1299, 8},
	}

	ids := make([]int, 0, len(products))
	for _, p := range products {
		var id int
		err := pool.QueryRow(ctx,
			"INSERT INTO products (name, category, price, quantity) VALUES ($1, $2, $3, $4) RETURNING id",
			p.name, p.category, p.price, p.quantity,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids = append(ids, id)
	}

	return ids
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"cart", "orders", "users", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
