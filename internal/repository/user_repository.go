package repository

import (
	"context"
	"fmt"

	"clothing-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

const userColumns = "id, email, password, name, phone, role, is_active, created_at, updated_at"

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.Phone,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
}

// List retrieves all users.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan user row")
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating user rows")
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	var u model.User
	err := scanUser(r.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id), &u)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("user_id", id).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("user_id", id).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := scanUser(r.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email), &u)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("email", email).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user by email")
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	return &u, nil
}

// Create inserts a new user. A duplicate email surfaces as
// ErrUniqueViolation via the unique index on email.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (email, password, name, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		user.Email, user.Password, user.Name, user.Phone, user.Role, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Debug().Str("email", user.Email).Msg("duplicate email")
			return ErrUniqueViolation
		}
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to insert user")
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateRole changes a user's role.
func (r *userRepository) UpdateRole(ctx context.Context, id int, role string) (bool, error) {
	query := "UPDATE users SET role = $2, updated_at = now() WHERE id = $1"

	tag, err := r.pool.Exec(ctx, query, id, role)
	if err != nil {
		r.logger.Error().Err(err).Int("user_id", id).Str("role", role).Msg("failed to update user role")
		return false, fmt.Errorf("failed to update user role: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a user.
func (r *userRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int("user_id", id).Msg("failed to delete user")
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
