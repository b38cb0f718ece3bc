package model

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the enumerated roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User represents a registered account. Password holds the argon2id encoded
// hash and is never serialised into responses.
type User struct {
	ID        int       `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Name      string    `json:"name" db:"name"`
	Phone     *string   `json:"phone" db:"phone"`
	Role      string    `json:"role" db:"role"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SignupRequest is the payload for registering a new user. The role is
// never caller-settable; every signup gets "user".
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
}

// LoginRequest is the payload for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResult is returned after a successful registration.
type SignupResult struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// LoginResult carries the issued bearer token and the authenticated user.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DeletedUser confirms which account a delete removed.
type DeletedUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
