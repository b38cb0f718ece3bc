package service

import (
	"context"
	"errors"
	"fmt"

	"clothing-store/internal/auth"
	"clothing-store/internal/model"
	"clothing-store/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenIssuer, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Signup registers a new user. The role is always "user"; it is never
// caller-settable at signup.
func (s *userService) Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResult, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidArgument, "email, password and name are required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     model.RoleUser,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, model.Conflictf("email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("user registered")

	return &model.SignupResult{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

// Login authenticates a user and issues a signed bearer token. An unknown
// email and a wrong password produce the same error so callers cannot tell
// which factor failed.
func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		s.logger.Debug().Str("email", req.Email).Msg("login with unknown email")
		return nil, model.ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(user.Password, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.logger.Debug().Str("email", req.Email).Msg("login with wrong password")
		return nil, model.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, model.ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("user logged in")

	return &model.LoginResult{
		Token: token,
		User:  *user,
	}, nil
}

// List retrieves all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get retrieves a user by ID.
func (s *userService) Get(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, model.NotFoundf("user with ID %d not found", id)
	}

	return user, nil
}

// UpdateRole changes a user's role within the enumerated set.
func (s *userService) UpdateRole(ctx context.Context, id int, role string) error {
	if !model.ValidRole(role) {
		return model.ErrInvalidRole
	}

	found, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	if !found {
		return model.NotFoundf("user with ID %d not found", id)
	}

	s.logger.Info().Int("user_id", id).Str("role", role).Msg("user role updated")

	return nil
}

// Delete removes a user and returns the deleted account's email and name
// for confirmation.
func (s *userService) Delete(ctx context.Context, id int) (*model.DeletedUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if user == nil {
		return nil, model.NotFoundf("user with ID %d not found", id)
	}

	found, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if !found {
		return nil, model.NotFoundf("user with ID %d not found", id)
	}

	s.logger.Info().Int("user_id", id).Str("email", user.Email).Msg("user deleted")

	return &model.DeletedUser{
		Email: user.Email,
		Name:  user.Name,
	}, nil
}
