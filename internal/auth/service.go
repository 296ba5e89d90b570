package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/errors"
)

const invalidCredentialsMsg = "invalid email or password"

type Service struct {
	users  UserRepository
	tokens *TokenManager
	logger *zap.Logger
}

func NewService(users UserRepository, tokens *TokenManager, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Signup creates the account. It does not establish a session; the caller
// must log in separately.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewInternalError("hashing password", err)
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Type:     req.Type,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		zap.Uint("userId", user.ID),
		zap.String("type", user.Type),
	)

	return user, nil
}

// Login verifies the credentials and account type and returns the user with
// a signed token. Wrong password, unknown email and role mismatch are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return nil, "", errors.NewUnauthorizedError(invalidCredentialsMsg)
		}
		return nil, "", err
	}

	if user.Type != req.Type || !CheckPassword(user.Password, req.Password) {
		return nil, "", errors.NewUnauthorizedError(invalidCredentialsMsg)
	}

	token, err := s.tokens.Generate(user.ID, user.Type)
	if err != nil {
		return nil, "", errors.NewInternalError("signing token", err)
	}

	return user, token, nil
}
