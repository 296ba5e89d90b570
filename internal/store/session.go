// Package store holds the client-side state: the authenticated session and
// the order collection. All state lives in memory and is re-fetched on
// demand; the backend stays the system of record.
package store

import (
	"context"
	"net/mail"
	"sync"

	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/errors"
)

type AuthGateway interface {
	Signup(ctx context.Context, name, email, password, role string) error
	Login(ctx context.Context, email, password, role string) (*domain.User, string, error)
}

// TokenSink receives the bearer token when a session starts or ends.
type TokenSink interface {
	SetToken(token string)
}

// SessionStore owns the current authenticated user. At most one session is
// live per client instance; nothing survives a restart.
type SessionStore struct {
	gateway AuthGateway
	tokens  TokenSink
	logger  *zap.Logger

	mu   sync.RWMutex
	user *domain.User
}

func NewSessionStore(gateway AuthGateway, tokens TokenSink, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		gateway: gateway,
		tokens:  tokens,
		logger:  logger,
	}
}

// Login authenticates against the backend and stores the returned identity.
// On failure the session is left untouched and the gateway's error is
// returned as-is.
func (s *SessionStore) Login(ctx context.Context, email, password, role string) (*domain.User, error) {
	if err := validateLogin(email, password, role); err != nil {
		return nil, err
	}

	user, token, err := s.gateway.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.tokens.SetToken(token)

	s.logger.Info("session started",
		zap.Uint("userId", user.ID),
		zap.String("role", user.Type),
	)

	return user, nil
}

// Signup creates the account. It never establishes a session; the caller
// must log in afterwards.
func (s *SessionStore) Signup(ctx context.Context, name, email, password, role string) error {
	if err := validateSignup(name, email, password, role); err != nil {
		return err
	}
	return s.gateway.Signup(ctx, name, email, password, role)
}

// Logout clears the session unconditionally. Idempotent; the server-side
// account is untouched.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.tokens.SetToken("")
}

// Current returns the logged-in user, or false when unauthenticated.
func (s *SessionStore) Current() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func validateLogin(email, password, role string) error {
	var details []errors.ValidationDetail

	if !validEmail(email) {
		details = append(details, errors.ValidationDetail{Field: "email", Message: "invalid email format"})
	}
	if password == "" {
		details = append(details, errors.ValidationDetail{Field: "password", Message: "password is required"})
	}
	if !domain.ValidRole(role) {
		details = append(details, errors.ValidationDetail{Field: "type", Message: "type must be customer or delivery"})
	}

	if len(details) > 0 {
		return errors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validateSignup(name, email, password, role string) error {
	var details []errors.ValidationDetail

	if len(name) < 2 || len(name) > 50 {
		msg := "name must be between 2 and 50 characters"
		if name == "" {
			msg = "name is required"
		}
		details = append(details, errors.ValidationDetail{Field: "name", Message: msg})
	}
	if !validEmail(email) {
		details = append(details, errors.ValidationDetail{Field: "email", Message: "invalid email format"})
	}
	if len(password) < 6 {
		details = append(details, errors.ValidationDetail{Field: "password", Message: "password must be at least 6 characters"})
	}
	if !domain.ValidRole(role) {
		details = append(details, errors.ValidationDetail{Field: "type", Message: "type must be customer or delivery"})
	}

	if len(details) > 0 {
		return errors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
