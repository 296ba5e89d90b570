package auth

import (
	"context"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

type SignupService interface {
	Signup(ctx context.Context, req SignupRequest) (*domain.User, error)
}

type LoginService interface {
	Login(ctx context.Context, req LoginRequest) (*domain.User, string, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
