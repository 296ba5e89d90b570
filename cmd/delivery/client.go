package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/config"
	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/gateway"
	"github.com/AshleyKendi786/Delivery-App/internal/infrastructure/logger"
	"github.com/AshleyKendi786/Delivery-App/internal/store"
)

// app wires the client core for one CLI invocation: shared HTTP client, both
// gateways, both stores.
type app struct {
	session *store.SessionStore
	orders  *store.OrderStore
	catalog *gateway.CatalogGateway
	logger  *zap.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	zapLogger, err := logger.NewCLI()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	client := gateway.NewClient(cfg.Client)

	return &app{
		session: store.NewSessionStore(gateway.NewAuthGateway(client), client, zapLogger),
		orders:  store.NewOrderStore(gateway.NewOrderGateway(client), zapLogger),
		catalog: gateway.NewCatalogGateway(client),
		logger:  zapLogger,
	}, nil
}

// loggedIn builds the app and starts a session from the root flags.
func loggedIn(ctx context.Context) (*app, *domain.User, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, err
	}

	user, err := a.session.Login(ctx, flagEmail, flagPassword, flagRole)
	if err != nil {
		return nil, nil, fmt.Errorf("login failed: %w", err)
	}

	return a, user, nil
}

// loadScoped loads all orders for delivery admins and the user's own orders
// for customers.
func (a *app) loadScoped(ctx context.Context, user *domain.User) error {
	scope := store.ScopeCustomer(user.ID)
	if user.Type == domain.RoleDelivery {
		scope = store.ScopeAll()
	}
	return a.orders.Load(ctx, scope)
}

func statusDisplay(status string) string {
	switch status {
	case domain.StatusPending:
		return "Pending"
	case domain.StatusInTransit:
		return "In Transit"
	case domain.StatusDelivered:
		return "Delivered"
	}
	return status
}
