package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/errors"
)

type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uint) error
}

type OrderService struct {
	orders OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		logger: logger,
	}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	return s.orders.FindByCustomer(ctx, customerID)
}

// Create stores a new order for the customer. The status is always pending
// regardless of what the client sent.
func (s *OrderService) Create(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if customerID == 0 {
		return nil, errors.NewValidationError("validation failed", errors.ValidationDetail{
			Field:   "customer_id",
			Message: "customer_id is required",
		})
	}

	order := &domain.Order{
		CustomerID:  customerID,
		ProductName: draft.ProductName,
		Address:     draft.Address,
		Price:       draft.Price,
		Status:      domain.StatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", order.ID),
		zap.Uint("customerId", customerID),
	)

	// Re-read so the response carries the customer name.
	return s.orders.FindByID(ctx, order.ID)
}

// Update applies a partial patch. Product, address and price may only change
// while the order is still pending; the status may move to any other valid
// literal (the client offers every status except the current one).
func (s *OrderService) Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.EditsFields() && !order.Editable() {
		return nil, errors.NewConflictError(
			fmt.Sprintf("order %d is %s and can no longer be edited", id, order.Status))
	}

	if patch.ProductName != nil {
		order.ProductName = *patch.ProductName
	}
	if patch.Address != nil {
		order.Address = *patch.Address
	}
	if patch.Price != nil {
		order.Price = *patch.Price
	}

	if patch.EditsFields() {
		draft := domain.OrderDraft{
			ProductName: order.ProductName,
			Address:     order.Address,
			Price:       order.Price,
		}
		if err := draft.Validate(); err != nil {
			return nil, err
		}
	}

	if patch.Status != nil {
		if !domain.ValidStatus(*patch.Status) {
			return nil, errors.NewValidationError("validation failed", errors.ValidationDetail{
				Field:   "status",
				Message: "status must be pending, start delivery or delivered",
			})
		}
		order.Status = *patch.Status
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order updated",
		zap.Uint("orderId", id),
		zap.String("status", order.Status),
	)

	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.Uint("orderId", id))
	return nil
}
