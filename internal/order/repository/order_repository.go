package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/errors"
)

// selectWithCustomer joins users so every returned order carries the owning
// customer's display name.
const selectWithCustomer = "orders.*, users.name AS customer_name"

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(selectWithCustomer).
		Joins("LEFT JOIN users ON users.id = orders.customer_id").
		Order("orders.id").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(selectWithCustomer).
		Joins("LEFT JOIN users ON users.id = orders.customer_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.id").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("querying orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(selectWithCustomer).
		Joins("LEFT JOIN users ON users.id = orders.customer_id").
		Where("orders.id = ?", id).
		Take(&order).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	return &order, nil
}

func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("creating order: %w", err)
	}
	return nil
}

func (r *GormOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"product_name": order.ProductName,
			"address":      order.Address,
			"price":        order.Price,
			"status":       order.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("updating order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", order.ID))
	}
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	return nil
}
