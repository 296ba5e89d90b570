package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	return products, nil
}

// Seed inserts the given products if the table is empty. Used to give a fresh
// deployment something to order.
func (r *GormProductRepository) Seed(ctx context.Context, products []domain.Product) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}
	return nil
}
