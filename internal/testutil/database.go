package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

// SetupTestDB opens an in-memory sqlite database with the full schema.
// Each call gets its own database, so tests stay isolated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A uniquely named shared-cache database: the pool's connections all see
	// the same data, while each test gets a fresh schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Order{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// SeedUser inserts a user and returns it with its assigned ID.
func SeedUser(t *testing.T, db *gorm.DB, name, email, passwordHash, userType string) domain.User {
	t.Helper()

	user := domain.User{Name: name, Email: email, Password: passwordHash, Type: userType}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// SeedOrder inserts an order owned by the given customer.
func SeedOrder(t *testing.T, db *gorm.DB, customerID uint, productName, address string, price float64, status string) domain.Order {
	t.Helper()

	order := domain.Order{
		CustomerID:  customerID,
		ProductName: productName,
		Address:     address,
		Price:       price,
		Status:      status,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}
