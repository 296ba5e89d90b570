package order

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AshleyKendi786/Delivery-App/internal/order/controller"
	"github.com/AshleyKendi786/Delivery-App/internal/order/repository"
	"github.com/AshleyKendi786/Delivery-App/internal/order/service"
)

func NewModule(db *gorm.DB, logger *zap.Logger) *controller.OrderController {
	repo := repository.NewGormOrderRepository(db)
	svc := service.NewOrderService(repo, logger)
	return controller.NewOrderController(svc, logger)
}
