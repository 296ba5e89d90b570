package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type Controller struct {
	products ProductRepository
	logger   *zap.Logger
}

func NewController(products ProductRepository, logger *zap.Logger) *Controller {
	return &Controller{
		products: products,
		logger:   logger,
	}
}

// HandleListProducts serves GET /products.
func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.FindAll(r.Context())
	if err != nil {
		c.logger.Error("listing products failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "an unexpected error occurred",
		})
		return
	}
	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
