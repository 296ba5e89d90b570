package gateway

import (
	"context"
	"net/http"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

// CatalogGateway fetches the product catalog.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := g.client.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
