package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

// OrderGateway talks to the backend's order endpoints.
type OrderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

type createOrderRequest struct {
	ProductName string  `json:"productName"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	CustomerID  uint    `json:"customer_id"`
	Status      string  `json:"status"`
}

// List fetches every order, for the delivery dashboard.
func (g *OrderGateway) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := g.client.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByCustomer fetches the orders owned by one customer.
func (g *OrderGateway) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	var orders []domain.Order
	path := fmt.Sprintf("/orders/customer/%d", customerID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create submits a new order. The server assigns the id and forces the
// status to pending.
func (g *OrderGateway) Create(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error) {
	req := createOrderRequest{
		ProductName: draft.ProductName,
		Address:     draft.Address,
		Price:       draft.Price,
		CustomerID:  customerID,
		Status:      domain.StatusPending,
	}

	var order domain.Order
	if err := g.client.do(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update sends a partial patch and returns the server's authoritative record.
func (g *OrderGateway) Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/orders/%d", id)
	if err := g.client.do(ctx, http.MethodPut, path, patch, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete requests deletion of an order by id.
func (g *OrderGateway) Delete(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/orders/%d", id)
	return g.client.do(ctx, http.MethodDelete, path, nil, nil)
}
