package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/errors"
)

type mockOrderGateway struct {
	ListFunc           func(ctx context.Context) ([]domain.Order, error)
	ListByCustomerFunc func(ctx context.Context, customerID uint) ([]domain.Order, error)
	CreateFunc         func(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error)
	UpdateFunc         func(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockOrderGateway) List(ctx context.Context) ([]domain.Order, error) {
	return m.ListFunc(ctx)
}

func (m *mockOrderGateway) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	return m.ListByCustomerFunc(ctx, customerID)
}

func (m *mockOrderGateway) Create(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error) {
	return m.CreateFunc(ctx, customerID, draft)
}

func (m *mockOrderGateway) Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockOrderGateway) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func TestOrderStore_Load_ReplacesWholesale(t *testing.T) {
	gw := &mockOrderGateway{
		ListByCustomerFunc: func(ctx context.Context, customerID uint) ([]domain.Order, error) {
			return []domain.Order{
				{ID: 1, CustomerID: customerID, ProductName: "Book", Status: domain.StatusPending},
				{ID: 2, CustomerID: customerID, ProductName: "Lamp", Status: domain.StatusDelivered},
			}, nil
		},
	}
	s := NewOrderStore(gw, zap.NewNop())

	require.NoError(t, s.Load(context.Background(), ScopeCustomer(3)))

	assert.True(t, s.Loaded())
	assert.False(t, s.Loading())
	assert.Len(t, s.Orders(), 2)

	// A later load replaces everything, it does not merge.
	gw.ListByCustomerFunc = func(ctx context.Context, customerID uint) ([]domain.Order, error) {
		return []domain.Order{{ID: 9, CustomerID: customerID, ProductName: "Flowers"}}, nil
	}
	require.NoError(t, s.Load(context.Background(), ScopeCustomer(3)))

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, uint(9), orders[0].ID)
}

func TestOrderStore_Load_AdminScopeFetchesAll(t *testing.T) {
	listed := false
	gw := &mockOrderGateway{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			listed = true
			return []domain.Order{{ID: 1, CustomerName: "Sam"}}, nil
		},
	}
	s := NewOrderStore(gw, zap.NewNop())

	require.NoError(t, s.Load(context.Background(), ScopeAll()))
	assert.True(t, listed)
}

func TestOrderStore_Load_FailureKeepsCollection(t *testing.T) {
	gw := &mockOrderGateway{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{{ID: 1}}, nil
		},
	}
	s := NewOrderStore(gw, zap.NewNop())
	require.NoError(t, s.Load(context.Background(), ScopeAll()))

	gw.ListFunc = func(ctx context.Context) ([]domain.Order, error) {
		return nil, errors.NewGatewayError(500, "boom")
	}

	err := s.Load(context.Background(), ScopeAll())
	require.Error(t, err)
	assert.Len(t, s.Orders(), 1)
}

func TestOrderStore_Load_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	firstStarted := make(chan struct{})

	gw := &mockOrderGateway{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			close(firstStarted)
			<-release // slow first load
			return []domain.Order{{ID: 1, ProductName: "stale"}}, nil
		},
	}
	s := NewOrderStore(gw, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		done <- s.Load(context.Background(), ScopeAll())
	}()
	<-firstStarted

	// A second load supersedes the first while it is still in flight.
	gw.ListFunc = func(ctx context.Context) ([]domain.Order, error) {
		return []domain.Order{{ID: 2, ProductName: "fresh"}}, nil
	}
	require.NoError(t, s.Load(context.Background(), ScopeAll()))

	close(release)
	require.NoError(t, <-done)

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "fresh", orders[0].ProductName)
}

func TestOrderStore_Create_AppendsServerRecord(t *testing.T) {
	gw := &mockOrderGateway{
		CreateFunc: func(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error) {
			return &domain.Order{
				ID:          11,
				CustomerID:  customerID,
				ProductName: draft.ProductName,
				Address:     draft.Address,
				Price:       draft.Price,
				Status:      domain.StatusPending,
			}, nil
		},
	}
	s := NewOrderStore(gw, zap.NewNop())

	order, err := s.Create(context.Background(), 3, domain.OrderDraft{
		ProductName: "Book",
		Address:     "221B Baker St",
		Price:       25,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 25.0, order.Price)

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, uint(11), orders[0].ID)
}

func TestOrderStore_Create_RejectsOutOfRangePriceBeforeNetwork(t *testing.T) {
	called := false
	gw := &mockOrderGateway{
		CreateFunc: func(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error) {
			called = true
			return nil, nil
		},
	}
	s := NewOrderStore(gw, zap.NewNop())

	for _, price := range []float64{9.99, 100.01, 0} {
		_, err := s.Create(context.Background(), 3, domain.OrderDraft{
			ProductName: "Book",
			Address:     "221B Baker St",
			Price:       price,
		})
		_, ok := errors.IsValidationError(err)
		assert.True(t, ok)
	}

	assert.False(t, called)
	assert.Empty(t, s.Orders())
}

func TestOrderStore_Create_GatewayFailureLeavesState(t *testing.T) {
	gw := &mockOrderGateway{
		CreateFunc: func(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error) {
			return nil, errors.NewGatewayError(500, "boom")
		},
	}
	s := NewOrderStore(gw, zap.NewNop())

	_, err := s.Create(context.Background(), 3, domain.OrderDraft{
		ProductName: "Book", Address: "221B Baker St", Price: 25,
	})

	require.Error(t, err)
	assert.Empty(t, s.Orders())
}

func seededStore(t *testing.T, gw *mockOrderGateway) *OrderStore {
	t.Helper()

	gw.ListFunc = func(ctx context.Context) ([]domain.Order, error) {
		return []domain.Order{
			{ID: 3, ProductName: "Lamp", Address: "10 Downing St", Price: 40, Status: domain.StatusPending},
			{ID: 7, ProductName: "Book", Address: "221B Baker St", Price: 25, Status: domain.StatusPending},
		}, nil
	}

	s := NewOrderStore(gw, zap.NewNop())
	require.NoError(t, s.Load(context.Background(), ScopeAll()))
	return s
}

func TestOrderStore_Update_ReplacesByID(t *testing.T) {
	gw := &mockOrderGateway{
		UpdateFunc: func(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error) {
			return &domain.Order{ID: id, ProductName: "Book", Address: "221B Baker St", Price: 25, Status: *patch.Status}, nil
		},
	}
	s := seededStore(t, gw)

	status := domain.StatusInTransit
	_, err := s.Update(context.Background(), 7, domain.OrderPatch{Status: &status})
	require.NoError(t, err)

	updated, ok := s.Get(7)
	require.True(t, ok)
	assert.Equal(t, domain.StatusInTransit, updated.Status)
	assert.Equal(t, "Book", updated.ProductName)
	assert.Equal(t, 25.0, updated.Price)

	// The other order is untouched.
	other, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, other.Status)
}

func TestOrderStore_Update_FailureLeavesState(t *testing.T) {
	gw := &mockOrderGateway{
		UpdateFunc: func(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error) {
			return nil, errors.NewGatewayError(409, "order 7 is delivered and can no longer be edited")
		},
	}
	s := seededStore(t, gw)

	name := "Lamp"
	_, err := s.Update(context.Background(), 7, domain.OrderPatch{ProductName: &name})

	require.Error(t, err)
	unchanged, _ := s.Get(7)
	assert.Equal(t, "Book", unchanged.ProductName)
}

func TestOrderStore_Remove_DropsOnlyThatOrder(t *testing.T) {
	gw := &mockOrderGateway{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return nil
		},
	}
	s := seededStore(t, gw)

	require.NoError(t, s.Remove(context.Background(), 3))

	_, ok := s.Get(3)
	assert.False(t, ok)

	kept, ok := s.Get(7)
	require.True(t, ok)
	assert.Equal(t, "Book", kept.ProductName)
}

func TestOrderStore_Remove_AbsentOrderStillCallsGateway(t *testing.T) {
	called := false
	gw := &mockOrderGateway{
		DeleteFunc: func(ctx context.Context, id uint) error {
			called = true
			return errors.NewGatewayError(404, "order with id 99 not found")
		},
	}
	s := seededStore(t, gw)

	err := s.Remove(context.Background(), 99)

	assert.True(t, called)
	require.Error(t, err)
	assert.Len(t, s.Orders(), 2)
}

func TestOrderStore_ApplyPriceSuggestion(t *testing.T) {
	s := NewOrderStore(&mockOrderGateway{}, zap.NewNop())

	// Address present, no price: suggest one in range.
	draft := s.ApplyPriceSuggestion(domain.OrderDraft{Address: "221B Baker St"})
	assert.GreaterOrEqual(t, draft.Price, domain.MinPrice)
	assert.LessOrEqual(t, draft.Price, domain.MaxPrice)

	// Explicit price is never overridden.
	draft = s.ApplyPriceSuggestion(domain.OrderDraft{Address: "221B Baker St", Price: 42})
	assert.Equal(t, 42.0, draft.Price)

	// Clearing the address clears the suggestion.
	draft = s.ApplyPriceSuggestion(domain.OrderDraft{Price: 42})
	assert.Equal(t, 0.0, draft.Price)
}
