package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

type OrderGateway interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error)
	Create(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error)
	Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id uint) error
}

// Scope selects which orders a load fetches: everything for the delivery
// dashboard, or one customer's orders.
type Scope struct {
	all        bool
	customerID uint
}

func ScopeAll() Scope {
	return Scope{all: true}
}

func ScopeCustomer(customerID uint) Scope {
	return Scope{customerID: customerID}
}

// OrderStore owns the in-memory order collection for the current view. The
// backend remains authoritative: every mutation mirrors the server's
// response, and failures leave local state untouched.
type OrderStore struct {
	gateway OrderGateway
	logger  *zap.Logger

	mu         sync.RWMutex
	orders     []domain.Order
	loaded     bool
	loading    bool
	generation uint64
}

func NewOrderStore(gateway OrderGateway, logger *zap.Logger) *OrderStore {
	return &OrderStore{
		gateway: gateway,
		logger:  logger,
	}
}

// Load fetches the scoped order list and replaces the collection wholesale.
// Each load supersedes earlier in-flight ones: a response arriving for a
// stale load is discarded, so cancelled or abandoned views cannot overwrite
// newer state.
func (s *OrderStore) Load(ctx context.Context, scope Scope) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	var orders []domain.Order
	var err error
	if scope.all {
		orders, err = s.gateway.List(ctx)
	} else {
		orders, err = s.gateway.ListByCustomer(ctx, scope.customerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// A newer load owns the collection now.
		s.logger.Debug("discarding stale load response", zap.Uint64("generation", gen))
		return nil
	}

	s.loading = false
	if err != nil {
		return err
	}

	s.orders = orders
	s.loaded = true
	return nil
}

// Create validates the draft before any network call, submits it, and
// appends the server's record on success.
func (s *OrderStore) Create(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	order, err := s.gateway.Create(ctx, customerID, draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = append(s.orders, *order)
	s.mu.Unlock()

	return order, nil
}

// Update sends the patch and replaces the local record by id with the
// server's authoritative copy.
func (s *OrderStore) Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error) {
	order, err := s.gateway.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = *order
			break
		}
	}
	s.mu.Unlock()

	return order, nil
}

// Remove deletes the order on the backend, then drops it from the local
// collection by id.
func (s *OrderStore) Remove(ctx context.Context, id uint) error {
	if err := s.gateway.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	s.mu.Unlock()

	return nil
}

// Orders returns a snapshot of the collection.
func (s *OrderStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the local record by id.
func (s *OrderStore) Get(id uint) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// Loading reports whether a load is in flight; views suppress the list until
// the first load completes.
func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *OrderStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ApplyPriceSuggestion fills in a pseudo-random price once an address is
// present, and clears it again when the address goes away. Purely a form
// convenience; an explicit in-range price is still required to submit.
func (s *OrderStore) ApplyPriceSuggestion(draft domain.OrderDraft) domain.OrderDraft {
	if draft.Address != "" && draft.Price == 0 {
		draft.Price = domain.SuggestPrice()
	} else if draft.Address == "" {
		draft.Price = 0
	}
	return draft
}
