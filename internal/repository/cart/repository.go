package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// Items never leave the store by reference: every method returns a
// copy made under the lock, so callers can read results while another
// request mutates the same item.
type repository struct {
	mu    sync.RWMutex
	items map[string]*model.CartItem
	order []string
}

func NewCartRepository() *repository {
	return &repository{items: make(map[string]*model.CartItem)}
}

func (r *repository) ItemsBySession(_ context.Context, sessionID string) ([]*model.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.CartItem, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.SessionID == sessionID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Add inserts a new item with a generated id and timestamp. The product
// reference is not validated and the same product may appear in any
// number of distinct items.
func (r *repository) Add(_ context.Context, params model.AddCartItemParams) (*model.CartItem, error) {
	item := &model.CartItem{
		ID:        uuid.NewString(),
		SessionID: params.SessionID,
		ProductID: params.ProductID,
		Quantity:  params.Quantity,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	r.items[item.ID] = &stored
	r.order = append(r.order, item.ID)
	return item, nil
}

// UpdateQuantity sets the quantity as given. Clamping is the caller's
// responsibility.
func (r *repository) UpdateQuantity(_ context.Context, id string, quantity int) (*model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, model.ErrCartItemNotFound
	}
	item.Quantity = quantity

	cp := *item
	return &cp, nil
}

func (r *repository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return model.ErrCartItemNotFound
	}
	delete(r.items, id)
	r.dropFromOrder(id)
	return nil
}

// ClearSession deletes every item scoped to sessionID. Clearing an
// already empty session succeeds.
func (r *repository) ClearSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.SessionID == sessionID {
			delete(r.items, id)
			r.dropFromOrder(id)
		}
	}
	return nil
}

func (r *repository) dropFromOrder(id string) {
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
