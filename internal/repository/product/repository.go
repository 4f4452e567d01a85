package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// repository keeps the catalog in memory. The map is the source of
// truth; order preserves insertion order so listings and the
// related-products pass stay deterministic.
type repository struct {
	mu       sync.RWMutex
	products map[string]*model.Product
	order    []string
}

func NewProductRepository() *repository {
	return &repository{products: make(map[string]*model.Product)}
}

func (r *repository) All(_ context.Context) ([]*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *repository) ByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	return p, nil
}

func (r *repository) ByCategory(_ context.Context, category string) ([]*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Product, 0)
	for _, id := range r.order {
		if p := r.products[id]; p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search matches query case-insensitively against name, category,
// technology and series.
func (r *repository) Search(_ context.Context, query string) ([]*model.Product, error) {
	term := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Product, 0)
	for _, id := range r.order {
		p := r.products[id]
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Technology), term) ||
			strings.Contains(strings.ToLower(p.Series), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *repository) CreateBatch(_ context.Context, products []*model.Product) error {
	const op = "repository.CreateBatch"

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: product ID is empty", op)
		}
		if _, exists := r.products[p.ID]; !exists {
			r.order = append(r.order, p.ID)
		}
		r.products[p.ID] = p
	}
	return nil
}
