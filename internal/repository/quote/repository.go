package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

type repository struct {
	mu     sync.RWMutex
	quotes map[string]*model.QuoteRequest
	order  []string
}

func NewQuoteRepository() *repository {
	return &repository{quotes: make(map[string]*model.QuoteRequest)}
}

// Create stores a submitted quote request. Quote requests are never
// mutated or deleted afterwards.
func (r *repository) Create(_ context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error) {
	quote := &model.QuoteRequest{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		Company:      params.Company,
		VehicleType:  params.VehicleType,
		BatteryNeeds: params.BatteryNeeds,
		Quantity:     params.Quantity,
		Message:      params.Message,
		CreatedAt:    time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.quotes[quote.ID] = quote
	r.order = append(r.order, quote.ID)
	return quote, nil
}

func (r *repository) All(_ context.Context) ([]*model.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.QuoteRequest, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.quotes[id])
	}
	return out, nil
}
