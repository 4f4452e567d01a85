package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// Users came over with the storefront schema. Nothing routes to them
// yet, but the store keeps the interface alive for when accounts land.
type repository struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewUserRepository() *repository {
	return &repository{users: make(map[string]*model.User)}
}

func (r *repository) ByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (r *repository) ByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *repository) Create(_ context.Context, username, password string) (*model.User, error) {
	u := &model.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[u.ID] = u
	return u, nil
}
