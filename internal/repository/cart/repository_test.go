package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

func TestCartRepositoryAdd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	sessionID := gofakeit.UUID()
	productID := gofakeit.UUID()

	item, err := repo.Add(ctx, model.AddCartItemParams{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, item)

	_, parseErr := uuid.Parse(item.ID)
	assert.NoError(t, parseErr, "item id should be a uuid")
	assert.Equal(t, sessionID, item.SessionID)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.WithinDuration(t, time.Now(), item.CreatedAt, time.Minute)
}

func TestCartRepositoryDuplicateAddsStayDistinct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	params := model.AddCartItemParams{
		SessionID: gofakeit.UUID(),
		ProductID: gofakeit.UUID(),
		Quantity:  1,
	}

	first, err := repo.Add(ctx, params)
	require.NoError(t, err)
	second, err := repo.Add(ctx, params)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	items, err := repo.ItemsBySession(ctx, params.SessionID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID, "items keep insertion order")
	assert.Equal(t, second.ID, items[1].ID)
}

func TestCartRepositorySessionIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	sessionA := gofakeit.UUID()
	sessionB := gofakeit.UUID()

	itemA, err := repo.Add(ctx, model.AddCartItemParams{SessionID: sessionA, ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)
	_, err = repo.Add(ctx, model.AddCartItemParams{SessionID: sessionB, ProductID: "p-2", Quantity: 1})
	require.NoError(t, err)

	items, err := repo.ItemsBySession(ctx, sessionA)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, itemA.ID, items[0].ID)

	none, err := repo.ItemsBySession(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCartRepositoryUpdateQuantity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	item, err := repo.Add(ctx, model.AddCartItemParams{
		SessionID: gofakeit.UUID(),
		ProductID: gofakeit.UUID(),
		Quantity:  1,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateQuantity(ctx, item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	// The stored quantity is exactly what was given, including zero.
	updated, err = repo.UpdateQuantity(ctx, item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)

	_, err = repo.UpdateQuantity(ctx, gofakeit.UUID(), 3)
	assert.ErrorIs(t, err, model.ErrCartItemNotFound)
}

func TestCartRepositoryRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	sessionID := gofakeit.UUID()
	item, err := repo.Add(ctx, model.AddCartItemParams{SessionID: sessionID, ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, item.ID))

	items, err := repo.ItemsBySession(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, repo.Remove(ctx, item.ID), model.ErrCartItemNotFound)
}

func TestCartRepositoryReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	sessionID := gofakeit.UUID()
	added, err := repo.Add(ctx, model.AddCartItemParams{SessionID: sessionID, ProductID: "p-1", Quantity: 2})
	require.NoError(t, err)

	// Mutating any returned struct must not leak into the store.
	added.Quantity = 99

	items, err := repo.ItemsBySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	items[0].Quantity = 50

	updated, err := repo.UpdateQuantity(ctx, added.ID, 7)
	require.NoError(t, err)
	updated.Quantity = 3

	items, err = repo.ItemsBySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCartRepositoryConcurrentUpdateAndRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	sessionID := gofakeit.UUID()
	item, err := repo.Add(ctx, model.AddCartItemParams{SessionID: sessionID, ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)

	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for q := 1; q <= iterations; q++ {
			if _, err := repo.UpdateQuantity(ctx, item.ID, q); err != nil {
				assert.NoError(t, err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for range iterations {
			items, err := repo.ItemsBySession(ctx, sessionID)
			if err != nil || len(items) != 1 {
				assert.NoError(t, err)
				assert.Len(t, items, 1)
				return
			}
			// Dereferencing outside the store's lock must be safe.
			assert.Positive(t, items[0].Quantity)
		}
	}()

	wg.Wait()
}

func TestCartRepositoryClearSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCartRepository()

	sessionA := gofakeit.UUID()
	sessionB := gofakeit.UUID()

	for range 3 {
		_, err := repo.Add(ctx, model.AddCartItemParams{SessionID: sessionA, ProductID: gofakeit.UUID(), Quantity: 1})
		require.NoError(t, err)
	}
	kept, err := repo.Add(ctx, model.AddCartItemParams{SessionID: sessionB, ProductID: gofakeit.UUID(), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, repo.ClearSession(ctx, sessionA))

	itemsA, err := repo.ItemsBySession(ctx, sessionA)
	require.NoError(t, err)
	assert.Empty(t, itemsA)

	itemsB, err := repo.ItemsBySession(ctx, sessionB)
	require.NoError(t, err)
	require.Len(t, itemsB, 1)
	assert.Equal(t, kept.ID, itemsB[0].ID)

	// Clearing an empty session is a no-op, not an error.
	assert.NoError(t, repo.ClearSession(ctx, sessionA))
}
