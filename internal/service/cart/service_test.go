package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/service/cart/mocks"
)

func TestServiceLines(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCartRepository
		products   *mocks.MockProductProvider
	}

	newSvc := func(d deps) *service {
		return NewCartService(d.repository, d.products)
	}

	sessionID := gofakeit.UUID()
	item := &model.CartItem{
		ID:        gofakeit.UUID(),
		SessionID: sessionID,
		ProductID: "p-flooded",
		Quantity:  2,
		CreatedAt: time.Now(),
	}
	product := &model.Product{ID: "p-flooded", Name: "Depot 6V-225", Price: "168"}

	type testCase struct {
		name      string
		sessionID string
		setup     func(d deps)
		assert    func(t *testing.T, res []model.CartLine, err error, d deps)
	}

	tests := []testCase{
		{
			name:      "validation error: empty session id",
			sessionID: "   ",
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res []model.CartLine, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "ItemsBySession", mock.Anything, mock.Anything)
				d.repository.AssertExpectations(t)
			},
		},
		{
			name:      "empty cart yields an empty slice",
			sessionID: sessionID,
			setup: func(d deps) {
				d.repository.
					On("ItemsBySession", mock.Anything, sessionID).
					Return([]*model.CartItem{}, nil).
					Once()
			},
			assert: func(t *testing.T, res []model.CartLine, err error, d deps) {
				require.NoError(t, err)
				assert.Empty(t, res)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name:      "joins each item with its product",
			sessionID: sessionID,
			setup: func(d deps) {
				d.repository.
					On("ItemsBySession", mock.Anything, sessionID).
					Return([]*model.CartItem{item}, nil).
					Once()
				d.products.
					On("ByID", mock.Anything, "p-flooded").
					Return(product, nil).
					Once()
			},
			assert: func(t *testing.T, res []model.CartLine, err error, d deps) {
				require.NoError(t, err)
				require.Len(t, res, 1)
				assert.Equal(t, *item, res[0].CartItem)
				assert.Equal(t, product, res[0].Product)

				d.repository.AssertExpectations(t)
				d.products.AssertExpectations(t)
			},
		},
		{
			name:      "dangling product reference keeps the line with a nil product",
			sessionID: sessionID,
			setup: func(d deps) {
				d.repository.
					On("ItemsBySession", mock.Anything, sessionID).
					Return([]*model.CartItem{item}, nil).
					Once()
				d.products.
					On("ByID", mock.Anything, "p-flooded").
					Return((*model.Product)(nil), model.ErrProductNotFound).
					Once()
			},
			assert: func(t *testing.T, res []model.CartLine, err error, d deps) {
				require.NoError(t, err)
				require.Len(t, res, 1)
				assert.Equal(t, *item, res[0].CartItem)
				assert.Nil(t, res[0].Product)

				d.products.AssertExpectations(t)
			},
		},
		{
			name:      "product lookup failure aborts the join",
			sessionID: sessionID,
			setup: func(d deps) {
				d.repository.
					On("ItemsBySession", mock.Anything, sessionID).
					Return([]*model.CartItem{item}, nil).
					Once()
				d.products.
					On("ByID", mock.Anything, "p-flooded").
					Return((*model.Product)(nil), errors.New("store unavailable")).
					Once()
			},
			assert: func(t *testing.T, res []model.CartLine, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "store unavailable")
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockCartRepository(t),
				products:   mocks.NewMockProductProvider(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Lines(context.Background(), tt.sessionID)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceAdd(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCartRepository
		products   *mocks.MockProductProvider
	}

	newSvc := func(d deps) *service {
		return NewCartService(d.repository, d.products)
	}

	sessionID := gofakeit.UUID()

	type testCase struct {
		name   string
		params model.AddCartItemParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.CartItem, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: empty session id",
			params: model.AddCartItemParams{ProductID: "p-1", Quantity: 1},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.CartItem, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "validation error: empty product id",
			params: model.AddCartItemParams{SessionID: sessionID, Quantity: 1},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.CartItem, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "quantity below one defaults to one",
			params: model.AddCartItemParams{SessionID: sessionID, ProductID: "p-1", Quantity: 0},
			setup: func(d deps) {
				d.repository.
					On("Add", mock.Anything, model.AddCartItemParams{
						SessionID: sessionID,
						ProductID: "p-1",
						Quantity:  1,
					}).
					Return(&model.CartItem{ID: "item-1", Quantity: 1}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.CartItem, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, 1, res.Quantity)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "success: forwards params as given",
			params: model.AddCartItemParams{SessionID: sessionID, ProductID: "p-1", Quantity: 3},
			setup: func(d deps) {
				d.repository.
					On("Add", mock.Anything, model.AddCartItemParams{
						SessionID: sessionID,
						ProductID: "p-1",
						Quantity:  3,
					}).
					Return(&model.CartItem{ID: "item-1", Quantity: 3}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.CartItem, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, 3, res.Quantity)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockCartRepository(t),
				products:   mocks.NewMockProductProvider(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Add(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceUpdateQuantity(t *testing.T) {
	t.Parallel()

	repository := mocks.NewMockCartRepository(t)
	products := mocks.NewMockProductProvider(t)
	svc := NewCartService(repository, products)

	repository.
		On("UpdateQuantity", mock.Anything, "item-1", 5).
		Return(&model.CartItem{ID: "item-1", Quantity: 5}, nil).
		Once()

	res, err := svc.UpdateQuantity(context.Background(), "  item-1  ", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Quantity)

	_, err = svc.UpdateQuantity(context.Background(), "   ", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)

	repository.AssertExpectations(t)
}

func TestServiceUpdateQuantityNotFound(t *testing.T) {
	t.Parallel()

	repository := mocks.NewMockCartRepository(t)
	products := mocks.NewMockProductProvider(t)
	svc := NewCartService(repository, products)

	repository.
		On("UpdateQuantity", mock.Anything, "missing", 2).
		Return((*model.CartItem)(nil), model.ErrCartItemNotFound).
		Once()

	res, err := svc.UpdateQuantity(context.Background(), "missing", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCartItemNotFound)
	assert.Nil(t, res)

	repository.AssertExpectations(t)
}

func TestServiceRemove(t *testing.T) {
	t.Parallel()

	repository := mocks.NewMockCartRepository(t)
	products := mocks.NewMockProductProvider(t)
	svc := NewCartService(repository, products)

	repository.
		On("Remove", mock.Anything, "item-1").
		Return(nil).
		Once()

	require.NoError(t, svc.Remove(context.Background(), "item-1"))

	err := svc.Remove(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)

	repository.AssertExpectations(t)
}

func TestServiceClear(t *testing.T) {
	t.Parallel()

	sessionID := gofakeit.UUID()

	repository := mocks.NewMockCartRepository(t)
	products := mocks.NewMockProductProvider(t)
	svc := NewCartService(repository, products)

	repository.
		On("ClearSession", mock.Anything, sessionID).
		Return(nil).
		Once()

	require.NoError(t, svc.Clear(context.Background(), sessionID))

	err := svc.Clear(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)

	repository.AssertExpectations(t)
}
