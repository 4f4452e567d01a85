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
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/service/quote/mocks"
)

func validParams() model.CreateQuoteRequestParams {
	return model.CreateQuoteRequestParams{
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		Phone:        gofakeit.Phone(),
		Company:      gofakeit.Company(),
		VehicleType:  "golf-cart",
		BatteryNeeds: "Full 48V bank replacement",
		Quantity:     8,
		Message:      gofakeit.Sentence(6),
	}
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockQuoteRepository
	}

	newSvc := func(d deps) *service {
		return NewQuoteService(d.repository)
	}

	type testCase struct {
		name   string
		params func() model.CreateQuoteRequestParams
		setup  func(d deps, params model.CreateQuoteRequestParams)
		assert func(t *testing.T, res *model.QuoteRequest, err error, d deps)
	}

	wantValidationError := func(t *testing.T, res *model.QuoteRequest, err error, d deps) {
		t.Helper()

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, res)

		d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		d.repository.AssertExpectations(t)
	}

	tests := []testCase{
		{
			name: "validation error: blank name",
			params: func() model.CreateQuoteRequestParams {
				p := validParams()
				p.Name = "   "
				return p
			},
			assert: wantValidationError,
		},
		{
			name: "validation error: blank email",
			params: func() model.CreateQuoteRequestParams {
				p := validParams()
				p.Email = ""
				return p
			},
			assert: wantValidationError,
		},
		{
			name: "validation error: blank phone",
			params: func() model.CreateQuoteRequestParams {
				p := validParams()
				p.Phone = ""
				return p
			},
			assert: wantValidationError,
		},
		{
			name: "validation error: blank vehicle type",
			params: func() model.CreateQuoteRequestParams {
				p := validParams()
				p.VehicleType = ""
				return p
			},
			assert: wantValidationError,
		},
		{
			name: "validation error: blank battery needs",
			params: func() model.CreateQuoteRequestParams {
				p := validParams()
				p.BatteryNeeds = ""
				return p
			},
			assert: wantValidationError,
		},
		{
			name: "validation error: zero quantity",
			params: func() model.CreateQuoteRequestParams {
				p := validParams()
				p.Quantity = 0
				return p
			},
			assert: wantValidationError,
		},
		{
			name:   "repository error: Create returns error",
			params: validParams,
			setup: func(d deps, params model.CreateQuoteRequestParams) {
				d.repository.
					On("Create", mock.Anything, params).
					Return((*model.QuoteRequest)(nil), errors.New("store unavailable")).
					Once()
			},
			assert: func(t *testing.T, res *model.QuoteRequest, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "store unavailable")
				assert.Nil(t, res)

				d.repository.AssertExpectations(t)
			},
		},
		{
			name:   "success: company and message stay optional",
			params: func() model.CreateQuoteRequestParams {
				p := validParams()
				p.Company = ""
				p.Message = ""
				return p
			},
			setup: func(d deps, params model.CreateQuoteRequestParams) {
				d.repository.
					On("Create", mock.Anything, params).
					Return(&model.QuoteRequest{
						ID:          gofakeit.UUID(),
						Name:        params.Name,
						VehicleType: params.VehicleType,
						Quantity:    params.Quantity,
						CreatedAt:   time.Now(),
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.QuoteRequest, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.ID)

				d.repository.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockQuoteRepository(t),
			}
			params := tt.params()
			if tt.setup != nil {
				tt.setup(d, params)
			}

			svc := newSvc(d)

			res, err := svc.Create(context.Background(), params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	t.Run("returns stored quotes in order", func(t *testing.T) {
		t.Parallel()

		repository := mocks.NewMockQuoteRepository(t)
		svc := NewQuoteService(repository)

		want := []*model.QuoteRequest{
			{ID: "q-1"},
			{ID: "q-2"},
		}
		repository.
			On("All", mock.Anything).
			Return(want, nil).
			Once()

		res, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, res)

		repository.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()

		repository := mocks.NewMockQuoteRepository(t)
		svc := NewQuoteService(repository)

		repository.
			On("All", mock.Anything).
			Return(([]*model.QuoteRequest)(nil), errors.New("store unavailable")).
			Once()

		res, err := svc.List(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, "store unavailable")
		assert.Nil(t, res)

		repository.AssertExpectations(t)
	})
}
