package repository

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

func TestQuoteRepositoryCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewQuoteRepository()

	params := model.CreateQuoteRequestParams{
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		Phone:        gofakeit.Phone(),
		Company:      gofakeit.Company(),
		VehicleType:  "golf-cart",
		BatteryNeeds: "Full 48V bank replacement",
		Quantity:     8,
		Message:      gofakeit.Sentence(6),
	}

	quote, err := repo.Create(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, quote)

	_, parseErr := uuid.Parse(quote.ID)
	assert.NoError(t, parseErr, "quote id should be a uuid")
	assert.Equal(t, params.Name, quote.Name)
	assert.Equal(t, params.Email, quote.Email)
	assert.Equal(t, params.Phone, quote.Phone)
	assert.Equal(t, params.Company, quote.Company)
	assert.Equal(t, params.VehicleType, quote.VehicleType)
	assert.Equal(t, params.BatteryNeeds, quote.BatteryNeeds)
	assert.Equal(t, params.Quantity, quote.Quantity)
	assert.Equal(t, params.Message, quote.Message)
	assert.WithinDuration(t, time.Now(), quote.CreatedAt, time.Minute)
}

func TestQuoteRepositoryAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewQuoteRepository()

	empty, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	var created []string
	for range 3 {
		quote, err := repo.Create(ctx, model.CreateQuoteRequestParams{
			Name:         gofakeit.Name(),
			Email:        gofakeit.Email(),
			Phone:        gofakeit.Phone(),
			VehicleType:  "lsv",
			BatteryNeeds: "6x 8V",
			Quantity:     6,
		})
		require.NoError(t, err)
		created = append(created, quote.ID)
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, quote := range all {
		assert.Equal(t, created[i], quote.ID, "submission order is preserved")
	}
}
