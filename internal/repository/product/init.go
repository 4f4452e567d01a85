package repository

import (
	"context"
	"time"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/catalog"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, products []*model.Product) error
}

// CatalogBootstrap seeds the generated product catalog for the given
// brand. Called exactly once at startup.
func CatalogBootstrap(ctx context.Context, c BatchCreator, brand catalog.Brand) error {
	return c.CreateBatch(ctx, catalog.Generate(brand, time.Now()))
}
