package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/catalog"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/platform/logger"
)

type ProductRepository interface {
	All(ctx context.Context) ([]*model.Product, error)
	ByID(ctx context.Context, id string) (*model.Product, error)
	ByCategory(ctx context.Context, category string) ([]*model.Product, error)
	Search(ctx context.Context, query string) ([]*model.Product, error)
}

type service struct {
	repo ProductRepository
}

func NewCatalogService(repo ProductRepository) *service {
	return &service{repo: repo}
}

func (s *service) Products(ctx context.Context, params model.ProductListParams) ([]*model.Product, error) {
	const op = "catalog.service.Products"

	var (
		products []*model.Product
		err      error
	)
	switch {
	case params.Search != "":
		products, err = s.repo.Search(ctx, params.Search)
	case params.Category != "":
		products, err = s.repo.ByCategory(ctx, params.Category)
	default:
		products, err = s.repo.All(ctx)
	}
	if err != nil {
		logger.Error(ctx, "repository list products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.MinPrice != nil || params.MaxPrice != nil {
		min, max := 0.0, math.MaxFloat64
		if params.MinPrice != nil {
			min = *params.MinPrice
		}
		if params.MaxPrice != nil {
			max = *params.MaxPrice
		}
		products = catalog.ByPriceRange(products, min, max)
	}

	if params.SortBy != "" {
		products = catalog.SortProducts(products, params.SortBy)
	}

	return products, nil
}

func (s *service) Product(ctx context.Context, id string) (*model.Product, error) {
	const op = "catalog.service.Product"
	log := logger.With(logger.String("product_id", id))

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty product id")
		return nil, errors.Join(model.ErrValidation, errors.New("product id must be non-empty"))
	}

	p, err := s.repo.ByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrProductNotFound) {
			log.Error(ctx, "repository product by id", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) Related(ctx context.Context, id string, limit int) ([]*model.Product, error) {
	const op = "catalog.service.Related"

	current, err := s.Product(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return catalog.Related(all, current, limit), nil
}

func (s *service) Featured(ctx context.Context, limit int) ([]*model.Product, error) {
	const op = "catalog.service.Featured"

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return catalog.Featured(all, limit), nil
}

func (s *service) Recommend(ctx context.Context, criteria model.RecommendationCriteria) ([]*model.Product, error) {
	const op = "catalog.service.Recommend"

	all, err := s.repo.All(ctx)
	if err != nil {
		logger.Error(ctx, "repository list products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return catalog.Recommend(all, criteria), nil
}

func (s *service) Statistics(ctx context.Context) (catalog.Statistics, error) {
	const op = "catalog.service.Statistics"

	all, err := s.repo.All(ctx)
	if err != nil {
		return catalog.Statistics{}, fmt.Errorf("%s: %w", op, err)
	}
	return catalog.ComputeStatistics(all), nil
}

func (s *service) Facets(ctx context.Context) (catalog.Facets, error) {
	const op = "catalog.service.Facets"

	all, err := s.repo.All(ctx)
	if err != nil {
		return catalog.Facets{}, fmt.Errorf("%s: %w", op, err)
	}
	return catalog.ComputeFacets(all), nil
}

// PriceBounds reports the numeric price range of the whole catalog.
func (s *service) PriceBounds(ctx context.Context) (min, max float64, ok bool, err error) {
	const op = "catalog.service.PriceBounds"

	all, err := s.repo.All(ctx)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%s: %w", op, err)
	}
	min, max, ok = catalog.PriceBounds(all)
	return min, max, ok, nil
}
