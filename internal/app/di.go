package app

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/catalog"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/config"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/observability"
	cartrepo "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/repository/cart"
	productrepo "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/repository/product"
	quoterepo "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/repository/quote"
	cartsvc "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/service/cart"
	catalogsvc "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/service/catalog"
	quotesvc "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/service/quote"
	thttp "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/transport/http/storefront/v1"
)

type ProductRepository interface {
	catalogsvc.ProductRepository
	productrepo.BatchCreator
}

type di struct {
	productRepository ProductRepository
	cartRepository    cartsvc.CartRepository
	quoteRepository   quotesvc.QuoteRepository

	catalogService thttp.CatalogService
	cartService    thttp.CartService
	quoteService   thttp.QuoteService

	handlers *thttp.Handlers

	metrics *observability.HTTPMetrics
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) Brand(_ context.Context) catalog.Brand {
	cfg := config.C()
	return catalog.Brand{
		Name:  cfg.Brand.Name(),
		Mark:  cfg.Brand.Mark(),
		Slug:  cfg.Brand.Slug(),
		Phone: cfg.Brand.Phone(),
	}
}

func (d *di) ProductRepository(_ context.Context) ProductRepository {
	if d.productRepository == nil {
		d.productRepository = productrepo.NewProductRepository()
	}

	return d.productRepository
}

func (d *di) CartRepository(_ context.Context) cartsvc.CartRepository {
	if d.cartRepository == nil {
		d.cartRepository = cartrepo.NewCartRepository()
	}

	return d.cartRepository
}

func (d *di) QuoteRepository(_ context.Context) quotesvc.QuoteRepository {
	if d.quoteRepository == nil {
		d.quoteRepository = quoterepo.NewQuoteRepository()
	}

	return d.quoteRepository
}

func (d *di) CatalogService(ctx context.Context) thttp.CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogsvc.NewCatalogService(d.ProductRepository(ctx))
	}

	return d.catalogService
}

func (d *di) CartService(ctx context.Context) thttp.CartService {
	if d.cartService == nil {
		d.cartService = cartsvc.NewCartService(
			d.CartRepository(ctx),
			d.ProductRepository(ctx),
		)
	}

	return d.cartService
}

func (d *di) QuoteService(ctx context.Context) thttp.QuoteService {
	if d.quoteService == nil {
		d.quoteService = quotesvc.NewQuoteService(d.QuoteRepository(ctx))
	}

	return d.quoteService
}

func (d *di) Handlers(ctx context.Context) thttp.Handlers {
	if d.handlers == nil {
		d.handlers = &thttp.Handlers{
			Product: thttp.NewProductHandler(d.CatalogService(ctx)),
			Cart:    thttp.NewCartHandler(d.CartService(ctx)),
			Quote:   thttp.NewQuoteHandler(d.QuoteService(ctx), config.C().Admin.Token()),
		}
	}

	return *d.handlers
}

func (d *di) Metrics(_ context.Context) *observability.HTTPMetrics {
	if d.metrics == nil {
		d.metrics = observability.NewHTTPMetrics()
	}

	return d.metrics
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
