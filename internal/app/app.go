package app

import (
	"context"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/config"
	product "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/repository/product"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/transport/http/health"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/transport/http/middleware"
	thttp "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/transport/http/storefront/v1"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/platform/closer"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initCatalog,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initCatalog(ctx context.Context) error {
	brand := a.di.Brand(ctx)

	if err := product.CatalogBootstrap(ctx, a.di.ProductRepository(ctx), brand); err != nil {
		logger.Error(ctx, "failed to seed product catalog", logger.ErrorF(err))
		return err
	}

	logger.Info(ctx, "product catalog seeded",
		logger.String("brand", brand.Name),
	)
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimiddleware.Recoverer,
		chimiddleware.Logger,
		middleware.Metrics(a.di.Metrics(ctx)),
		middleware.Session,
	)

	thttp.RegisterRoutes(r, a.di.Handlers(ctx))

	r.HandleFunc("/health", health.HealthCheck)
	r.Method(http.MethodGet, "/metrics", a.di.Metrics(ctx).Handler())

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	closer.AddNamed("Logger", func(ctx context.Context) error {
		// Sync flushes to stdout; some platforms report EINVAL here,
		// which is harmless on shutdown.
		_ = logger.L().Sync()
		return nil
	})

	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 storefront server listening",
			logger.String("address", config.C().Server.Address()),
			logger.String("brand", config.C().Brand.Name()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), // do not inherit cancellation from egCtx
			config.C().Server.ShutdownTimeout(),
		)
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
