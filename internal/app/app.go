package app

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"github.com/pizzadelight/storefront/internal/analytics"
	"github.com/pizzadelight/storefront/internal/auth"
	"github.com/pizzadelight/storefront/internal/cart"
	"github.com/pizzadelight/storefront/internal/checkout"
	"github.com/pizzadelight/storefront/internal/orders"
	"github.com/pizzadelight/storefront/pkg/blob"
	"github.com/pizzadelight/storefront/pkg/config"
	pkgerrors "github.com/pizzadelight/storefront/pkg/errors"
	"github.com/pizzadelight/storefront/pkg/logger"
	"github.com/pizzadelight/storefront/pkg/metrics"
)

// Params packages everything the storefront needs to come up.
type Params struct {
	Config  *config.Config
	Store   blob.Store
	Catalog cart.Catalog
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
	Now     func() time.Time
}

// App wires the storefront services over one shared blob store. There
// is exactly one cart, ledger, and session per App; all operations are
// synchronous.
type App struct {
	Catalog  cart.Catalog
	Cart     cart.Service
	Checkout checkout.Service
	Orders   orders.Service
	Auth     auth.Service

	now func() time.Time
}

// New builds the full service graph. It does not hydrate; callers run
// Hydrate once the store is reachable.
func New(params Params) (*App, error) {
	if params.Config == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "config required")
	}
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "blob store required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}

	cartSvc, err := cart.NewService(cart.ServiceParams{
		Store:   params.Store,
		Catalog: params.Catalog,
		Logger:  params.Logger,
		Metrics: params.Metrics,
	})
	if err != nil {
		return nil, err
	}

	checkoutSvc, err := checkout.NewService(checkout.ServiceParams{
		Store:   params.Store,
		Logger:  params.Logger,
		Metrics: params.Metrics,
		Now:     params.Now,
	})
	if err != nil {
		return nil, err
	}

	ordersSvc, err := orders.NewService(orders.ServiceParams{
		Store:   params.Store,
		Logger:  params.Logger,
		Metrics: params.Metrics,
		Now:     params.Now,
	})
	if err != nil {
		return nil, err
	}

	authSvc, err := auth.NewService(auth.ServiceParams{
		Store:    params.Store,
		Logger:   params.Logger,
		Metrics:  params.Metrics,
		JWT:      params.Config.JWT,
		Password: params.Config.Password,
		Now:      params.Now,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Catalog:  params.Catalog,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Orders:   ordersSvc,
		Auth:     authSvc,
		now:      params.Now,
	}, nil
}

// Hydrate restores every persisted store. Failures are collected so a
// corrupt blob in one store does not block the others.
func (a *App) Hydrate(ctx context.Context) error {
	return multierr.Combine(
		a.Cart.Hydrate(ctx),
		a.Checkout.Hydrate(ctx),
		a.Orders.Hydrate(ctx),
		a.Auth.Hydrate(ctx),
	)
}

// Analytics computes the dashboard aggregate over the current ledger.
func (a *App) Analytics() analytics.Metrics {
	return analytics.Compute(a.Orders.ListAll(), a.now())
}
