package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/pizzadelight/storefront/pkg/blob"
	pkgerrors "github.com/pizzadelight/storefront/pkg/errors"
	"github.com/pizzadelight/storefront/pkg/logger"
	"github.com/pizzadelight/storefront/pkg/metrics"
	"github.com/pizzadelight/storefront/pkg/models"
)

const storeName = "checkout"

// Service owns the single checkout slot: a frozen copy of the cart that
// exists between "proceed to checkout" and "order placed or abandoned".
type Service interface {
	Hydrate(ctx context.Context) error
	Freeze(ctx context.Context, items []models.CartItem, total float64) models.CheckoutSnapshot
	Snapshot() *models.CheckoutSnapshot
	Discard(ctx context.Context)
}

// ServiceParams packages the checkout dependencies.
type ServiceParams struct {
	Store   blob.Store
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics

	// Now is swapped in tests; defaults to time.Now.
	Now func() time.Time
}

type service struct {
	store   blob.Store
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
	now     func() time.Time

	mu       sync.Mutex
	snapshot *models.CheckoutSnapshot
}

type persistedState struct {
	Snapshot *models.CheckoutSnapshot `json:"snapshot"`
}

// NewService builds the checkout slot with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "blob store required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
		now:     now,
	}, nil
}

// Hydrate restores a persisted snapshot; a missing blob means no
// checkout is in flight.
func (s *service) Hydrate(ctx context.Context) error {
	started := s.now()
	raw, err := s.store.Get(ctx, blob.KeyCheckout)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout state")
	}

	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode checkout state")
	}

	s.mu.Lock()
	s.snapshot = state.Snapshot
	s.mu.Unlock()
	s.metrics.ObserveHydration(storeName, time.Since(started))
	return nil
}

// Freeze deep-copies the items and total into the slot, stamping the
// current time. Any prior snapshot is overwritten.
func (s *service) Freeze(ctx context.Context, items []models.CartItem, total float64) models.CheckoutSnapshot {
	snapshot := models.CheckoutSnapshot{
		Items:     models.CloneCartItems(items),
		Total:     total,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.snapshot = &snapshot
	s.mu.Unlock()

	s.persist(ctx, "freeze")
	return snapshot.Clone()
}

// Snapshot returns a copy of the frozen cart, or nil when none exists.
func (s *service) Snapshot() *models.CheckoutSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	out := s.snapshot.Clone()
	return &out
}

// Discard abandons the in-flight checkout.
func (s *service) Discard(ctx context.Context) {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()

	s.persist(ctx, "discard")
}

func (s *service) persist(ctx context.Context, op string) {
	s.metrics.IncMutation(storeName, op)

	s.mu.Lock()
	state := persistedState{Snapshot: s.snapshot}
	raw, err := json.Marshal(state)
	s.mu.Unlock()
	if err != nil {
		s.logError(ctx, "encode checkout state failed", err)
		return
	}
	if err := s.store.Set(ctx, blob.KeyCheckout, raw); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.logError(ctx, "persist checkout state failed", err)
	}
}

func (s *service) logError(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Error(ctx, msg, err)
}
