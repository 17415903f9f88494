package orders

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pizzadelight/storefront/pkg/blob"
	"github.com/pizzadelight/storefront/pkg/enums"
	pkgerrors "github.com/pizzadelight/storefront/pkg/errors"
	"github.com/pizzadelight/storefront/pkg/logger"
	"github.com/pizzadelight/storefront/pkg/metrics"
	"github.com/pizzadelight/storefront/pkg/models"
	"github.com/pizzadelight/storefront/pkg/validators"
)

const (
	storeName = "orders"

	maxContactFieldLen = 200
	maxAddressLen      = 500
	maxInstructionsLen = 1000
)

// Service is the append-only order ledger. Orders are immutable after
// placement except for their lifecycle status.
type Service interface {
	Hydrate(ctx context.Context) error
	Place(ctx context.Context, input PlaceOrderInput) (uuid.UUID, error)
	ListByUser(userID uuid.UUID) []models.Order
	ListAll() []models.Order
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status enums.OrderStatus) error
}

// ServiceParams packages the ledger dependencies.
type ServiceParams struct {
	Store   blob.Store
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
	Now     func() time.Time
}

type service struct {
	store   blob.Store
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
	now     func() time.Time

	mu     sync.Mutex
	ledger []models.Order
}

type persistedState struct {
	Orders []models.Order `json:"orders"`
}

// NewService builds the order ledger with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "blob store required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
		now:     params.Now,
	}, nil
}

// Hydrate restores the persisted ledger; a missing blob means no orders.
func (s *service) Hydrate(ctx context.Context) error {
	started := time.Now()
	raw, err := s.store.Get(ctx, blob.KeyOrders)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order state")
	}

	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode order state")
	}

	s.mu.Lock()
	s.ledger = state.Orders
	s.mu.Unlock()
	s.metrics.ObserveHydration(storeName, time.Since(started))
	return nil
}

// Place appends a new order to the ledger. The total is recorded as
// given; the ledger does not reprice items.
func (s *service) Place(ctx context.Context, input PlaceOrderInput) (uuid.UUID, error) {
	if err := validators.Struct(input); err != nil {
		return uuid.Nil, err
	}
	if !input.Payment.Method.IsValid() {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	payment := input.Payment
	if payment.Status == "" {
		payment.Status = enums.PaymentStatusPending
	}

	order := models.Order{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Items:     models.CloneCartItems(input.Items),
		Total:     input.Total,
		Status:    enums.OrderStatusPending,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	order.Contact.Name = validators.SanitizeString(input.Contact.Name, maxContactFieldLen)
	order.Contact.Phone = validators.SanitizeString(input.Contact.Phone, maxContactFieldLen)
	order.Delivery.Address = validators.SanitizeString(input.Delivery.Address, maxAddressLen)
	order.Delivery.Instructions = validators.SanitizeString(input.Delivery.Instructions, maxInstructionsLen)
	order.Payment = payment

	s.mu.Lock()
	s.ledger = append(s.ledger, order)
	s.mu.Unlock()

	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, order.ID.String()), "order placed")
	}
	s.persist(ctx, "place")
	return order.ID, nil
}

// ListByUser returns the user's orders in placement order.
func (s *service) ListByUser(userID uuid.UUID) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order
	for _, order := range s.ledger {
		if order.UserID == userID {
			out = append(out, order.Clone())
		}
	}
	return out
}

// ListAll returns the whole ledger in placement order.
func (s *service) ListAll() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0, len(s.ledger))
	for _, order := range s.ledger {
		out = append(out, order.Clone())
	}
	return out
}

// UpdateStatus moves an order to the given status. Any transition is
// allowed; updating an unknown id is a silent no-op.
func (s *service) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enums.OrderStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	s.mu.Lock()
	for idx := range s.ledger {
		if s.ledger[idx].ID == orderID {
			s.ledger[idx].Status = status
		}
	}
	s.mu.Unlock()

	s.persist(ctx, "update_status")
	return nil
}

// persist writes the full ledger after a mutation. A failed write keeps
// the in-memory mutation; the ledger never rolls back.
func (s *service) persist(ctx context.Context, op string) {
	s.metrics.IncMutation(storeName, op)

	s.mu.Lock()
	state := persistedState{Orders: s.ledger}
	raw, err := json.Marshal(state)
	s.mu.Unlock()
	if err != nil {
		s.warn(ctx, "encode order state failed", err)
		return
	}
	if err := s.store.Set(ctx, blob.KeyOrders, raw); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.warn(ctx, "persist order state failed", err)
	}
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Error(ctx, msg, err)
}
