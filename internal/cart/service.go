package cart

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

const storeName = "cart"

// Catalog is the read-only lookup surface the cart prices against.
type Catalog interface {
	PizzaByID(id string) (models.Pizza, bool)
	ToppingByID(id string) (models.Topping, bool)
	DrinkByID(id string) (models.Drink, bool)
}

// Service is the cart aggregate: an ordered line item sequence priced
// by re-joining against the catalog.
type Service interface {
	Hydrate(ctx context.Context) error
	Items() []models.CartItem
	AddPizza(ctx context.Context, input AddPizzaInput) (uuid.UUID, error)
	AddDrink(ctx context.Context, input AddDrinkInput) (uuid.UUID, error)
	Remove(ctx context.Context, itemID uuid.UUID)
	SetQuantity(ctx context.Context, itemID uuid.UUID, quantity int)
	Clear(ctx context.Context)
	Total() float64
}

// ServiceParams packages the cart dependencies.
type ServiceParams struct {
	Store   blob.Store
	Catalog Catalog
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

type service struct {
	store   blob.Store
	catalog Catalog
	logg    *logger.Logger
	metrics *metrics.StoreMetrics

	mu    sync.Mutex
	items []models.CartItem
}

type persistedState struct {
	Items []models.CartItem `json:"items"`
}

// NewService builds the cart aggregate with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "blob store required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog required")
	}
	return &service{
		store:   params.Store,
		catalog: params.Catalog,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// Hydrate restores the persisted cart; a missing blob means an empty cart.
func (s *service) Hydrate(ctx context.Context) error {
	started := time.Now()
	raw, err := s.store.Get(ctx, blob.KeyCart)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart state")
	}

	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cart state")
	}

	s.mu.Lock()
	s.items = state.Items
	s.mu.Unlock()
	s.metrics.ObserveHydration(storeName, time.Since(started))
	return nil
}

func (s *service) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneCartItems(s.items)
}

// AddPizza appends a new line item. Identical configurations are not
// merged; every add produces its own entry.
func (s *service) AddPizza(ctx context.Context, input AddPizzaInput) (uuid.UUID, error) {
	if err := validators.Struct(input); err != nil {
		return uuid.Nil, err
	}
	if !input.Size.IsValid() {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid pizza size")
	}

	item := models.NewPizzaCartItem(input.PizzaID, input.Size, input.Toppings, input.Quantity)

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.persist(ctx, "add_pizza")
	return item.ID, nil
}

// AddDrink appends a new drink line, same append-only behavior.
func (s *service) AddDrink(ctx context.Context, input AddDrinkInput) (uuid.UUID, error) {
	if err := validators.Struct(input); err != nil {
		return uuid.Nil, err
	}

	item := models.NewDrinkCartItem(input.DrinkID, input.Quantity)

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.persist(ctx, "add_drink")
	return item.ID, nil
}

// Remove filters the item out; removing an unknown id is a no-op.
func (s *service) Remove(ctx context.Context, itemID uuid.UUID) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	s.persist(ctx, "remove")
}

// SetQuantity replaces the quantity in place. It does not clamp;
// callers decrementing to zero are expected to Remove instead.
func (s *service) SetQuantity(ctx context.Context, itemID uuid.UUID, quantity int) {
	s.mu.Lock()
	for idx := range s.items {
		if s.items[idx].ID != itemID {
			continue
		}
		switch s.items[idx].Kind {
		case enums.CartItemKindPizza:
			if s.items[idx].Pizza != nil {
				s.items[idx].Pizza.Quantity = quantity
			}
		case enums.CartItemKindDrink:
			if s.items[idx].Drink != nil {
				s.items[idx].Drink.Quantity = quantity
			}
		}
	}
	s.mu.Unlock()

	s.persist(ctx, "set_quantity")
}

// Clear empties the cart.
func (s *service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist(ctx, "clear")
}

// Total re-joins every line against the catalog. Unresolvable catalog
// references contribute zero.
func (s *service) Total() float64 {
	s.mu.Lock()
	items := models.CloneCartItems(s.items)
	s.mu.Unlock()

	return TotalOf(s.catalog, items)
}

// TotalOf prices an arbitrary line item sequence against the catalog.
// The checkout flow uses it to price frozen snapshots.
func TotalOf(catalog Catalog, items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		switch item.Kind {
		case enums.CartItemKindPizza:
			if item.Pizza == nil {
				continue
			}
			pizza, ok := catalog.PizzaByID(item.Pizza.PizzaID)
			if !ok {
				continue
			}
			qty := float64(item.Pizza.Quantity)
			line := pizza.Price.For(item.Pizza.Size) * qty
			for _, toppingID := range item.Pizza.Toppings {
				topping, ok := catalog.ToppingByID(toppingID)
				if !ok {
					continue
				}
				line += topping.Price.For(item.Pizza.Size) * qty
			}
			total += line
		case enums.CartItemKindDrink:
			if item.Drink == nil {
				continue
			}
			drink, ok := catalog.DrinkByID(item.Drink.DrinkID)
			if !ok {
				continue
			}
			total += drink.Price * float64(item.Drink.Quantity)
		}
	}
	return total
}

// persist writes the full cart state after a mutation. A failed write
// keeps the in-memory mutation; the cart never rolls back.
func (s *service) persist(ctx context.Context, op string) {
	s.metrics.IncMutation(storeName, op)

	s.mu.Lock()
	state := persistedState{Items: s.items}
	raw, err := json.Marshal(state)
	s.mu.Unlock()
	if err != nil {
		s.warn(ctx, "encode cart state failed", err)
		return
	}
	if err := s.store.Set(ctx, blob.KeyCart, raw); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.warn(ctx, "persist cart state failed", err)
	}
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Error(ctx, msg, err)
}
