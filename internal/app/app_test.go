package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pizzadelight/storefront/internal/cart"
	"github.com/pizzadelight/storefront/internal/catalog"
	"github.com/pizzadelight/storefront/internal/orders"
	"github.com/pizzadelight/storefront/pkg/blob"
	"github.com/pizzadelight/storefront/pkg/config"
	"github.com/pizzadelight/storefront/pkg/enums"
	"github.com/pizzadelight/storefront/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:            "unit-test-secret",
			Issuer:            "pizzadelight",
			ExpirationMinutes: 60,
		},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8192,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
		Seed: config.SeedConfig{
			AdminUsername:    "admin",
			AdminPassword:    "admin123",
			AdminEmail:       "admin@pizzadelight.com",
			CustomerUsername: "customer",
			CustomerPassword: "customer123",
			CustomerEmail:    "john@example.com",
		},
	}
}

func newTestApp(t *testing.T, store blob.Store) *App {
	t.Helper()
	application, err := New(Params{
		Config:  testConfig(),
		Store:   store,
		Catalog: catalog.SeedRepository(),
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if err := application.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	return application
}

func TestNewRequiresDeps(t *testing.T) {
	if _, err := New(Params{}); err == nil {
		t.Fatal("expected error without config")
	}
	if _, err := New(Params{Config: testConfig()}); err == nil {
		t.Fatal("expected error without store")
	}
	if _, err := New(Params{Config: testConfig(), Store: blob.NewMemoryStore()}); err == nil {
		t.Fatal("expected error without catalog")
	}
}

// Exercises the full storefront flow: login, build a cart, freeze a
// snapshot, place the order, then read it back through analytics.
func TestOrderFlow(t *testing.T) {
	application := newTestApp(t, blob.NewMemoryStore())
	ctx := context.Background()

	if err := application.Auth.SeedUsers(ctx, testConfig().Seed); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	session, err := application.Auth.Login(ctx, "customer", "customer123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := application.Cart.AddPizza(ctx, cart.AddPizzaInput{
		PizzaID:  "1",
		Size:     enums.PizzaSizeMedium,
		Toppings: []string{"1"},
		Quantity: 1,
	}); err != nil {
		t.Fatalf("add pizza: %v", err)
	}
	total := application.Cart.Total()
	if total <= 0 {
		t.Fatalf("cart total = %v", total)
	}

	snapshot := application.Checkout.Freeze(ctx, application.Cart.Items(), total)

	orderID, err := application.Orders.Place(ctx, orders.PlaceOrderInput{
		UserID:   session.User.ID,
		Items:    snapshot.Items,
		Total:    snapshot.Total,
		Contact:  types.ContactInfo{Name: "John Doe", Phone: "555-0101"},
		Delivery: types.DeliveryInfo{Address: "12 Elm Street"},
		Payment:  types.PaymentInfo{Method: enums.PaymentMethodCash},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if orderID == uuid.Nil {
		t.Fatal("expected order id")
	}

	application.Cart.Clear(ctx)
	application.Checkout.Discard(ctx)

	mine := application.Orders.ListByUser(session.User.ID)
	if len(mine) != 1 || mine[0].Total != total {
		t.Fatalf("unexpected ledger %+v", mine)
	}

	metrics := application.Analytics()
	if metrics.TotalOrders != 1 || !metrics.HasOrders {
		t.Fatalf("unexpected analytics %+v", metrics)
	}
	if metrics.TotalRevenue != total {
		t.Fatalf("analytics revenue = %v, want %v", metrics.TotalRevenue, total)
	}
}

func TestHydrateCollectsErrorsPerStore(t *testing.T) {
	store := blob.NewMemoryStore()
	ctx := context.Background()

	// Corrupt two of the four blobs; the other stores must still load.
	if err := store.Set(ctx, blob.KeyCart, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt cart: %v", err)
	}
	if err := store.Set(ctx, blob.KeyOrders, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt orders: %v", err)
	}

	application, err := New(Params{
		Config:  testConfig(),
		Store:   store,
		Catalog: catalog.SeedRepository(),
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	err = application.Hydrate(ctx)
	if err == nil {
		t.Fatal("expected aggregated hydration error")
	}
	if !application.Auth.State().Hydrated {
		t.Fatal("auth must hydrate despite sibling failures")
	}
}

func TestAppStateSurvivesRestart(t *testing.T) {
	store := blob.NewMemoryStore()
	ctx := context.Background()

	first := newTestApp(t, store)
	if _, err := first.Cart.AddDrink(ctx, cart.AddDrinkInput{DrinkID: "1", Quantity: 2}); err != nil {
		t.Fatalf("add drink: %v", err)
	}

	second := newTestApp(t, store)
	items := second.Cart.Items()
	if len(items) != 1 || items[0].Drink.Quantity != 2 {
		t.Fatalf("cart not restored: %+v", items)
	}
}

func TestAnalyticsUsesInjectedClock(t *testing.T) {
	fixed := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	application, err := New(Params{
		Config:  testConfig(),
		Store:   blob.NewMemoryStore(),
		Catalog: catalog.SeedRepository(),
		Now:     func() time.Time { return fixed },
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if err := application.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	metrics := application.Analytics()
	if metrics.HasOrders {
		t.Fatalf("expected empty analytics, got %+v", metrics)
	}
}
