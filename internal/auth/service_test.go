package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/pizzadelight/storefront/pkg/auth"
	"github.com/pizzadelight/storefront/pkg/blob"
	"github.com/pizzadelight/storefront/pkg/config"
	pkgerrors "github.com/pizzadelight/storefront/pkg/errors"
	"github.com/pizzadelight/storefront/pkg/models"
)

func testParams(store blob.Store) ServiceParams {
	return ServiceParams{
		Store: store,
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
	}
}

func testSeed() config.SeedConfig {
	return config.SeedConfig{
		AdminUsername:    "admin",
		AdminPassword:    "admin123",
		AdminEmail:       "admin@pizzadelight.com",
		CustomerUsername: "customer",
		CustomerPassword: "customer123",
		CustomerEmail:    "john@example.com",
	}
}

func newSeededService(t *testing.T, store blob.Store) Service {
	t.Helper()
	svc, err := NewService(testParams(store))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if err := svc.SeedUsers(context.Background(), testSeed()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return svc
}

func TestNewServiceRequiresDeps(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error without store")
	}
	params := testParams(blob.NewMemoryStore())
	params.JWT.Secret = ""
	if _, err := NewService(params); err == nil {
		t.Fatal("expected error without jwt secret")
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := newSeededService(t, blob.NewMemoryStore())

	state, err := svc.Login(context.Background(), "customer", "customer123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !state.Authenticated {
		t.Fatal("expected authenticated session")
	}
	if state.Admin {
		t.Fatal("customer must not be admin")
	}
	if state.User == nil || state.User.Username != "customer" {
		t.Fatalf("unexpected session user %+v", state.User)
	}
	if state.Token == "" {
		t.Fatal("expected session token")
	}
}

func TestLoginDistinguishesUnknownUserFromBadPassword(t *testing.T) {
	svc := newSeededService(t, blob.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Login(ctx, "nobody", "whatever")
	if !errors.Is(err, ErrUnknownUsername) {
		t.Fatalf("expected ErrUnknownUsername, got %v", err)
	}

	_, err = svc.Login(ctx, "customer", "not-the-password")
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	if svc.State().Authenticated {
		t.Fatal("failed logins must not establish a session")
	}
}

func TestAdminLoginSetsAdminFlag(t *testing.T) {
	svc := newSeededService(t, blob.NewMemoryStore())

	state, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !state.Admin {
		t.Fatal("expected admin flag")
	}
}

func TestRegisterEstablishesSession(t *testing.T) {
	svc := newSeededService(t, blob.NewMemoryStore())

	state, err := svc.Register(context.Background(), RegisterInput{
		Username:  "newuser",
		Password:  "hunter22",
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !state.Authenticated || state.Admin {
		t.Fatalf("unexpected session state %+v", state)
	}
	if state.User.Username != "newuser" {
		t.Fatalf("session user = %q", state.User.Username)
	}

	// Registered credentials must work for a fresh login.
	svc.Logout(context.Background())
	if _, err := svc.Login(context.Background(), "newuser", "hunter22"); err != nil {
		t.Fatalf("login after register: %v", err)
	}
}

func TestRegisterConflictHasNoFieldDetail(t *testing.T) {
	svc := newSeededService(t, blob.NewMemoryStore())
	ctx := context.Background()

	cases := []RegisterInput{
		{Username: "customer", Password: "hunter22", Email: "other@example.com", FirstName: "A", LastName: "B"},
		{Username: "other", Password: "hunter22", Email: "john@example.com", FirstName: "A", LastName: "B"},
		{Username: "CUSTOMER", Password: "hunter22", Email: "another@example.com", FirstName: "A", LastName: "B"},
	}
	for _, input := range cases {
		_, err := svc.Register(ctx, input)
		coded := pkgerrors.As(err)
		if coded == nil || coded.Code() != pkgerrors.CodeConflict {
			t.Fatalf("expected conflict for %q/%q, got %v", input.Username, input.Email, err)
		}
		if coded.Details() != nil {
			t.Fatalf("conflict must not leak which field collided, got %v", coded.Details())
		}
	}

	// Rejected registrations must not have reached the user list.
	if _, err := svc.Login(ctx, "other", "hunter22"); !errors.Is(err, ErrUnknownUsername) {
		t.Fatalf("conflicting registration leaked into the store: %v", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newSeededService(t, blob.NewMemoryStore())

	_, err := svc.Register(context.Background(), RegisterInput{
		Username:  "ab",
		Password:  "123",
		Email:     "not-an-email",
		FirstName: "",
		LastName:  "",
	})
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLogoutDropsSessionKeepsUsers(t *testing.T) {
	svc := newSeededService(t, blob.NewMemoryStore())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "customer", "customer123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout(ctx)

	state := svc.State()
	if state.Authenticated || state.User != nil || state.Token != "" {
		t.Fatalf("expected cleared session, got %+v", state)
	}

	if _, err := svc.Login(ctx, "customer", "customer123"); err != nil {
		t.Fatalf("login after logout: %v", err)
	}
}

func TestSeedUsersIsIdempotent(t *testing.T) {
	store := blob.NewMemoryStore()
	svc := newSeededService(t, store)

	if err := svc.SeedUsers(context.Background(), testSeed()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("login after reseed: %v", err)
	}
}

func TestHydrateRestoresSession(t *testing.T) {
	store := blob.NewMemoryStore()
	ctx := context.Background()

	first := newSeededService(t, store)
	if _, err := first.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	second, err := NewService(testParams(store))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if got := second.State(); got.Hydrated {
		t.Fatal("fresh service must not report hydrated")
	}
	if err := second.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	state := second.State()
	if !state.Hydrated {
		t.Fatal("expected hydrated state")
	}
	if !state.Authenticated || !state.Admin {
		t.Fatalf("expected restored admin session, got %+v", state)
	}
	if state.User == nil || state.User.Username != "admin" {
		t.Fatalf("unexpected restored user %+v", state.User)
	}
}

func TestHydrateDropsSessionWithInvalidToken(t *testing.T) {
	ctx := context.Background()

	otherJWT := testParams(nil).JWT
	otherJWT.Secret = "some-other-secret"
	foreignToken, err := pkgauth.MintSessionToken(otherJWT, time.Now(), pkgauth.SessionTokenPayload{
		UserID:   uuid.New(),
		Username: "admin",
		Admin:    true,
	})
	if err != nil {
		t.Fatalf("mint foreign token: %v", err)
	}

	cases := map[string]string{
		"garbage token":     "not-a-jwt-at-all",
		"wrong signing key": foreignToken,
	}
	for name, token := range cases {
		store := blob.NewMemoryStore()
		forged, err := json.Marshal(persistedState{
			Session: &session{
				User:  models.User{ID: uuid.New(), Username: "admin", IsAdmin: true},
				Token: token,
				Admin: true,
			},
		})
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		if err := store.Set(ctx, blob.KeyAuth, forged); err != nil {
			t.Fatalf("%s: seed store: %v", name, err)
		}

		svc, err := NewService(testParams(store))
		if err != nil {
			t.Fatalf("%s: new service: %v", name, err)
		}
		if err := svc.Hydrate(ctx); err != nil {
			t.Fatalf("%s: hydrate: %v", name, err)
		}

		state := svc.State()
		if state.Authenticated || state.Admin || state.User != nil {
			t.Fatalf("%s: unverifiable session must not rehydrate, got %+v", name, state)
		}
		if !state.Hydrated {
			t.Fatalf("%s: dropping the session must not block hydration", name)
		}
	}
}

func TestHydrateEmptyStoreMarksHydrated(t *testing.T) {
	svc, err := NewService(testParams(blob.NewMemoryStore()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if !svc.State().Hydrated {
		t.Fatal("empty store hydration must still flip the flag")
	}
}
