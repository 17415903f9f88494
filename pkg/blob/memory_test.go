package blob

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, KeyCart); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty store, got %v", err)
	}

	if err := store.Set(ctx, KeyCart, []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, KeyCart)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"items":[]}` {
		t.Fatalf("unexpected value %q", got)
	}

	if err := store.Del(ctx, KeyCart); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := store.Get(ctx, KeyCart); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("original")
	if err := store.Set(ctx, KeyAuth, value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'X'

	got, err := store.Get(ctx, KeyAuth)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "original" {
		t.Fatalf("stored value aliased caller buffer: %q", got)
	}

	got[0] = 'Y'
	again, err := store.Get(ctx, KeyAuth)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(again) != "original" {
		t.Fatalf("returned value aliased internal buffer: %q", again)
	}
}
