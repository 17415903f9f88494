package config

import (
	"os"
	"testing"
	"time"
)

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvStorageDriver, "redis")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvJWTSecret, "unit-test-secret")
}

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if !cfg.App.IsProd() {
		t.Fatal("expected IsProd to be true")
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if got := cfg.Redis.DialTimeout; got != 5*time.Second {
		t.Fatalf("expected dial timeout 5s, got %v", got)
	}

	if cfg.Storage.Driver != StorageDriverRedis {
		t.Fatalf("unexpected storage driver %q", cfg.Storage.Driver)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{EnvAppEnv, EnvStorageDriver, EnvRedisURL, EnvJWTSecret} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected dev default, got %q", cfg.App.Env)
	}
	if cfg.Storage.Driver != StorageDriverMemory {
		t.Fatalf("expected memory storage default, got %q", cfg.Storage.Driver)
	}
	if cfg.Seed.AdminUsername != "admin" {
		t.Fatalf("unexpected seed admin username %q", cfg.Seed.AdminUsername)
	}
	if cfg.JWT.Expiration() != 720*time.Minute {
		t.Fatalf("unexpected jwt expiration %v", cfg.JWT.Expiration())
	}
}

func TestLoad_InvalidStorageDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStorageDriver, "filesystem")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}
