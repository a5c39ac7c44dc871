package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/catalog")
	t.Setenv("ADDR", ":9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/catalog" {
		t.Errorf("unexpected database url: %s", cfg.DatabaseURL)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("unexpected addr: %s", cfg.Addr)
	}
}

func TestLoad_AddrDefault(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/catalog")
	t.Setenv("ADDR", "placeholder") // register cleanup, then unset
	os.Unsetenv("ADDR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":4000" {
		t.Errorf("expected default addr :4000, got %s", cfg.Addr)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "placeholder") // register cleanup, then unset
	os.Unsetenv("DATABASE_URL")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}
