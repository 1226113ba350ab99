package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadSizing(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Orders = 0 },
		func(c *Config) { c.Customers = -3 },
		func(c *Config) { c.Products = 0 },
		func(c *Config) { c.Output = "" },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d should fail validation: %+v", i, cfg)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	content := "orders: 50\ncustomers: 10\nseed: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Orders != 50 || cfg.Customers != 10 || cfg.Seed != 7 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Products != Default().Products || cfg.Output != Default().Output {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing config file should be an error")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	if err := os.WriteFile(path, []byte("orders: [oops"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml should be an error")
	}
}
