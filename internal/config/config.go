package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ecommerce-orders-lab/internal/data"
)

// Config sizes the synthetic dataset and names its destination.
type Config struct {
	Orders    int    `yaml:"orders" validate:"gt=0"`
	Customers int    `yaml:"customers" validate:"gt=0"`
	Products  int    `yaml:"products" validate:"gt=0"`
	Seed      uint64 `yaml:"seed"`
	Output    string `yaml:"output" validate:"required"`
}

// Default returns the reference dataset sizing. Seed zero means the
// generator seeds itself from the wall clock.
func Default() Config {
	return Config{
		Orders:    data.NumOrders,
		Customers: data.NumCustomers,
		Products:  data.NumProducts,
		Output:    "ecommerce_orders_demo.csv",
	}
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Load merges the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects malformed sizing before any row is generated.
func (c Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
