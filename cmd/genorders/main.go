package main

import (
	"flag"
	"log"
	"time"

	"ecommerce-orders-lab/internal/config"
	"ecommerce-orders-lab/internal/data"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		orderCount = flag.Int("orders", data.NumOrders, "number of orders to generate")
		customers  = flag.Int("customers", data.NumCustomers, "number of distinct customers")
		products   = flag.Int("products", data.NumProducts, "number of distinct products")
		seed       = flag.Uint64("seed", 0, "random seed (0 = derive from wall clock)")
		output     = flag.String("output", "", "output CSV file")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "orders":
			cfg.Orders = *orderCount
		case "customers":
			cfg.Customers = *customers
		case "products":
			cfg.Products = *products
		case "seed":
			cfg.Seed = *seed
		case "output":
			cfg.Output = *output
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("refusing to generate: %v", err)
	}

	start := time.Now()
	table, err := data.Generate(cfg.Orders, cfg.Customers, cfg.Products, cfg.Seed)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}
	if err := data.WriteTableFile(cfg.Output, table); err != nil {
		log.Fatalf("failed to write %s: %v", cfg.Output, err)
	}

	log.Printf("generated %d orders for %d unique customers in %s",
		len(table), len(table.Frequencies()), time.Since(start))
	log.Printf("data saved to %s", cfg.Output)
}
